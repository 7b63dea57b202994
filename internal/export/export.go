// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders and saves study session transcripts.
//
// Two paths exist: SaveContent writes a transcript the backend already
// rendered, and SaveConversation renders the local conversation log,
// citations included. Files are written atomically so an interrupted
// export never leaves a partial file.
package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// =============================================================================
// WRITER
// =============================================================================

// Writer saves transcripts under a target directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir. The directory is created on
// first save.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "exports"
	}
	return &Writer{dir: dir}
}

// Dir returns the target directory.
func (w *Writer) Dir() string {
	return w.dir
}

// SaveContent writes pre-rendered transcript content in the given format
// ("markdown" or "json") and returns the file path.
func (w *Writer) SaveContent(content, format string) (string, error) {
	path := filepath.Join(w.dir, filename(format, time.Now()))
	if err := util.AtomicWriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}

// SaveConversation renders the local conversation log and writes it in the
// given format, returning the file path.
func (w *Writer) SaveConversation(conv *model.Conversation, format string) (string, error) {
	var content []byte
	switch format {
	case "json":
		data, err := RenderJSON(conv)
		if err != nil {
			return "", err
		}
		content = data
	case "markdown":
		content = []byte(RenderMarkdown(conv))
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	return w.SaveContent(string(content), format)
}

// filename builds a timestamped export name.
func filename(format string, now time.Time) string {
	ext := ".md"
	if format == "json" {
		ext = ".json"
	}
	return "study-session-" + now.Format("20060102-150405") + ext
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderMarkdown renders the conversation as a markdown study log.
// Pending placeholders are skipped; failed answers keep their fixed text.
func RenderMarkdown(conv *model.Conversation) string {
	var b strings.Builder

	b.WriteString("# Study Session\n\n")
	b.WriteString("Exported: " + time.Now().Format("2006-01-02 15:04") + "\n\n")

	for _, msg := range conv.GetHistory() {
		if msg.IsPending() {
			continue
		}

		b.WriteString("## " + msg.Role.DisplayName())
		b.WriteString(" (" + msg.Timestamp.Format("15:04") + ")\n\n")
		b.WriteString(msg.Content)
		b.WriteString("\n\n")

		if msg.HasSources() {
			b.WriteString("**Sources:**\n\n")
			for _, src := range msg.Sources {
				b.WriteString(fmt.Sprintf("- %s, p. %d (%d%% match)\n", src.Document, src.Page, src.Relevance))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderJSON renders the conversation as indented JSON.
func RenderJSON(conv *model.Conversation) ([]byte, error) {
	type exportMessage struct {
		Role      string         `json:"role"`
		Timestamp time.Time      `json:"timestamp"`
		Content   string         `json:"content"`
		Sources   []model.Source `json:"sources,omitempty"`
		Failed    bool           `json:"failed,omitempty"`
	}
	type exportDoc struct {
		ExportedAt time.Time       `json:"exported_at"`
		Messages   []exportMessage `json:"messages"`
	}

	doc := exportDoc{ExportedAt: time.Now()}
	for _, msg := range conv.GetHistory() {
		if msg.IsPending() {
			continue
		}
		doc.Messages = append(doc.Messages, exportMessage{
			Role:      msg.Role.String(),
			Timestamp: msg.Timestamp,
			Content:   msg.Content,
			Sources:   msg.Sources,
			Failed:    msg.State == model.StateFailed,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}
