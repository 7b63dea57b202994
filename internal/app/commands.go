// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the client-side application state and commands.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command timeouts. Quick lookups fail fast so the UI can show a degraded
// banner; asks and uploads wait on model generation and indexing.
const (
	quickTimeout = 5 * time.Second
	slowTimeout  = 150 * time.Second
)

// CheckStatusCmd creates a command that checks backend health.
func CheckStatusCmd(gw Gateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		status, err := gw.Status(ctx)
		return StatusResultMsg{Status: status, Err: err}
	}
}

// ListDocumentsCmd creates a command that fetches the document listing.
func ListDocumentsCmd(gw Gateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		resp, err := gw.Documents(ctx)
		return DocumentsResultMsg{
			Names:       resp.Documents,
			TotalChunks: resp.TotalChunks,
			Err:         err,
		}
	}
}

// FetchStatsCmd creates a command that fetches session counters.
func FetchStatsCmd(gw Gateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		stats, err := gw.Stats(ctx)
		return StatsResultMsg{Stats: stats, Err: err}
	}
}

// RefreshCmd creates the coordinated refresh: status, documents, and stats
// in one batch. Each leg reports independently, so one failing endpoint
// does not block the others.
func RefreshCmd(gw Gateway) tea.Cmd {
	return tea.Batch(
		CheckStatusCmd(gw),
		ListDocumentsCmd(gw),
		FetchStatsCmd(gw),
	)
}

// UploadFileCmd creates a command that reads one local file and uploads it
// for indexing. The command blocks until the backend finishes chunking and
// embedding.
func UploadFileCmd(gw Gateway, path string) tea.Cmd {
	return func() tea.Msg {
		filename := filepath.Base(path)

		f, err := os.Open(path)
		if err != nil {
			return UploadResultMsg{Filename: filename, Err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), slowTimeout)
		defer cancel()

		resp, err := gw.Upload(ctx, filename, f)
		if err != nil {
			return UploadResultMsg{Filename: filename, Err: err}
		}
		return UploadResultMsg{
			Filename: filename,
			Name:     resp.DocumentName,
			FileType: resp.FileType,
			Chunks:   resp.NumChunks,
			Pages:    resp.NumPages,
		}
	}
}

// AskQuestionCmd creates a command that sends a question and reports the
// answer for the pending assistant message with messageID.
func AskQuestionCmd(gw Gateway, messageID, question, documentFilter string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), slowTimeout)
		defer cancel()

		resp, err := gw.Ask(ctx, question, documentFilter)
		if err != nil {
			return AnswerResultMsg{MessageID: messageID, Err: err}
		}
		return AnswerResultMsg{
			MessageID: messageID,
			Answer:    resp.Answer,
			Sources:   resp.ToSources(),
		}
	}
}

// DeleteDocumentCmd creates the fire-and-forget backend delete. The local
// library entry is gone before this command runs.
func DeleteDocumentCmd(gw Gateway, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		return DeleteResultMsg{Name: name, Err: gw.Delete(ctx, name)}
	}
}

// ClearChatCmd creates the fire-and-forget backend conversation reset.
func ClearChatCmd(gw Gateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		return ChatClearedMsg{Err: gw.ClearChat(ctx)}
	}
}

// ClearAllCmd creates the fire-and-forget full backend wipe.
func ClearAllCmd(gw Gateway) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		return AllClearedMsg{Err: gw.ClearAll(ctx)}
	}
}

// ExportChatCmd creates a command that fetches the backend's rendered
// conversation in the given format ("markdown" or "json").
func ExportChatCmd(gw Gateway, format string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), quickTimeout)
		defer cancel()

		content, err := gw.Export(ctx, format)
		return ExportResultMsg{Content: content, Format: format, Err: err}
	}
}
