// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the client-side application state and commands.
package app

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// =============================================================================
// CONTAINER
// =============================================================================

// Container is the single owner of client-side application state. It is
// driven from the Bubble Tea loop: intents return commands, and Apply folds
// the resulting messages back into state. Not safe for concurrent use; all
// access happens on the program loop.
type Container struct {
	gateway Gateway

	// Domain state
	Library      *model.Library
	Conversation *model.Conversation
	Status       model.SystemStatus
	Stats        model.SessionStats

	// BackendChunks is the chunk total reported by the last listing. The
	// listing is authoritative; locally-known per-document counts may lag.
	BackendChunks int

	// Notice is a transient line for the status area ("Added notes.pdf").
	Notice string

	// In-flight tracking. loading gates question submission only; uploads
	// and deletes remain allowed while an answer is pending.
	loading   bool
	pendingID string

	uploading   bool
	uploadQueue []string
}

// NewContainer creates an empty container bound to a backend gateway.
func NewContainer(gw Gateway) *Container {
	return &Container{
		gateway:      gw,
		Library:      model.NewLibrary(),
		Conversation: model.NewConversation(),
	}
}

// Loading reports whether an answer is in flight. While true, question
// submission is rejected.
func (c *Container) Loading() bool {
	return c.loading
}

// Uploading reports whether an upload is in flight.
func (c *Container) Uploading() bool {
	return c.uploading
}

// QueuedUploads returns how many files are waiting behind the in-flight
// upload.
func (c *Container) QueuedUploads() int {
	return len(c.uploadQueue)
}

// ClearNotice drops the transient status line.
func (c *Container) ClearNotice() {
	c.Notice = ""
}

// =============================================================================
// INTENTS
// =============================================================================

// Refresh returns the coordinated status, documents, and stats refresh.
func (c *Container) Refresh() tea.Cmd {
	return RefreshCmd(c.gateway)
}

// SubmitQuestion records the question locally, appends a pending assistant
// placeholder, and returns the command that asks the backend. Returns nil
// when the text is blank or another answer is already in flight.
func (c *Container) SubmitQuestion(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" || c.loading {
		return nil
	}

	c.Conversation.AddUserMessage(text)
	pending := c.Conversation.AddPendingAssistant()
	c.loading = true
	c.pendingID = pending.ID

	return AskQuestionCmd(c.gateway, pending.ID, text, c.Library.Selected())
}

// EnqueueUploads queues local files for sequential upload and starts the
// first transfer if none is in flight. Unsupported extensions are dropped
// with a notice. Uploads are allowed while an answer is pending.
func (c *Container) EnqueueUploads(paths ...string) tea.Cmd {
	for _, path := range paths {
		if !model.IsSupportedFile(path) {
			c.Notice = "Skipped unsupported file: " + path
			continue
		}
		c.uploadQueue = append(c.uploadQueue, path)
	}
	if c.uploading || len(c.uploadQueue) == 0 {
		return nil
	}
	return c.startNextUpload()
}

// RemoveDocument drops the document from the local library immediately and
// fires the backend delete without waiting on it. A selection matching the
// removed name is cleared in the same step.
func (c *Container) RemoveDocument(name string) tea.Cmd {
	c.Library.Remove(name)
	c.Notice = "Removed " + name
	return DeleteDocumentCmd(c.gateway, name)
}

// SelectDocument sets the retrieval filter; empty clears it.
func (c *Container) SelectDocument(name string) {
	c.Library.Select(name)
}

// ClearChat wipes the local conversation immediately and fires the backend
// reset without waiting on it.
func (c *Container) ClearChat() tea.Cmd {
	c.Conversation.ClearHistory()
	c.loading = false
	c.pendingID = ""
	return ClearChatCmd(c.gateway)
}

// ClearAll wipes the local conversation and library immediately, fires the
// backend wipe, and refreshes the counters afterwards.
func (c *Container) ClearAll() tea.Cmd {
	c.Conversation.ClearHistory()
	c.Library = model.NewLibrary()
	c.BackendChunks = 0
	c.loading = false
	c.pendingID = ""
	c.Notice = "Cleared all documents and chat"
	return tea.Batch(ClearAllCmd(c.gateway), FetchStatsCmd(c.gateway))
}

// Export fetches the backend's rendered transcript in the given format.
func (c *Container) Export(format string) tea.Cmd {
	return ExportChatCmd(c.gateway, format)
}

// =============================================================================
// MESSAGE FOLDING
// =============================================================================

// Apply folds a backend result message into state. Returns a follow-up
// command when the result triggers more work (next queued upload, counter
// refresh). Unrecognized messages are ignored.
func (c *Container) Apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case StatusResultMsg:
		if msg.Err != nil {
			c.Status = model.DegradedStatus()
			return nil
		}
		c.Status = msg.Status
		return nil

	case DocumentsResultMsg:
		// Stale listings beat empty ones; keep what we have on error
		if msg.Err != nil {
			return nil
		}
		c.Library.ReplaceAll(msg.Names)
		c.BackendChunks = msg.TotalChunks
		return nil

	case StatsResultMsg:
		if msg.Err != nil {
			return nil
		}
		c.Stats = msg.Stats
		return nil

	case UploadResultMsg:
		return c.applyUpload(msg)

	case WatchUploadResultMsg:
		c.applyWatchUpload(msg)
		return nil

	case AnswerResultMsg:
		return c.applyAnswer(msg)

	case DeleteResultMsg, ChatClearedMsg, AllClearedMsg:
		// Fire-and-forget; local state already moved on
		return nil
	}
	return nil
}

// applyUpload folds one upload outcome and advances the queue.
func (c *Container) applyUpload(msg UploadResultMsg) tea.Cmd {
	if msg.Err != nil {
		c.Notice = "Upload failed: " + msg.Filename
	} else {
		docType, _ := model.ParseDocType(msg.FileType)
		c.Library.Add(model.NewDocument(msg.Name, docType, msg.Chunks, msg.Pages))
		c.Notice = "Added " + msg.Name +
			" (" + strconv.Itoa(msg.Chunks) + " " + util.Pluralize(msg.Chunks, "chunk", "chunks") + ")"
	}

	if len(c.uploadQueue) > 0 {
		return c.startNextUpload()
	}
	c.uploading = false
	return nil
}

// applyWatchUpload folds a drop-folder upload outcome. The watcher runs
// its own pacing outside the queue, so this only records the document; it
// must not touch uploading or uploadQueue, which track the foreground
// transfer.
func (c *Container) applyWatchUpload(msg WatchUploadResultMsg) {
	if msg.Err != nil {
		c.Notice = "Upload failed: " + msg.Filename
		return
	}
	docType, _ := model.ParseDocType(msg.FileType)
	c.Library.Add(model.NewDocument(msg.Name, docType, msg.Chunks, msg.Pages))
	c.Notice = "Added " + msg.Name +
		" (" + strconv.Itoa(msg.Chunks) + " " + util.Pluralize(msg.Chunks, "chunk", "chunks") + ")"
}

// applyAnswer resolves the pending assistant placeholder in place. A late
// answer whose placeholder was cleared away resolves nothing but still
// releases the loading gate.
func (c *Container) applyAnswer(msg AnswerResultMsg) tea.Cmd {
	if msg.Err != nil {
		c.Conversation.ResolveAsError(msg.MessageID)
	} else {
		c.Conversation.Resolve(msg.MessageID, msg.Answer, msg.Sources)
	}

	if msg.MessageID != c.pendingID {
		return nil
	}
	c.loading = false
	c.pendingID = ""
	// Counters moved on the backend; pick them up
	return FetchStatsCmd(c.gateway)
}

// startNextUpload pops the queue head and begins its transfer.
func (c *Container) startNextUpload() tea.Cmd {
	path := c.uploadQueue[0]
	c.uploadQueue = c.uploadQueue[1:]
	c.uploading = true
	return UploadFileCmd(c.gateway, path)
}
