// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the client-side application state and commands.
package app

import (
	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// =============================================================================
// BACKEND RESULT MESSAGES
// =============================================================================

// StatusResultMsg carries the outcome of a status check.
type StatusResultMsg struct {
	Status model.SystemStatus
	Err    error
}

// DocumentsResultMsg carries a backend document listing.
type DocumentsResultMsg struct {
	Names       []string
	TotalChunks int
	Err         error
}

// StatsResultMsg carries refreshed session counters.
type StatsResultMsg struct {
	Stats model.SessionStats
	Err   error
}

// UploadResultMsg carries the outcome of one document upload.
type UploadResultMsg struct {
	Filename string
	Name     string
	FileType string
	Chunks   int
	Pages    int
	Err      error
}

// WatchUploadResultMsg carries the outcome of a drop-folder upload. It is
// deliberately a separate type from UploadResultMsg: watcher uploads run
// outside the container's sequential queue, so folding one in must never
// advance the queue or clear the uploading flag of a foreground transfer.
type WatchUploadResultMsg struct {
	Filename string
	Name     string
	FileType string
	Chunks   int
	Pages    int
	Err      error
}

// AnswerResultMsg carries the backend's answer for the pending assistant
// message with the given ID.
type AnswerResultMsg struct {
	MessageID string
	Answer    string
	Sources   []model.Source
	Err       error
}

// DeleteResultMsg carries the outcome of a fire-and-forget delete. The
// local library was already updated when the delete was issued.
type DeleteResultMsg struct {
	Name string
	Err  error
}

// ChatClearedMsg carries the outcome of a fire-and-forget backend chat
// reset.
type ChatClearedMsg struct {
	Err error
}

// AllClearedMsg carries the outcome of a fire-and-forget full backend
// wipe.
type AllClearedMsg struct {
	Err error
}

// ExportResultMsg carries the backend's rendered conversation export.
type ExportResultMsg struct {
	Content string
	Format  string
	Err     error
}
