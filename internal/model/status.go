// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client.
package model

// UnreachableBackendText is the sentinel missing-model entry reported when
// the backend cannot be contacted at all, so the UI can distinguish
// "checked, unreachable" from "models missing".
const UnreachableBackendText = "Unable to connect to backend"

// =============================================================================
// SYSTEM STATUS
// =============================================================================

// SystemStatus is a snapshot of backend health. Snapshots are replaced
// wholesale on every status check; there are no partial updates.
type SystemStatus struct {
	// OllamaRunning reports whether the backend's Ollama process responded.
	OllamaRunning bool `json:"ollama_running"`
	// ModelsReady reports whether both the LLM and the embedding model are
	// available.
	ModelsReady bool `json:"models_ready"`
	// MissingModels lists models the backend still needs pulled, or the
	// unreachable sentinel.
	MissingModels []string `json:"missing_models"`
	// Checked is false until the first status check completes, letting the
	// UI distinguish "never checked" from "checked, unreachable".
	Checked bool `json:"-"`
}

// DegradedStatus returns the fixed snapshot used when the backend is
// unreachable. Stale data is never left behind a failed check.
func DegradedStatus() SystemStatus {
	return SystemStatus{
		OllamaRunning: false,
		ModelsReady:   false,
		MissingModels: []string{UnreachableBackendText},
		Checked:       true,
	}
}

// Ready reports whether the backend can answer questions.
func (s SystemStatus) Ready() bool {
	return s.OllamaRunning && s.ModelsReady
}

// Unreachable reports whether the snapshot is the connectivity sentinel.
func (s SystemStatus) Unreachable() bool {
	return len(s.MissingModels) == 1 && s.MissingModels[0] == UnreachableBackendText
}

// =============================================================================
// SESSION STATS
// =============================================================================

// SessionStats holds the backend's aggregate session counters. The values
// are passed through from /stats and displayed, nothing more.
type SessionStats struct {
	DocumentsProcessed int `json:"documents_processed"`
	QuestionsAsked     int `json:"questions_asked"`
	ChunksRetrieved    int `json:"chunks_retrieved"`
}
