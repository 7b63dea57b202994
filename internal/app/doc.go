// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the client-side application state and the asynchronous
// commands that mutate it.
//
// The Container owns the document library, the conversation log, the system
// status snapshot, and the session counters. All backend traffic runs as
// Bubble Tea commands created in this package; each command finishes by
// returning a typed result message, and Container.Apply folds that message
// into state on the single program loop. Nothing outside this package
// mutates application state.
//
// State changes follow a local-first policy: deletes and clears apply to
// local state immediately and the backend call is fire-and-forget, while
// uploads and answers stay pending until the backend confirms.
package app
