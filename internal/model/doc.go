// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client:
// documents, the document library, conversation messages with their
// pending/resolved/failed lifecycle, and backend status snapshots.
//
// Everything in this package is plain in-memory state. Nothing here talks
// to the network; the api package does that, and the app package folds
// results into these structures.
package model
