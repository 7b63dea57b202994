// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Study Buddy backend.
//
// The backend is a local document question-answering service. This package
// wraps its REST endpoints behind typed methods: health checks (/status),
// document management (/upload, /documents), question answering (/ask),
// session statistics (/stats), and conversation maintenance (/clear-chat,
// /clear-all, /export).
//
// All methods take a context.Context and translate transport failures into
// typed ClientError values. Raw backend errors never reach the UI layer;
// callers branch on error predicates like IsUnreachable.
//
// # Usage
//
//	client := api.NewClient()
//	status, err := client.Status(ctx)
//	if api.IsUnreachable(err) {
//	    // show degraded banner
//	}
package api
