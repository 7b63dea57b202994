// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the client-side application state and commands.
package app

import (
	"context"
	"io"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// Gateway is the backend surface the application depends on. *api.Client
// satisfies it; tests substitute fakes.
type Gateway interface {
	Status(ctx context.Context) (model.SystemStatus, error)
	Documents(ctx context.Context) (api.DocumentsResponse, error)
	Stats(ctx context.Context) (model.SessionStats, error)
	Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error)
	Delete(ctx context.Context, name string) error
	Ask(ctx context.Context, question, documentFilter string) (*api.AskResponse, error)
	ClearChat(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Export(ctx context.Context, format string) (string, error)
}

var _ Gateway = (*api.Client)(nil)
