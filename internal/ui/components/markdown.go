// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN ANSWER RENDERER
// =============================================================================

// MarkdownRenderer renders assistant answers for the chat viewport.
// USABILITY: Answers come back as markdown; rendering gives headings,
// lists, and highlighted code instead of raw asterisks.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a renderer wrapped at the given width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	m := &MarkdownRenderer{width: width}
	m.rebuild()
	return m
}

// SetWidth changes the wrap width, rebuilding the renderer if needed.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width == m.width {
		return
	}
	m.width = width
	m.rebuild()
}

// Render renders markdown for terminal display. Returns the original
// content if rendering fails or the renderer is unavailable.
func (m *MarkdownRenderer) Render(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

func (m *MarkdownRenderer) rebuild() {
	width := m.width
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = renderer
}
