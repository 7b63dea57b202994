// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy TUI.
package components

import (
	"strings"

	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN COMPONENT
// =============================================================================

// examplePrompts are shown while the library is empty or no question has
// been asked yet.
var examplePrompts = []string{
	"What are the key concepts?",
	"Explain this in simple terms",
	"Summarize the main points",
	"Compare X and Y",
}

// Welcome is the empty-state screen shown before the first exchange.
type Welcome struct {
	version string
	hasDocs bool

	width  int
	height int
	theme  *styles.Theme
}

// NewWelcome creates a welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{version: "dev", theme: theme}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetHasDocuments switches the hint between "upload first" and "ask away".
func (w *Welcome) SetHasDocuments(has bool) {
	w.hasDocs = has
}

// SetSize sets the render dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the welcome screen.
func (w Welcome) View() string {
	var b strings.Builder

	b.WriteString(w.theme.WelcomeTitle.Render("Study Buddy"))
	b.WriteString("  ")
	b.WriteString(w.theme.WelcomeHint.Render("v" + w.version))
	b.WriteString("\n\n")
	b.WriteString(w.theme.WelcomeHint.Render("Your cozy AI study companion. Upload notes, ask anything."))
	b.WriteString("\n\n")

	if !w.hasDocs {
		b.WriteString(w.theme.WelcomeHint.Render("Get started: /upload <file>  (pdf, docx, txt, md)"))
	} else {
		b.WriteString(w.theme.WelcomeHint.Render("Try asking..."))
		b.WriteString("\n")
		for _, ex := range examplePrompts {
			b.WriteString(w.theme.ExamplePrompt.Render("  \"" + ex + "\""))
			b.WriteString("\n")
		}
	}

	return w.theme.Welcome.Width(w.width).Render(strings.TrimRight(b.String(), "\n"))
}
