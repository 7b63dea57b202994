// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the Study Buddy TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/studybuddy-tui/internal/app"
	"github.com/jeranaias/studybuddy-tui/internal/export"
	"github.com/jeranaias/studybuddy-tui/internal/ui/components"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
)

// Sidebar width when visible.
const sidebarWidth = 32

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. All application state
// lives in the app.Container; this model owns display state only.
type Model struct {
	// Application state
	container *app.Container

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	statusBar components.StatusBar
	docList   components.DocList
	sources   components.SourceList
	welcome   components.Welcome
	markdown  *components.MarkdownRenderer

	// Key bindings
	keyMap KeyMap

	// Export writer for saving transcripts locally
	exporter *export.Writer

	// Display flags
	showHelp bool
	ready    bool
	version  string
}

// New creates the chat view bound to an application container.
func New(container *app.Container, theme *styles.Theme, exporter *export.Writer, version string) Model {
	input := textinput.New()
	input.Placeholder = "Ask about your documents..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(version)

	return Model{
		container: container,
		theme:     theme,
		viewport:  viewport.New(80, 20),
		input:     input,
		spinner:   sp,
		statusBar: components.NewStatusBar(theme),
		docList:   components.NewDocList(theme),
		sources:   components.NewSourceList(theme),
		welcome:   welcome,
		markdown:  components.NewMarkdownRenderer(76),
		keyMap:    DefaultKeyMap(),
		exporter:  exporter,
		version:   version,
	}
}

// Init starts the spinner, the cursor blink, and the first backend refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.container.Refresh(),
	)
}

// chatWidth returns the width available to the transcript column.
func (m Model) chatWidth() int {
	if m.theme.ShowSidebar() {
		return m.width - sidebarWidth
	}
	return m.width
}
