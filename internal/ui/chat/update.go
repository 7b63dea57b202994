// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the Study Buddy TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/studybuddy-tui/internal/app"
)

// Update handles all incoming messages for the chat view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.container.Loading() || m.container.Uploading() {
			m.refreshTranscript()
		}
		return m, cmd

	case app.ExportResultMsg:
		return m.handleExportResult(msg)

	case app.StatusResultMsg, app.DocumentsResultMsg, app.StatsResultMsg,
		app.UploadResultMsg, app.WatchUploadResultMsg, app.AnswerResultMsg,
		app.DeleteResultMsg, app.ChatClearedMsg, app.AllClearedMsg:
		if cmd := m.container.Apply(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.syncFromContainer()
		m.refreshTranscript()
		return m, tea.Batch(cmds...)
	}

	// Everything else feeds the focused input and the viewport
	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

// handleKey routes one key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keyMap.Refresh):
		return m, m.container.Refresh()

	case key.Matches(msg, m.keyMap.ClearChat):
		cmd := m.container.ClearChat()
		m.refreshTranscript()
		return m, cmd

	case key.Matches(msg, m.keyMap.Export):
		return m, m.container.Export("markdown")

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown),
		key.Matches(msg, m.keyMap.Home), key.Matches(msg, m.keyMap.End):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit reads the input line and dispatches it as a slash command
// or a question.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		m.input.Reset()
		return m.handleSlashCommand(text)
	}

	// Questions are gated while an answer is in flight; the input keeps
	// its text so nothing typed is lost
	cmd := m.container.SubmitQuestion(text)
	if cmd == nil {
		return m, nil
	}
	m.input.Reset()
	m.refreshTranscript()
	m.viewport.GotoBottom()
	return m, cmd
}

// handleExportResult saves a backend-rendered transcript to disk.
func (m Model) handleExportResult(msg app.ExportResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Backend unavailable: fall back to the local conversation log
		path, err := m.exporter.SaveConversation(m.container.Conversation, "markdown")
		if err != nil {
			m.container.Notice = "Export failed"
		} else {
			m.container.Notice = "Exported to " + path
		}
		m.syncFromContainer()
		return m, nil
	}

	path, err := m.exporter.SaveContent(msg.Content, msg.Format)
	if err != nil {
		m.container.Notice = "Export failed"
	} else {
		m.container.Notice = "Exported to " + path
	}
	m.syncFromContainer()
	return m, nil
}

// resize recomputes component dimensions for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	chatWidth := m.chatWidth()
	// Header, input box, and status bar take the vertical margins
	viewportHeight := height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	m.viewport.Width = chatWidth
	m.viewport.Height = viewportHeight
	m.input.Width = chatWidth - 6
	m.statusBar.SetWidth(width)
	m.docList.SetWidth(sidebarWidth)
	m.sources.SetWidth(chatWidth - 4)
	m.welcome.SetSize(chatWidth, viewportHeight)
	m.markdown.SetWidth(chatWidth - 4)
	m.ready = true
}

// syncFromContainer pushes container state into the display components.
func (m *Model) syncFromContainer() {
	m.statusBar.SetStatus(m.container.Status)
	m.statusBar.SetStats(m.container.Stats)
	m.statusBar.SetLibrary(m.container.Library.Count(), m.container.BackendChunks)
	m.statusBar.SetNotice(m.container.Notice)
	m.docList.SetDocuments(m.container.Library.Documents())
	m.docList.SetSelected(m.container.Library.Selected())
	m.welcome.SetHasDocuments(!m.container.Library.IsEmpty())
}

// refreshTranscript rebuilds the viewport content and keeps the view
// pinned to the bottom when it already was.
func (m *Model) refreshTranscript() {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderTranscript())
	if atBottom {
		m.viewport.GotoBottom()
	}
}
