// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the Study Buddy TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// View renders the complete chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting Study Buddy..."
	}

	header := m.renderHeader()
	input := m.renderInput()
	status := m.statusBar.View()

	chatColumn := lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), input)

	var body string
	if m.theme.ShowSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, chatColumn, m.docList.View())
	} else {
		body = chatColumn
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderHeader renders the top title line.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Study Buddy")
	subtitle := m.theme.HeaderSubtitle.Render("ask your documents anything")
	return m.theme.Header.Width(m.width).Render(title + "  " + subtitle)
}

// renderInput renders the question input box, with the loading hint while
// an answer is in flight.
func (m Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("? ")
	line := prompt + m.input.View()
	if m.container.Loading() {
		line = prompt + m.theme.InputPlaceholder.Render("Waiting for the answer...")
	}
	return m.theme.InputContainer.Width(m.chatWidth() - 2).Render(line)
}

// renderTranscript renders the full conversation for the viewport.
func (m Model) renderTranscript() string {
	if m.showHelp {
		return helpText
	}
	if m.container.Conversation.IsEmpty() {
		return m.welcome.View()
	}

	var b strings.Builder
	for _, msg := range m.container.Conversation.GetHistory() {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n\n")
	}

	if m.container.Uploading() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.StatusNotice.Render(" Processing upload..."))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderMessage renders one conversation turn with its citations.
func (m Model) renderMessage(msg *model.Message) string {
	label := m.theme.RoleLabel.Render(msg.Role.DisplayName())
	stamp := m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
	header := label + " " + stamp

	bubbleWidth := m.chatWidth() - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	switch {
	case msg.Role == model.RoleUser:
		return header + "\n" + m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Content)

	case msg.IsPending():
		return header + "\n" + m.theme.PendingBubble.Render(m.spinner.View()+" Thinking...")

	case msg.State == model.StateFailed:
		return header + "\n" + m.theme.ErrorBubble.MaxWidth(bubbleWidth).Render(msg.Content)

	default:
		body := m.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(m.markdown.Render(msg.Content))
		if msg.HasSources() {
			sources := m.sources
			sources.SetSources(msg.Sources)
			body += "\n" + sources.View()
		}
		return header + "\n" + body
	}
}
