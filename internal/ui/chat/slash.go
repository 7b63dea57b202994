// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the Study Buddy TUI.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// helpText lists the slash commands, shown by /help and F1.
const helpText = `Commands:
  /upload <file> ...   upload study documents (pdf, docx, txt, md)
  /docs                refresh the document list
  /use <name>          limit questions to one document
  /use all             search every document again
  /remove <name>       delete a document
  /refresh             re-check backend status
  /clear               clear the chat
  /clear-all           remove all documents and chat
  /export [json]       save the conversation transcript
  /help                show this help
  /quit                exit`

// handleSlashCommand dispatches one /command line.
func (m Model) handleSlashCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/help":
		m.showHelp = true
		m.refreshTranscript()
		return m, nil

	case "/refresh", "/docs":
		return m, m.container.Refresh()

	case "/upload":
		if len(args) == 0 {
			m.container.Notice = "Usage: /upload <file> ..."
			m.syncFromContainer()
			return m, nil
		}
		cmd := m.container.EnqueueUploads(args...)
		m.syncFromContainer()
		m.refreshTranscript()
		return m, cmd

	case "/use":
		if len(args) == 0 {
			m.container.Notice = "Usage: /use <name> or /use all"
			m.syncFromContainer()
			return m, nil
		}
		name := strings.Join(args, " ")
		if strings.EqualFold(name, "all") {
			m.container.SelectDocument("")
			m.container.Notice = "Searching all documents"
		} else {
			m.container.SelectDocument(name)
			m.container.Notice = "Searching only " + name
		}
		m.syncFromContainer()
		return m, nil

	case "/remove":
		if len(args) == 0 {
			m.container.Notice = "Usage: /remove <name>"
			m.syncFromContainer()
			return m, nil
		}
		cmd := m.container.RemoveDocument(strings.Join(args, " "))
		m.syncFromContainer()
		m.refreshTranscript()
		return m, cmd

	case "/clear":
		cmd := m.container.ClearChat()
		m.refreshTranscript()
		return m, cmd

	case "/clear-all":
		cmd := m.container.ClearAll()
		m.syncFromContainer()
		m.refreshTranscript()
		return m, cmd

	case "/export":
		format := "markdown"
		if len(args) > 0 && strings.EqualFold(args[0], "json") {
			format = "json"
		}
		return m, m.container.Export(format)

	default:
		m.container.Notice = "Unknown command " + command + " (try /help)"
		m.syncFromContainer()
		return m, nil
	}
}
