// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom bar: backend readiness on the left, library and
// session counters on the right, with a transient notice in between.
type StatusBar struct {
	status model.SystemStatus
	stats  model.SessionStats

	docCount   int
	chunkCount int
	notice     string

	width int
	theme *styles.Theme
}

// NewStatusBar creates a status bar with nothing checked yet.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetStatus updates the backend health snapshot.
func (s *StatusBar) SetStatus(status model.SystemStatus) {
	s.status = status
}

// SetStats updates the session counters.
func (s *StatusBar) SetStats(stats model.SessionStats) {
	s.stats = stats
}

// SetLibrary updates the document and chunk counts.
func (s *StatusBar) SetLibrary(docs, chunks int) {
	s.docCount = docs
	s.chunkCount = chunks
}

// SetNotice sets the transient message; empty clears it.
func (s *StatusBar) SetNotice(notice string) {
	s.notice = notice
}

// healthText returns the styled readiness segment.
func (s StatusBar) healthText() string {
	switch {
	case !s.status.Checked:
		return s.theme.StatusWarning.Render("o Checking backend...")
	case s.status.Unreachable():
		return s.theme.StatusDegraded.Render("x Backend offline")
	case !s.status.OllamaRunning:
		return s.theme.StatusDegraded.Render("x Ollama not running")
	case !s.status.ModelsReady:
		missing := strings.Join(s.status.MissingModels, ", ")
		return s.theme.StatusWarning.Render("! Missing models: " + missing)
	default:
		return s.theme.StatusReady.Render("* Ready")
	}
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := s.healthText()

	right := strconv.Itoa(s.docCount) + " " + util.Pluralize(s.docCount, "doc", "docs") +
		" | " + strconv.Itoa(s.chunkCount) + " chunks" +
		" | " + strconv.Itoa(s.stats.QuestionsAsked) + " asked"

	middle := ""
	if s.notice != "" {
		middle = s.theme.StatusNotice.Render(s.notice)
	}

	// Squeeze the notice before the counters when space runs out
	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(middle) - 4
	if gap < 1 {
		middle = ""
		gap = s.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
		if gap < 1 {
			gap = 1
		}
	}

	padLeft := gap / 2
	padRight := gap - padLeft
	line := left + strings.Repeat(" ", padLeft) + middle + strings.Repeat(" ", padRight) + right
	return s.theme.StatusBar.Width(s.width).Render(line)
}
