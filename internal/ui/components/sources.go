// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// =============================================================================
// SOURCE CITATION CARDS
// =============================================================================

// Excerpts longer than this are trimmed in the card.
const maxExcerptRunes = 200

// SourceList renders the citation cards under an assistant answer.
type SourceList struct {
	sources []model.Source

	width int
	theme *styles.Theme
}

// NewSourceList creates a source list renderer.
func NewSourceList(theme *styles.Theme) SourceList {
	return SourceList{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (s *SourceList) SetWidth(width int) {
	s.width = width
}

// SetSources replaces the rendered citations. Backend order is preserved.
func (s *SourceList) SetSources(sources []model.Source) {
	s.sources = sources
}

// View renders the cards, one per citation. Empty input renders nothing.
func (s SourceList) View() string {
	if len(s.sources) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.theme.SourceHeader.Render("Sources"))
	b.WriteString("\n")

	cardWidth := s.width - 6
	if cardWidth < 20 {
		cardWidth = 20
	}

	for i, src := range s.sources {
		header := strconv.Itoa(i+1) + ". " + src.Document
		if src.Page > 0 {
			header += ", p. " + strconv.Itoa(src.Page)
		}
		relevance := s.theme.SourceRelevance.Render(strconv.Itoa(src.Relevance) + "% match")

		excerpt := util.TruncateRunes(strings.TrimSpace(src.Content), maxExcerptRunes)

		card := s.theme.SourceHeader.Render(header) + "  " + relevance + "\n" +
			s.theme.SourceExcerpt.Render(excerpt)
		b.WriteString(s.theme.SourceCard.Width(cardWidth).Render(card))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
