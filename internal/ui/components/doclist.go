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
// DOCUMENT SIDEBAR COMPONENT
// =============================================================================

// DocList is the sidebar listing uploaded documents in upload order. The
// row matching the active filter is highlighted; "All documents" is shown
// when no filter is set.
type DocList struct {
	docs     []*model.Document
	selected string

	width int
	theme *styles.Theme
}

// NewDocList creates an empty sidebar.
func NewDocList(theme *styles.Theme) DocList {
	return DocList{theme: theme, width: 30}
}

// SetWidth sets the sidebar width.
func (d *DocList) SetWidth(width int) {
	d.width = width
}

// SetDocuments replaces the listed documents.
func (d *DocList) SetDocuments(docs []*model.Document) {
	d.docs = docs
}

// SetSelected sets the highlighted filter name; empty means all documents.
func (d *DocList) SetSelected(name string) {
	d.selected = name
}

// View renders the sidebar.
func (d DocList) View() string {
	var b strings.Builder

	b.WriteString(d.theme.SidebarTitle.Render("Your Documents"))
	b.WriteString("\n\n")

	if len(d.docs) == 0 {
		b.WriteString(d.theme.DocMeta.Render("No documents yet."))
		b.WriteString("\n")
		b.WriteString(d.theme.DocMeta.Render("Use /upload <file>"))
		return d.theme.Sidebar.Width(d.width).Render(b.String())
	}

	// Scope line
	scope := "Searching: all documents"
	if d.selected != "" {
		scope = "Searching: " + util.TruncateWidth(d.selected, d.width-13)
	}
	b.WriteString(d.theme.DocMeta.Render(scope))
	b.WriteString("\n\n")

	nameWidth := d.width - 8
	for _, doc := range d.docs {
		badge := d.theme.DocBadge.Render(doc.Type.Badge())
		name := util.TruncateWidth(doc.Name, nameWidth)

		row := badge + " " + name
		if doc.Name == d.selected {
			row = badge + " " + d.theme.DocRowSelected.Render(name)
		} else {
			row = badge + " " + d.theme.DocRow.Render(name)
		}
		b.WriteString(row)
		b.WriteString("\n")

		if doc.Chunks > 0 {
			meta := "  " + strconv.Itoa(doc.Chunks) + " chunks"
			if doc.Pages > 0 {
				meta += ", " + strconv.Itoa(doc.Pages) + " " + util.Pluralize(doc.Pages, "page", "pages")
			}
			b.WriteString(d.theme.DocMeta.Render(meta))
			b.WriteString("\n")
		}
	}

	return d.theme.Sidebar.Width(d.width).Render(strings.TrimRight(b.String(), "\n"))
}
