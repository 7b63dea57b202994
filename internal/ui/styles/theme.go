// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Study Buddy TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// LayoutMode describes how much room the terminal gives us.
type LayoutMode int

const (
	// LayoutNarrow hides the document sidebar.
	LayoutNarrow LayoutMode = iota
	// LayoutNormal shows chat plus sidebar.
	LayoutNormal
	// LayoutWide adds breathing room around the chat column.
	LayoutWide
)

// Sidebar is shown at and above this terminal width.
const sidebarMinWidth = 90

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorBubble     lipgloss.Style
	PendingBubble   lipgloss.Style
	RoleLabel       lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// SOURCE CITATION STYLES
	// ==========================================================================

	SourceCard      lipgloss.Style
	SourceHeader    lipgloss.Style
	SourceExcerpt   lipgloss.Style
	SourceRelevance lipgloss.Style

	// ==========================================================================
	// DOCUMENT SIDEBAR STYLES
	// ==========================================================================

	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	DocRow         lipgloss.Style
	DocRowSelected lipgloss.Style
	DocBadge       lipgloss.Style
	DocMeta        lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar      lipgloss.Style
	StatusReady    lipgloss.Style
	StatusDegraded lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusNotice   lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style

	// ==========================================================================
	// WELCOME AND LOADING STYLES
	// ==========================================================================

	Welcome       lipgloss.Style
	WelcomeTitle  lipgloss.Style
	WelcomeHint   lipgloss.Style
	ExamplePrompt lipgloss.Style
	Spinner       lipgloss.Style
}

// NewTheme creates a theme sized for the current terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta).
		Background(PaperDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(ErrorBubbleFg).
		Background(ErrorBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rust).
		Padding(0, 2).
		MarginRight(4)

	t.PendingBubble = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		MarginRight(4)

	t.RoleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Source citations
	t.SourceCard = lipgloss.NewStyle().
		Foreground(SourceCardFg).
		Background(SourceCardBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(SourceCardBorder).
		Padding(0, 1).
		MarginLeft(2)

	t.SourceHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Sage)

	t.SourceExcerpt = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.SourceRelevance = lipgloss.NewStyle().
		Foreground(Amber)

	// Document sidebar
	t.Sidebar = lipgloss.NewStyle().
		Background(PaperDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Border).
		Padding(1, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta)

	t.DocRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.DocRowSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Terracotta)

	t.DocBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(TerracottaDeep).
		Padding(0, 1)

	t.DocMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(PaperDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusReady = lipgloss.NewStyle().
		Bold(true).
		Foreground(Sage)

	t.StatusDegraded = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rust)

	t.StatusWarning = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	t.StatusNotice = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Welcome screen
	t.Welcome = lipgloss.NewStyle().
		Padding(1, 2).
		Align(lipgloss.Center)

	t.WelcomeTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Terracotta)

	t.WelcomeHint = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ExamplePrompt = lipgloss.NewStyle().
		Foreground(Sage).
		Italic(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Terracotta)
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the layout mode for the current width.
func (t *Theme) GetLayoutMode() LayoutMode {
	switch {
	case t.Width < sidebarMinWidth:
		return LayoutNarrow
	case t.Width < 140:
		return LayoutNormal
	default:
		return LayoutWide
	}
}

// ShowSidebar reports whether there is room for the document sidebar.
func (t *Theme) ShowSidebar() bool {
	return t.GetLayoutMode() != LayoutNarrow
}
