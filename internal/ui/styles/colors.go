// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Study Buddy TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
// The palette is a warm "study cafe" scheme: terracotta accents on paper
// tones, with sage and amber for states.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Terracotta - Primary accent, brand, user highlights
var Terracotta = lipgloss.AdaptiveColor{Light: "#C45D3E", Dark: "#E08B6D"}

// TerracottaDeep - Darker terracotta for emphasis and borders
var TerracottaDeep = lipgloss.AdaptiveColor{Light: "#A84E32", Dark: "#C45D3E"}

// Sage - Success states, backend-ready indicator
var Sage = lipgloss.AdaptiveColor{Light: "#5B8A5F", Dark: "#8FBC94"}

// SageDeep - Darker sage for backgrounds
var SageDeep = lipgloss.AdaptiveColor{Light: "#49704C", Dark: "#2E4230"}

// Amber - Warnings, missing models, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D4A254", Dark: "#E6BE7E"}

// Rust - Errors, unreachable backend, destructive actions
var Rust = lipgloss.AdaptiveColor{Light: "#B3422C", Dark: "#E07A5F"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Paper - Main background, warm off-white
var Paper = lipgloss.AdaptiveColor{Light: "#FAF8F5", Dark: "#262220"}

// PaperDim - Headers, footers, side panels
var PaperDim = lipgloss.AdaptiveColor{Light: "#F3EDE7", Dark: "#1F1C1A"}

// PaperBright - Cards and highlighted rows
var PaperBright = lipgloss.AdaptiveColor{Light: "#EBE3DA", Dark: "#332E2A"}

// Border - Separators and subtle outlines
var Border = lipgloss.AdaptiveColor{Light: "#DFD5C8", Dark: "#443D38"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text, warm near-black
var TextPrimary = lipgloss.AdaptiveColor{Light: "#2D2A26", Dark: "#EDE7DF"}

// TextSecondary - Labels, citation metadata
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B6560", Dark: "#B5ACA3"}

// TextMuted - Hints, timestamps, placeholders
var TextMuted = lipgloss.AdaptiveColor{Light: "#9C9590", Dark: "#7D756D"}

// TextInverse - Text on terracotta backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FAF8F5", Dark: "#262220"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User question bubble - terracotta on paper
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#F6E3DC", Dark: "#4A2E24"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#8A3D28", Dark: "#F0C7B8"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#C45D3E", Dark: "#C45D3E"}

// Assistant answer bubble - neutral card tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F3EDE7", Dark: "#332E2A"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#2D2A26", Dark: "#EDE7DF"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#DFD5C8", Dark: "#544B44"}

// Failed answer bubble - rust tones
var ErrorBubbleBg = lipgloss.AdaptiveColor{Light: "#F7E0DB", Dark: "#47241C"}
var ErrorBubbleFg = lipgloss.AdaptiveColor{Light: "#8A3322", Dark: "#F0B5A5"}

// Source citation card - sage-tinted
var SourceCardBg = lipgloss.AdaptiveColor{Light: "#EDF2EC", Dark: "#27302A"}
var SourceCardFg = lipgloss.AdaptiveColor{Light: "#3E5941", Dark: "#B9D2BC"}
var SourceCardBorder = lipgloss.AdaptiveColor{Light: "#5B8A5F", Dark: "#49704C"}
