// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy
// TUI: the status bar, the document sidebar, source citation cards, the
// welcome screen, and the markdown answer renderer.
//
// Components are pure view helpers. They hold display state and a theme,
// render strings, and never talk to the backend.
package components
