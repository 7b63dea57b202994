// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the Study Buddy client.
//
// This package contains common helper functions used throughout the
// application for string manipulation, display formatting, and file
// operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-column truncation (CJK aware)
//
// Display Formatting:
//   - FormatBytes: human-readable file sizes
//   - Pluralize: count-aware noun forms
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long document names safely for the sidebar
//	display := util.TruncateWidth(doc.Name, 28)
//
//	// Write a chat export atomically to prevent partial files
//	err := util.AtomicWriteFile(path, data, 0644)
package util
