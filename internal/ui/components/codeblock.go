// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Study Buddy TUI.
package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// CODE BLOCK HIGHLIGHTER
// =============================================================================

// HighlightFencedBlocks applies ANSI syntax highlighting to fenced code
// blocks in plain-terminal output. Used by the CLI path, where the full
// markdown renderer is skipped for piped output but a TTY still benefits
// from highlighted code.
//
// Non-code text passes through untouched. A block whose language cannot be
// resolved is returned as-is.
func HighlightFencedBlocks(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	var block []string
	var language string
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if !inBlock {
				inBlock = true
				language = strings.TrimPrefix(trimmed, "```")
				block = block[:0]
				continue
			}
			out = append(out, highlightCode(strings.Join(block, "\n"), language))
			inBlock = false
			continue
		}
		if inBlock {
			block = append(block, line)
			continue
		}
		out = append(out, line)
	}

	// Unterminated fence: emit what accumulated, unhighlighted
	if inBlock {
		out = append(out, block...)
	}

	return strings.Join(out, "\n")
}

// highlightCode returns code with ANSI color codes applied, or the
// original code if highlighting fails at any step.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		return code
	}

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(b.String(), "\n")
}
