// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command for the Study Buddy CLI.
//
// Command: ask [question]
//
// Examples:
//
//	studybuddy ask "What are the key concepts?"
//	studybuddy ask --doc notes.pdf "Summarize chapter 2"
//	studybuddy ask --json "List the main definitions"
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/ui/components"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the glamour renderer for answer output.
// USABILITY: Renders markdown answers with formatting in a TTY.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderAnswer renders an answer for terminal display. Piped output stays
// plain markdown; a TTY without the full renderer still gets highlighted
// code blocks.
func renderAnswer(content string) string {
	if !IsStdoutTTY() {
		return content
	}
	if markdownRenderer == nil {
		return components.HighlightFencedBlocks(content)
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return components.HighlightFencedBlocks(content)
	}
	return rendered
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk runs one question against the backend and prints the answer.
// Returns the process exit code.
func HandleAsk(client *api.Client, args *ArgParser) int {
	question := args.Question()
	if question == "" {
		fmt.Fprintln(os.Stderr, "Usage: studybuddy ask [--doc NAME] [--json] \"question\"")
		return 2
	}

	resp, err := client.Ask(context.Background(), question, args.Flag("doc", "d"))
	if err != nil {
		if api.IsUnreachable(err) {
			fmt.Fprintln(os.Stderr, "Error: the study backend is not reachable. Is it running?")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	if args.BoolFlag("json") {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	fmt.Println(renderAnswer(resp.Answer))

	sources := resp.ToSources()
	if len(sources) > 0 {
		fmt.Println("Sources:")
		for i, src := range sources {
			fmt.Printf("  %d. %s, p. %d (%d%% match)\n", i+1, src.Document, src.Page, src.Relevance)
		}
	}
	return 0
}
