// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of Study Buddy.
//
// The binary runs the full-screen TUI when invoked without arguments.
// With a subcommand it acts as a plain CLI that is safe to script and
// pipe:
//
//	studybuddy                     # full-screen TUI
//	studybuddy ask "question"      # one-shot question
//	studybuddy upload notes.pdf    # upload documents
//	studybuddy status              # backend health and library listing
//	studybuddy export --json       # save the transcript
//	studybuddy chat                # line-based REPL without the TUI
//
// Output renders markdown and color only when stdout is a TTY.
package cli
