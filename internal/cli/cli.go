// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command routing for the studybuddy binary.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (set at build time from main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which subcommand was requested.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdUpload
	CmdStatus
	CmdExport
	CmdChat
	CmdVersion
	CmdHelp
)

// Parse splits os.Args into a command and its remaining arguments.
// No arguments means the full-screen TUI.
func Parse(argv []string) (Command, *ArgParser) {
	if len(argv) == 0 {
		return CmdTUI, NewArgParser(nil)
	}

	name := strings.ToLower(argv[0])
	rest := argv[1:]

	switch name {
	case "ask", "a":
		return CmdAsk, NewArgParser(rest)
	case "upload", "add":
		return CmdUpload, NewArgParser(rest)
	case "status", "st":
		return CmdStatus, NewArgParser(rest)
	case "export":
		return CmdExport, NewArgParser(rest)
	case "chat":
		return CmdChat, NewArgParser(rest)
	case "version", "--version", "-v":
		return CmdVersion, NewArgParser(rest)
	case "help", "--help", "-h":
		return CmdHelp, NewArgParser(rest)
	default:
		// Unknown first token is treated as a question for convenience
		if strings.HasPrefix(name, "-") {
			return CmdTUI, NewArgParser(argv)
		}
		return CmdAsk, NewArgParser(argv)
	}
}

// =============================================================================
// VERSION AND HELP
// =============================================================================

// HandleVersion prints version information. Returns the process exit code.
func HandleVersion(args *ArgParser) int {
	if args.BoolFlag("json") {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"built\":%q}\n", Version, GitCommit, BuildDate)
		return 0
	}
	fmt.Printf("studybuddy %s (%s, built %s)\n", Version, GitCommit, BuildDate)
	return 0
}

// HandleHelp prints top-level usage. Returns the process exit code.
func HandleHelp() int {
	fmt.Fprintln(os.Stdout, `studybuddy - document question answering for your study notes

Usage:
  studybuddy                      Full-screen TUI
  studybuddy ask [flags] "q"      One-shot question
  studybuddy upload <file> ...    Upload documents
  studybuddy status [--json]      Backend health and library listing
  studybuddy export [flags]       Save the conversation transcript
  studybuddy chat                 Line-based REPL without the TUI
  studybuddy version              Print version

Flags:
  --doc NAME, -d NAME   Scope a question to one document
  --json                Machine-readable output
  --format FORMAT       Export format (markdown or json)
  --out DIR             Export directory
  --backend URL         Override the backend URL

Environment:
  STUDYBUDDY_BACKEND_URL   Backend URL (default http://127.0.0.1:8000)
  STUDYBUDDY_WATCH_DIR     Drop folder watched for new documents
  NO_COLOR                 Disable colored output`)
	return 0
}
