// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// upload.go - Document upload and export commands for the Study Buddy CLI.
//
// Commands: "upload <file> ..." and "export [--format json] [--out DIR]".
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/export"
	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// HandleUpload uploads each named file in order and prints the result.
// Returns the process exit code; any failed file makes it non-zero.
func HandleUpload(client *api.Client, args *ArgParser) int {
	paths := args.Positional()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: studybuddy upload <file> ...")
		return 2
	}

	failures := 0
	for _, path := range paths {
		if !model.IsSupportedFile(path) {
			fmt.Fprintf(os.Stderr, "skip %s: unsupported type (want pdf, docx, txt, md)\n", path)
			failures++
			continue
		}

		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", path, err)
			failures++
			continue
		}

		resp, err := client.Upload(context.Background(), filepath.Base(path), f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fail %s: %v\n", path, err)
			failures++
			continue
		}

		fmt.Printf("ok   %s: %d %s, %d %s\n",
			resp.DocumentName,
			resp.NumChunks, util.Pluralize(resp.NumChunks, "chunk", "chunks"),
			resp.NumPages, util.Pluralize(resp.NumPages, "page", "pages"))
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// HandleExport saves the backend's conversation transcript to a local
// file. The --out flag overrides defaultDir. Returns the process exit
// code.
func HandleExport(client *api.Client, args *ArgParser, defaultDir string) int {
	format := "markdown"
	if args.Flag("format") == "json" || args.BoolFlag("json") {
		format = "json"
	}

	content, err := client.Export(context.Background(), format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dir := args.Flag("out")
	if dir == "" {
		dir = defaultDir
	}
	writer := export.NewWriter(dir)
	path, err := writer.SaveContent(content, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println("Exported to", path)
	return 0
}
