// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend health and library listing for the Study Buddy CLI.
//
// Command: status [--json]
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// HandleStatus prints backend health, the document listing, and session
// counters. Returns the process exit code; a degraded backend still exits
// zero because the report itself succeeded.
func HandleStatus(client *api.Client, args *ArgParser) int {
	ctx := context.Background()

	status, err := client.Status(ctx)
	if err != nil {
		status = model.DegradedStatus()
	}

	docs, docsErr := client.Documents(ctx)
	stats, _ := client.Stats(ctx)

	if args.BoolFlag("json") {
		report := struct {
			Backend   string             `json:"backend"`
			Status    model.SystemStatus `json:"status"`
			Documents []string           `json:"documents"`
			Chunks    int                `json:"total_chunks"`
			Stats     model.SessionStats `json:"stats"`
		}{
			Backend:   client.BaseURL(),
			Status:    status,
			Documents: docs.Documents,
			Chunks:    docs.TotalChunks,
			Stats:     stats,
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	fmt.Println("Backend:", client.BaseURL())
	switch {
	case status.Unreachable():
		fmt.Println("Status:  offline")
	case status.Ready():
		fmt.Println("Status:  ready")
	default:
		fmt.Println("Status:  degraded")
		if len(status.MissingModels) > 0 {
			fmt.Println("Missing:", strings.Join(status.MissingModels, ", "))
		}
	}

	if docsErr == nil {
		fmt.Printf("\nDocuments (%d, %d chunks):\n", docs.Count, docs.TotalChunks)
		if len(docs.Documents) == 0 {
			fmt.Println("  (none)")
		}
		for _, name := range docs.Documents {
			fmt.Println("  -", name)
		}
	}

	fmt.Printf("\nSession: %d processed, %d asked, %d chunks retrieved\n",
		stats.DocumentsProcessed, stats.QuestionsAsked, stats.ChunksRetrieved)
	return 0
}
