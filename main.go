// Study Buddy TUI - A cozy terminal interface for studying your own documents.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/app"
	"github.com/jeranaias/studybuddy-tui/internal/cli"
	"github.com/jeranaias/studybuddy-tui/internal/config"
	"github.com/jeranaias/studybuddy-tui/internal/export"
	"github.com/jeranaias/studybuddy-tui/internal/ui/chat"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
	"github.com/jeranaias/studybuddy-tui/internal/watch"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default configuration: %v\n", err)
		cfg = config.Default()
	}
	cfg.ApplyEnvOverrides()
	if url := args.Flag("backend"); url != "" {
		cfg.Backend.URL = url
	}

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:       cfg.Backend.URL,
		Timeout:       cfg.Backend.Timeout(),
		AskTimeout:    cfg.Backend.AskTimeout(),
		UploadTimeout: cfg.Backend.UploadTimeout(),
	})

	switch cmd {
	case cli.CmdAsk:
		os.Exit(cli.HandleAsk(client, args))
	case cli.CmdUpload:
		os.Exit(cli.HandleUpload(client, args))
	case cli.CmdStatus:
		os.Exit(cli.HandleStatus(client, args))
	case cli.CmdExport:
		os.Exit(cli.HandleExport(client, args, cfg.Export.Dir))
	case cli.CmdChat:
		os.Exit(cli.HandleChat(client, args))
	case cli.CmdVersion:
		os.Exit(cli.HandleVersion(args))
	case cli.CmdHelp:
		os.Exit(cli.HandleHelp())
	default:
		runTUI(cfg, client)
	}
}

// runTUI starts the full-screen interface.
func runTUI(cfg *config.Config, client *api.Client) {
	theme := styles.NewTheme()
	container := app.NewContainer(client)
	exporter := export.NewWriter(cfg.Export.Dir)

	m := chat.New(container, theme, exporter, Version)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Drop folder: files landing in the watched directory upload in the
	// background and surface in the TUI as regular upload results.
	if cfg.Watch.Enabled && cfg.Watch.Dir != "" {
		watcher, err := watch.New(cfg.Watch.Dir, cfg.Watch.UploadsPerMinute, func(ctx context.Context, path string) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			resp, err := client.Upload(ctx, filepath.Base(path), f)
			if err != nil {
				p.Send(app.WatchUploadResultMsg{Filename: filepath.Base(path), Err: err})
				return err
			}
			p.Send(app.WatchUploadResultMsg{
				Filename: filepath.Base(path),
				Name:     resp.DocumentName,
				FileType: resp.FileType,
				Chunks:   resp.NumChunks,
				Pages:    resp.NumPages,
			})
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: drop folder disabled: %v\n", err)
		} else if err := watcher.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: drop folder disabled: %v\n", err)
			watcher.Close()
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running studybuddy: %v\n", err)
		os.Exit(1)
	}
}
