// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the Study Buddy CLI.
//
// USABILITY: Markdown rendering and input history for better CLI experience
//
// Handles the "studybuddy chat" command which provides a line-based REPL
// against the study backend, as an alternative to the full TUI.
//
// Command: chat
//
// Examples:
//
//	studybuddy chat                    Start interactive chat
//	studybuddy chat --doc notes.pdf    Scope questions to one document
//
// Interactive Commands (during chat):
//
//	/help, /h           Show available commands
//	/docs               List uploaded documents
//	/use [name|all]     Scope questions to one document
//	/upload <file>      Upload a document
//	/remove <name>      Remove a document
//	/clear              Clear the conversation on the backend
//	/status, /s         Show backend health and session counters
//	/quit, /q           Exit chat
//	Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/config"
	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
	"github.com/jeranaias/studybuddy-tui/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Terracotta).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.TerracottaDeep).
			Bold(true)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Command style
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Sage)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rust).
			Bold(true)

	// Source citation style
	sourceStyle = lipgloss.NewStyle().
			Foreground(styles.SourceCardFg)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatREPL holds the state for an interactive chat session.
type ChatREPL struct {
	Client *api.Client

	// Scope for questions; "" means search every document
	DocumentFilter string

	StartTime      time.Time
	QuestionsAsked int

	// Input history handler
	// USABILITY: Provides readline-like input with history
	InputCLI *ChatCLI
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat runs the interactive REPL. Returns the process exit code.
func HandleChat(client *api.Client, args *ArgParser) int {
	repl := &ChatREPL{
		Client:         client,
		DocumentFilter: args.Flag("doc", "d"),
		StartTime:      time.Now(),
		InputCLI:       NewChatCLI(),
	}
	defer repl.InputCLI.Close()

	status, err := client.Status(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"),
			"the study backend is not reachable. Is it running?")
		return 1
	}

	printChatWelcome(repl, status)

	for {
		input, err := repl.InputCLI.ReadInput(promptStyle.Render("study> "))
		if err != nil {
			// Ctrl+C or Ctrl+D exits gracefully
			fmt.Println()
			printChatSummary(repl)
			return 0
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := repl.handleSlashCommand(input)
			if err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				printChatSummary(repl)
				return 0
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printChatSummary(repl)
			return 0
		}

		if err := repl.askQuestion(input); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("[Error]"), err)
		}
	}
}

// =============================================================================
// QUESTION PROCESSING
// =============================================================================

// askQuestion sends one question to the backend and prints the answer
// with its citations.
func (r *ChatREPL) askQuestion(question string) error {
	if r.DocumentFilter != "" {
		fmt.Println(infoStyle.Render("[Searching " + r.DocumentFilter + "]"))
	}
	fmt.Println(infoStyle.Render("Thinking..."))

	start := time.Now()
	resp, err := r.Client.Ask(context.Background(), question, r.DocumentFilter)
	if err != nil {
		if api.IsUnreachable(err) {
			return fmt.Errorf("the study backend is not reachable")
		}
		return err
	}

	r.QuestionsAsked++

	fmt.Println()
	fmt.Println(renderAnswer(resp.Answer))

	sources := resp.ToSources()
	if len(sources) > 0 {
		fmt.Println(sourceStyle.Render("Sources:"))
		for i, src := range sources {
			fmt.Println(sourceStyle.Render(fmt.Sprintf("  %d. %s, p. %d (%d%% match)",
				i+1, src.Document, src.Page, src.Relevance)))
		}
	}

	fmt.Println()
	searched := len(resp.DocumentsSearched)
	fmt.Fprintf(os.Stderr, "%s %d %s searched | %s\n",
		infoStyle.Render("[Stats]"),
		searched,
		util.Pluralize(searched, "document", "documents"),
		time.Since(start).Round(time.Millisecond))

	return nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (keepGoing, error) where keepGoing=false means exit.
func (r *ChatREPL) handleSlashCommand(cmd string) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "/help", "/h", "/?", "/":
		printChatHelp()
		return true, nil

	case "/docs", "/documents", "/list":
		return true, r.printDocuments()

	case "/use", "/doc":
		return true, r.handleUse(args)

	case "/upload", "/add":
		return true, r.handleUpload(args)

	case "/remove", "/rm":
		return true, r.handleRemove(args)

	case "/clear", "/c":
		if err := r.Client.ClearChat(context.Background()); err != nil {
			return true, err
		}
		fmt.Println(commandStyle.Render("[Conversation cleared]"))
		return true, nil

	case "/status", "/s":
		return true, r.printStatus()

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// printDocuments lists the uploaded documents.
func (r *ChatREPL) printDocuments() error {
	docs, err := r.Client.Documents(context.Background())
	if err != nil {
		return err
	}

	if len(docs.Documents) == 0 {
		fmt.Println(infoStyle.Render("[No documents uploaded yet. Try /upload <file>]"))
		return nil
	}

	fmt.Printf("%s %d %s, %d chunks\n",
		infoStyle.Render("[Documents]"),
		docs.Count,
		util.Pluralize(docs.Count, "document", "documents"),
		docs.TotalChunks)
	for _, name := range docs.Documents {
		marker := "  "
		if name == r.DocumentFilter {
			marker = "* "
		}
		fmt.Println(marker + name)
	}
	return nil
}

// handleUse scopes future questions to one document, or back to all.
func (r *ChatREPL) handleUse(args []string) error {
	if len(args) == 0 {
		if r.DocumentFilter == "" {
			fmt.Println(infoStyle.Render("[Searching all documents]"))
		} else {
			fmt.Println(infoStyle.Render("[Searching " + r.DocumentFilter + "]"))
		}
		return nil
	}

	name := strings.Join(args, " ")
	if strings.EqualFold(name, "all") {
		r.DocumentFilter = ""
		fmt.Println(commandStyle.Render("[Searching all documents]"))
		return nil
	}

	r.DocumentFilter = name
	fmt.Println(commandStyle.Render("[Searching " + name + " only]"))
	return nil
}

// handleUpload uploads one file from the REPL.
func (r *ChatREPL) handleUpload(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: /upload <file>")
	}

	path := strings.Join(args, " ")
	if !model.IsSupportedFile(path) {
		return fmt.Errorf("unsupported file type (want pdf, docx, txt, md)")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Println(infoStyle.Render("[Uploading " + filepath.Base(path) + "...]"))
	resp, err := r.Client.Upload(context.Background(), filepath.Base(path), f)
	if err != nil {
		return err
	}

	fmt.Printf("%s Added %s (%d %s)\n",
		commandStyle.Render("[OK]"),
		resp.DocumentName,
		resp.NumChunks,
		util.Pluralize(resp.NumChunks, "chunk", "chunks"))
	return nil
}

// handleRemove removes one document by name.
func (r *ChatREPL) handleRemove(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: /remove <name>")
	}

	name := strings.Join(args, " ")
	if err := r.Client.Delete(context.Background(), name); err != nil {
		return err
	}
	if name == r.DocumentFilter {
		r.DocumentFilter = ""
	}
	fmt.Println(commandStyle.Render("[Removed " + name + "]"))
	return nil
}

// printStatus shows backend health and session counters.
func (r *ChatREPL) printStatus() error {
	ctx := context.Background()

	status, err := r.Client.Status(ctx)
	if err != nil {
		status = model.DegradedStatus()
	}
	stats, _ := r.Client.Stats(ctx)

	fmt.Println()
	fmt.Println(welcomeStyle.Render("Session Status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))

	switch {
	case status.Unreachable():
		fmt.Printf("  %s %s\n", infoStyle.Render("Backend:"), errorStyle.Render("offline"))
	case status.Ready():
		fmt.Printf("  %s %s\n", infoStyle.Render("Backend:"), commandStyle.Render("ready"))
	default:
		fmt.Printf("  %s %s\n", infoStyle.Render("Backend:"), warningStyle.Render("degraded"))
		if len(status.MissingModels) > 0 {
			fmt.Printf("  %s %s\n",
				infoStyle.Render("Missing:"),
				strings.Join(status.MissingModels, ", "))
		}
	}

	scope := "all documents"
	if r.DocumentFilter != "" {
		scope = r.DocumentFilter
	}
	fmt.Printf("  %s %s\n", infoStyle.Render("Scope:"), scope)
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Duration:"),
		time.Since(r.StartTime).Round(time.Second))
	fmt.Printf("  %s %d processed, %d asked, %d chunks retrieved\n",
		infoStyle.Render("Session:"),
		stats.DocumentsProcessed, stats.QuestionsAsked, stats.ChunksRetrieved)
	fmt.Println()
	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printChatWelcome prints the welcome banner.
func printChatWelcome(repl *ChatREPL, status model.SystemStatus) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("Study Buddy interactive chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))

	fmt.Printf("%s %s\n",
		infoStyle.Render("Backend:"),
		commandStyle.Render(repl.Client.BaseURL()))

	if !status.Ready() {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Status:"),
			warningStyle.Render("degraded (answers may fail)"))
		if len(status.MissingModels) > 0 {
			fmt.Printf("%s %s\n",
				infoStyle.Render("Missing:"),
				strings.Join(status.MissingModels, ", "))
		}
	}

	if repl.DocumentFilter != "" {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Scope:"),
			commandStyle.Render(repl.DocumentFilter))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Ask about your documents. Commands: /help, /quit"))
	fmt.Println()
}

// printChatHelp prints available commands.
func printChatHelp() {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/docs", "List uploaded documents"},
		{"/use [name|all]", "Scope questions to one document"},
		{"/upload <file>", "Upload a document"},
		{"/remove <name>", "Remove a document"},
		{"/clear, /c", "Clear the conversation"},
		{"/status, /s", "Show backend health and counters"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-16s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+D exits and keeps your input history"))
	fmt.Println()
}

// printChatSummary prints the session summary on exit.
func printChatSummary(repl *ChatREPL) {
	if repl.QuestionsAsked == 0 {
		fmt.Println(infoStyle.Render("Happy studying!"))
		return
	}

	elapsed := time.Since(repl.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(welcomeStyle.Render("Session Summary"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Printf("  %s %d\n",
		infoStyle.Render("Questions:"),
		repl.QuestionsAsked)
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Duration:"),
		elapsed.String())
	fmt.Println()
	fmt.Println(infoStyle.Render("Happy studying!"))
}
