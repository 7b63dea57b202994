// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/app"
	"github.com/jeranaias/studybuddy-tui/internal/export"
	"github.com/jeranaias/studybuddy-tui/internal/model"
	"github.com/jeranaias/studybuddy-tui/internal/ui/styles"
)

// stubGateway answers instantly; commands are executed manually in tests.
type stubGateway struct{}

func (stubGateway) Status(ctx context.Context) (model.SystemStatus, error) {
	return model.SystemStatus{OllamaRunning: true, ModelsReady: true, Checked: true}, nil
}
func (stubGateway) Documents(ctx context.Context) (api.DocumentsResponse, error) {
	return api.DocumentsResponse{}, nil
}
func (stubGateway) Stats(ctx context.Context) (model.SessionStats, error) {
	return model.SessionStats{}, nil
}
func (stubGateway) Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error) {
	return &api.UploadResponse{Success: true, DocumentName: filename}, nil
}
func (stubGateway) Delete(ctx context.Context, name string) error { return nil }
func (stubGateway) Ask(ctx context.Context, question, filter string) (*api.AskResponse, error) {
	return &api.AskResponse{Answer: "answer"}, nil
}
func (stubGateway) ClearChat(ctx context.Context) error { return nil }
func (stubGateway) ClearAll(ctx context.Context) error  { return nil }
func (stubGateway) Export(ctx context.Context, format string) (string, error) {
	return "# Export\n", nil
}

func newTestModel(t *testing.T) (Model, *app.Container) {
	t.Helper()
	container := app.NewContainer(stubGateway{})
	theme := styles.NewTheme()
	m := New(container, theme, export.NewWriter(t.TempDir()), "test")

	// Prime the layout as Bubble Tea would
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), container
}

func pressEnter(m Model) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

// =============================================================================
// SUBMIT FLOW TESTS
// =============================================================================

func TestSubmitQuestionRoundTrip(t *testing.T) {
	m, container := newTestModel(t)
	m.input.SetValue("What is photosynthesis?")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("submitting a question should produce an ask command")
	}
	if m.input.Value() != "" {
		t.Error("input should clear after a successful submit")
	}
	if !container.Loading() {
		t.Error("container should be loading")
	}

	// Run the command and feed the result back through Update
	msg := cmd()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	if container.Loading() {
		t.Error("loading should drop once the answer lands")
	}
	last := container.Conversation.GetLastMessage()
	if last.IsPending() || last.Content != "answer" {
		t.Errorf("last message = %+v", last)
	}
}

func TestSubmitWhileLoadingKeepsInput(t *testing.T) {
	m, container := newTestModel(t)
	m.input.SetValue("first question")
	m, _ = pressEnter(m)

	m.input.SetValue("second question")
	m, cmd := pressEnter(m)

	if cmd != nil {
		t.Error("a second submit while loading must be rejected")
	}
	if m.input.Value() != "second question" {
		t.Error("rejected input must not be lost")
	}
	if container.Conversation.MessageCount() != 2 {
		t.Errorf("MessageCount = %d", container.Conversation.MessageCount())
	}
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	m, container := newTestModel(t)
	m.input.SetValue("   ")

	_, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("blank input should do nothing")
	}
	if container.Conversation.MessageCount() != 0 {
		t.Error("blank input must not append messages")
	}
}

// =============================================================================
// SLASH COMMAND TESTS
// =============================================================================

func TestSlashUseAndRemove(t *testing.T) {
	m, container := newTestModel(t)
	container.Library.Add(model.NewDocument("notes.pdf", model.DocTypePDF, 12, 3))

	m.input.SetValue("/use notes.pdf")
	m, _ = pressEnter(m)
	if container.Library.Selected() != "notes.pdf" {
		t.Errorf("Selected = %q", container.Library.Selected())
	}

	m.input.SetValue("/use all")
	m, _ = pressEnter(m)
	if container.Library.Selected() != "" {
		t.Error("/use all should clear the filter")
	}

	container.Library.Select("notes.pdf")
	m.input.SetValue("/remove notes.pdf")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("/remove should fire the backend delete")
	}
	if container.Library.Get("notes.pdf") != nil {
		t.Error("document should be gone locally")
	}
	if container.Library.Selected() != "" {
		t.Error("selection should clear with the removal")
	}
	_ = m
}

func TestSlashClear(t *testing.T) {
	m, container := newTestModel(t)
	container.Conversation.AddUserMessage("q")

	m.input.SetValue("/clear")
	_, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("/clear should fire the backend reset")
	}
	if !container.Conversation.IsEmpty() {
		t.Error("local history should clear immediately")
	}
}

func TestSlashUnknownSetsNotice(t *testing.T) {
	m, container := newTestModel(t)
	m.input.SetValue("/bogus")
	_, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("unknown command should not fire work")
	}
	if !strings.Contains(container.Notice, "/bogus") {
		t.Errorf("Notice = %q", container.Notice)
	}
}

// =============================================================================
// VIEW TESTS
// =============================================================================

func TestViewShowsWelcomeThenTranscript(t *testing.T) {
	m, container := newTestModel(t)

	if view := m.renderTranscript(); !strings.Contains(view, "study companion") {
		t.Errorf("empty conversation should render the welcome screen:\n%s", view)
	}

	container.Conversation.AddUserMessage("What is mitosis?")
	m.refreshTranscript()
	if view := m.renderTranscript(); !strings.Contains(view, "What is mitosis?") {
		t.Errorf("transcript should include the question:\n%s", view)
	}
}

func TestViewRendersFailedAnswer(t *testing.T) {
	m, container := newTestModel(t)
	container.Conversation.AddUserMessage("q")
	pending := container.Conversation.AddPendingAssistant()
	container.Conversation.ResolveAsError(pending.ID)

	if view := m.renderTranscript(); !strings.Contains(view, model.FailedAnswerText) {
		t.Error("failed answers should show the fixed failure text")
	}
}

func TestExportResultSavesFile(t *testing.T) {
	m, container := newTestModel(t)

	updated, _ := m.Update(app.ExportResultMsg{Content: "# Export\n", Format: "markdown"})
	m = updated.(Model)

	if !strings.Contains(container.Notice, "Exported to ") {
		t.Errorf("Notice = %q", container.Notice)
	}
}
