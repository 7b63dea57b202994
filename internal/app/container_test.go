// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/model"
)

// =============================================================================
// FAKE GATEWAY
// =============================================================================

// fakeGateway satisfies Gateway with overridable behavior per call.
type fakeGateway struct {
	statusFn func(ctx context.Context) (model.SystemStatus, error)
	askFn    func(ctx context.Context, question, filter string) (*api.AskResponse, error)
	uploadFn func(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error)
	deleted  []string
	cleared  int
}

func (f *fakeGateway) Status(ctx context.Context) (model.SystemStatus, error) {
	if f.statusFn != nil {
		return f.statusFn(ctx)
	}
	return model.SystemStatus{OllamaRunning: true, ModelsReady: true, Checked: true}, nil
}

func (f *fakeGateway) Documents(ctx context.Context) (api.DocumentsResponse, error) {
	return api.DocumentsResponse{}, nil
}

func (f *fakeGateway) Stats(ctx context.Context) (model.SessionStats, error) {
	return model.SessionStats{}, nil
}

func (f *fakeGateway) Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, filename, content)
	}
	return &api.UploadResponse{Success: true, DocumentName: filename}, nil
}

func (f *fakeGateway) Delete(ctx context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *fakeGateway) Ask(ctx context.Context, question, filter string) (*api.AskResponse, error) {
	if f.askFn != nil {
		return f.askFn(ctx, question, filter)
	}
	return &api.AskResponse{Answer: "ok"}, nil
}

func (f *fakeGateway) ClearChat(ctx context.Context) error {
	f.cleared++
	return nil
}

func (f *fakeGateway) ClearAll(ctx context.Context) error { return nil }

func (f *fakeGateway) Export(ctx context.Context, format string) (string, error) {
	return "# Export\n", nil
}

// =============================================================================
// QUESTION FLOW TESTS
// =============================================================================

func TestContainer_SubmitQuestionAppendsPair(t *testing.T) {
	c := NewContainer(&fakeGateway{})

	cmd := c.SubmitQuestion("What are the key concepts?")
	if cmd == nil {
		t.Fatal("SubmitQuestion should return an ask command")
	}
	if !c.Loading() {
		t.Error("loading gate should be up while an answer is in flight")
	}
	if c.Conversation.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want user + placeholder", c.Conversation.MessageCount())
	}
	last := c.Conversation.GetLastMessage()
	if last.Role != model.RoleAssistant || !last.IsPending() {
		t.Error("last message should be the pending assistant placeholder")
	}
}

func TestContainer_SubmitQuestionGatedWhileLoading(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.SubmitQuestion("first")

	if cmd := c.SubmitQuestion("second"); cmd != nil {
		t.Error("a second question while loading must be rejected")
	}
	if c.Conversation.MessageCount() != 2 {
		t.Errorf("MessageCount = %d, rejected question must not append", c.Conversation.MessageCount())
	}

	if cmd := c.SubmitQuestion("   "); cmd != nil {
		t.Error("blank input must be rejected")
	}
}

func TestContainer_AnswerResolvesInPlace(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.SubmitQuestion("What is photosynthesis?")
	pending := c.Conversation.GetLastMessage()

	followup := c.Apply(AnswerResultMsg{
		MessageID: pending.ID,
		Answer:    "It converts light into chemical energy.",
		Sources:   []model.Source{{Document: "notes.pdf", Page: 2, Content: "Light reactions...", Relevance: 92}},
	})

	if c.Loading() {
		t.Error("loading gate should drop once the answer lands")
	}
	if c.Conversation.MessageCount() != 2 {
		t.Error("resolution must not change message count")
	}
	msg := c.Conversation.GetLastMessage()
	if msg.ID != pending.ID || msg.IsPending() {
		t.Error("placeholder should resolve in place")
	}
	if len(msg.Sources) != 1 || msg.Sources[0].Relevance != 92 {
		t.Errorf("Sources = %+v", msg.Sources)
	}
	if followup == nil {
		t.Error("a landed answer should trigger a stats refresh")
	}
}

func TestContainer_AnswerFailureUsesFixedText(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.SubmitQuestion("anything")
	pending := c.Conversation.GetLastMessage()

	c.Apply(AnswerResultMsg{MessageID: pending.ID, Err: errors.New("connection refused")})

	msg := c.Conversation.GetLastMessage()
	if msg.State != model.StateFailed {
		t.Errorf("State = %v, want failed", msg.State)
	}
	if msg.Content != model.FailedAnswerText {
		t.Errorf("Content = %q, raw errors must never surface", msg.Content)
	}
	if c.Loading() {
		t.Error("loading gate should drop on failure too")
	}
}

func TestContainer_LateAnswerAfterClearIsDropped(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.SubmitQuestion("slow question")
	pending := c.Conversation.GetLastMessage()

	// User clears the chat while the answer is still in flight
	c.ClearChat()
	if c.Loading() {
		t.Error("clearing chat releases the loading gate")
	}

	c.Apply(AnswerResultMsg{MessageID: pending.ID, Answer: "too late"})

	if !c.Conversation.IsEmpty() {
		t.Error("a late answer must not resurrect cleared history")
	}
}

// =============================================================================
// UPLOAD FLOW TESTS
// =============================================================================

func TestContainer_UploadSuccessAddsDocument(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.EnqueueUploads("/tmp/notes.pdf")

	if !c.Uploading() {
		t.Fatal("enqueue should start the first upload")
	}

	c.Apply(UploadResultMsg{
		Filename: "notes.pdf",
		Name:     "notes.pdf",
		FileType: "pdf",
		Chunks:   12,
		Pages:    3,
	})

	if c.Uploading() {
		t.Error("uploading flag should drop when the queue drains")
	}
	doc := c.Library.Get("notes.pdf")
	if doc == nil {
		t.Fatal("upload success must add the document")
	}
	if doc.Chunks != 12 || doc.Pages != 3 || doc.Type != model.DocTypePDF {
		t.Errorf("doc = %+v, want 12 chunks / 3 pages / pdf", doc)
	}
	if c.Notice != "Added notes.pdf (12 chunks)" {
		t.Errorf("Notice = %q", c.Notice)
	}
}

func TestContainer_UploadsAreSequential(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	cmd := c.EnqueueUploads("/tmp/a.pdf", "/tmp/b.md")

	if cmd == nil {
		t.Fatal("enqueue should start the first upload")
	}
	if c.QueuedUploads() != 1 {
		t.Errorf("QueuedUploads = %d, want 1 waiting behind the transfer", c.QueuedUploads())
	}

	// First result starts the second transfer
	next := c.Apply(UploadResultMsg{Filename: "a.pdf", Name: "a.pdf", FileType: "pdf", Chunks: 1})
	if next == nil {
		t.Fatal("finishing one upload should start the next")
	}
	if !c.Uploading() {
		t.Error("uploading stays true while the queue drains")
	}

	c.Apply(UploadResultMsg{Filename: "b.md", Name: "b.md", FileType: "md", Chunks: 1})
	if c.Uploading() || c.QueuedUploads() != 0 {
		t.Error("queue should be drained")
	}
}

func TestContainer_WatchUploadDoesNotAdvanceQueue(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.EnqueueUploads("/tmp/a.pdf", "/tmp/b.md")

	// A drop-folder upload completes while a.pdf is still in flight.
	next := c.Apply(WatchUploadResultMsg{
		Filename: "drop.pdf",
		Name:     "drop.pdf",
		FileType: "pdf",
		Chunks:   4,
		Pages:    2,
	})

	if next != nil {
		t.Fatal("watch result must not start the next queued upload")
	}
	if !c.Uploading() {
		t.Error("uploading must stay true while a.pdf is in flight")
	}
	if c.QueuedUploads() != 1 {
		t.Errorf("QueuedUploads = %d, want b.md still waiting", c.QueuedUploads())
	}
	doc := c.Library.Get("drop.pdf")
	if doc == nil || doc.Chunks != 4 {
		t.Errorf("watch result should still add the document, got %+v", doc)
	}
}

func TestContainer_WatchUploadKeepsForegroundFlag(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.EnqueueUploads("/tmp/a.pdf")

	// Empty queue behind the in-flight transfer; the watch result must not
	// clear the flag out from under it.
	c.Apply(WatchUploadResultMsg{Filename: "drop.md", Name: "drop.md", FileType: "md", Chunks: 1})
	if !c.Uploading() {
		t.Fatal("watch result cleared the uploading flag of an in-flight transfer")
	}

	c.Apply(WatchUploadResultMsg{Filename: "bad.pdf", Err: errors.New("processing failed")})
	if c.Notice != "Upload failed: bad.pdf" {
		t.Errorf("Notice = %q", c.Notice)
	}
	if !c.Uploading() {
		t.Error("failed watch upload must not touch the foreground flag either")
	}

	c.Apply(UploadResultMsg{Filename: "a.pdf", Name: "a.pdf", FileType: "pdf", Chunks: 2})
	if c.Uploading() {
		t.Error("only the foreground result releases the flag")
	}
}

func TestContainer_UploadFailureKeepsLibrary(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.EnqueueUploads("/tmp/bad.pdf")

	c.Apply(UploadResultMsg{Filename: "bad.pdf", Err: errors.New("processing failed")})

	if c.Library.Count() != 0 {
		t.Error("a failed upload must not add a library entry")
	}
	if c.Notice != "Upload failed: bad.pdf" {
		t.Errorf("Notice = %q", c.Notice)
	}
}

func TestContainer_EnqueueSkipsUnsupported(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	if cmd := c.EnqueueUploads("/tmp/archive.zip"); cmd != nil {
		t.Error("unsupported files should not start an upload")
	}
	if c.Uploading() {
		t.Error("nothing should be uploading")
	}
}

// =============================================================================
// DOCUMENT MANAGEMENT TESTS
// =============================================================================

func TestContainer_RemoveDocumentIsLocalFirst(t *testing.T) {
	gw := &fakeGateway{}
	c := NewContainer(gw)
	c.Library.Add(model.NewDocument("notes.pdf", model.DocTypePDF, 12, 3))
	c.SelectDocument("notes.pdf")

	cmd := c.RemoveDocument("notes.pdf")

	// Local state moved before the backend call runs
	if c.Library.Get("notes.pdf") != nil {
		t.Error("document should be gone locally before the backend confirms")
	}
	if c.Library.Selected() != "" {
		t.Error("removing the selected document clears the selection")
	}

	// Running the command fires the backend delete
	if msg := cmd(); msg == nil {
		t.Fatal("delete command should produce a result message")
	}
	if len(gw.deleted) != 1 || gw.deleted[0] != "notes.pdf" {
		t.Errorf("backend deletes = %v", gw.deleted)
	}
}

func TestContainer_DocumentsListingReconciles(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.Library.Add(model.NewDocument("notes.pdf", model.DocTypePDF, 12, 3))
	c.SelectDocument("notes.pdf")

	c.Apply(DocumentsResultMsg{Names: []string{"notes.pdf", "new.txt"}, TotalChunks: 15})

	if c.Library.Count() != 2 {
		t.Fatalf("Count = %d, want 2", c.Library.Count())
	}
	if c.Library.Get("notes.pdf").Chunks != 12 {
		t.Error("a still-listed document keeps its counts")
	}
	if c.Library.Selected() != "notes.pdf" {
		t.Error("a still-listed selection is preserved")
	}
	if c.BackendChunks != 15 {
		t.Errorf("BackendChunks = %d, want 15", c.BackendChunks)
	}

	// A failed listing keeps the current state
	c.Apply(DocumentsResultMsg{Err: errors.New("down")})
	if c.Library.Count() != 2 {
		t.Error("a failed listing must not wipe the library")
	}
}

// =============================================================================
// STATUS TESTS
// =============================================================================

func TestContainer_StatusErrorYieldsDegradedSnapshot(t *testing.T) {
	c := NewContainer(&fakeGateway{})

	c.Apply(StatusResultMsg{Err: errors.New("connection refused")})

	if !c.Status.Unreachable() {
		t.Errorf("Status = %+v, want the unreachable sentinel", c.Status)
	}
	if c.Status.OllamaRunning || c.Status.ModelsReady {
		t.Error("degraded snapshot reports nothing running")
	}
}

func TestContainer_StatusSuccessReplacesSnapshot(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.Apply(StatusResultMsg{Err: errors.New("down")})

	healthy := model.SystemStatus{OllamaRunning: true, ModelsReady: true, Checked: true}
	c.Apply(StatusResultMsg{Status: healthy})

	if !c.Status.Ready() {
		t.Error("a successful check replaces the degraded snapshot")
	}
}

// =============================================================================
// CLEAR TESTS
// =============================================================================

func TestContainer_ClearChatFiresBackendReset(t *testing.T) {
	gw := &fakeGateway{}
	c := NewContainer(gw)
	c.SubmitQuestion("q")
	pending := c.Conversation.GetLastMessage()
	c.Apply(AnswerResultMsg{MessageID: pending.ID, Answer: "a"})

	cmd := c.ClearChat()
	if !c.Conversation.IsEmpty() {
		t.Error("local history clears immediately")
	}

	cmd()
	if gw.cleared != 1 {
		t.Errorf("backend clear-chat calls = %d, want 1", gw.cleared)
	}
}

func TestContainer_ClearAllWipesEverything(t *testing.T) {
	c := NewContainer(&fakeGateway{})
	c.Library.Add(model.NewDocument("notes.pdf", model.DocTypePDF, 12, 3))
	c.SubmitQuestion("q")
	c.BackendChunks = 12

	cmd := c.ClearAll()
	if cmd == nil {
		t.Fatal("ClearAll should fire backend work")
	}
	if !c.Conversation.IsEmpty() || !c.Library.IsEmpty() || c.BackendChunks != 0 {
		t.Error("local state should be wiped immediately")
	}
	if c.Loading() {
		t.Error("clearing everything releases the loading gate")
	}
}
