// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeranaias/studybuddy-tui/internal/api"
	"github.com/jeranaias/studybuddy-tui/internal/model"
)

func TestCheckStatusCmd(t *testing.T) {
	gw := &fakeGateway{
		statusFn: func(ctx context.Context) (model.SystemStatus, error) {
			return model.SystemStatus{OllamaRunning: true, ModelsReady: true, Checked: true}, nil
		},
	}

	msg, ok := CheckStatusCmd(gw)().(StatusResultMsg)
	if !ok {
		t.Fatal("expected StatusResultMsg")
	}
	if msg.Err != nil || !msg.Status.Ready() {
		t.Errorf("msg = %+v", msg)
	}
}

func TestCheckStatusCmd_Error(t *testing.T) {
	gw := &fakeGateway{
		statusFn: func(ctx context.Context) (model.SystemStatus, error) {
			return model.SystemStatus{}, errors.New("refused")
		},
	}

	msg := CheckStatusCmd(gw)().(StatusResultMsg)
	if msg.Err == nil {
		t.Error("transport error should be carried in the message")
	}
}

func TestAskQuestionCmd_CarriesMessageID(t *testing.T) {
	gw := &fakeGateway{
		askFn: func(ctx context.Context, question, filter string) (*api.AskResponse, error) {
			if question != "What is mitosis?" || filter != "bio.pdf" {
				t.Errorf("ask got (%q, %q)", question, filter)
			}
			return &api.AskResponse{
				Answer:  "Cell division.",
				Sources: []api.SourceJSON{{Document: "bio.pdf", Page: 14, Relevance: 88.6}},
			}, nil
		},
	}

	msg := AskQuestionCmd(gw, "msg_abc", "What is mitosis?", "bio.pdf")().(AnswerResultMsg)
	if msg.MessageID != "msg_abc" {
		t.Errorf("MessageID = %q", msg.MessageID)
	}
	if msg.Err != nil || msg.Answer != "Cell division." {
		t.Errorf("msg = %+v", msg)
	}
	if len(msg.Sources) != 1 || msg.Sources[0].Relevance != 88 {
		t.Errorf("Sources = %+v", msg.Sources)
	}
}

func TestAskQuestionCmd_Error(t *testing.T) {
	gw := &fakeGateway{
		askFn: func(ctx context.Context, question, filter string) (*api.AskResponse, error) {
			return nil, api.ErrTimeout
		},
	}

	msg := AskQuestionCmd(gw, "msg_abc", "q", "")().(AnswerResultMsg)
	if msg.MessageID != "msg_abc" || msg.Err == nil {
		t.Errorf("msg = %+v", msg)
	}
}

func TestUploadFileCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	gw := &fakeGateway{
		uploadFn: func(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error) {
			data, _ := io.ReadAll(content)
			if string(data) != "%PDF-1.4" {
				t.Errorf("uploaded content = %q", data)
			}
			return &api.UploadResponse{
				Success:      true,
				DocumentName: filename,
				FileType:     "pdf",
				NumChunks:    12,
				NumPages:     3,
			}, nil
		},
	}

	msg := UploadFileCmd(gw, path)().(UploadResultMsg)
	if msg.Err != nil {
		t.Fatalf("upload err = %v", msg.Err)
	}
	if msg.Filename != "notes.pdf" {
		t.Errorf("Filename = %q, want the base name", msg.Filename)
	}
	if msg.Chunks != 12 || msg.Pages != 3 {
		t.Errorf("chunks/pages = %d/%d, want 12/3", msg.Chunks, msg.Pages)
	}
}

func TestUploadFileCmd_MissingFile(t *testing.T) {
	msg := UploadFileCmd(&fakeGateway{}, "/nope/missing.pdf")().(UploadResultMsg)
	if msg.Err == nil {
		t.Error("a missing file should report an error without calling the backend")
	}
	if msg.Filename != "missing.pdf" {
		t.Errorf("Filename = %q", msg.Filename)
	}
}

func TestExportChatCmd(t *testing.T) {
	msg := ExportChatCmd(&fakeGateway{}, "markdown")().(ExportResultMsg)
	if msg.Err != nil || msg.Content == "" || msg.Format != "markdown" {
		t.Errorf("msg = %+v", msg)
	}
}
