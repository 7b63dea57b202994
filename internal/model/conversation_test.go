// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client.
package model

import (
	"testing"
)

// =============================================================================
// PENDING LIFECYCLE TESTS
// =============================================================================

func TestConversation_PendingIsAlwaysLast(t *testing.T) {
	conv := NewConversation()

	conv.AddUserMessage("What is photosynthesis?")
	pending := conv.AddPendingAssistant()

	last := conv.GetLastMessage()
	if last == nil || last.ID != pending.ID {
		t.Fatal("pending placeholder should be the last message")
	}
	if !last.IsPending() {
		t.Error("placeholder should report pending before resolution")
	}

	// A second exchange keeps the new placeholder last
	conv.Resolve(pending.ID, "A process plants use to make food.", nil)
	conv.AddUserMessage("And respiration?")
	second := conv.AddPendingAssistant()

	if conv.GetLastMessage().ID != second.ID {
		t.Error("new placeholder should be the last message")
	}
}

func TestConversation_ResolvePreservesLengthAndOrder(t *testing.T) {
	conv := NewConversation()
	user := conv.AddUserMessage("Summarize chapter 2")
	pending := conv.AddPendingAssistant()

	before := conv.MessageCount()
	if !conv.Resolve(pending.ID, "Chapter 2 covers cell division.", []Source{
		{Document: "bio.pdf", Page: 14, Content: "Mitosis is...", Relevance: 88},
	}) {
		t.Fatal("Resolve should find the placeholder")
	}

	if conv.MessageCount() != before {
		t.Errorf("MessageCount = %d, want %d (resolve must not change length)", conv.MessageCount(), before)
	}
	if conv.Messages[0].ID != user.ID {
		t.Error("resolve must not reorder messages")
	}

	resolved := conv.Messages[1]
	if resolved.ID != pending.ID {
		t.Error("resolved message must keep the placeholder's ID and position")
	}
	if resolved.IsPending() {
		t.Error("resolved message must not be pending")
	}
	if resolved.Content != "Chapter 2 covers cell division." {
		t.Errorf("Content = %q", resolved.Content)
	}
	if len(resolved.Sources) != 1 || resolved.Sources[0].Relevance != 88 {
		t.Errorf("Sources = %+v", resolved.Sources)
	}
}

func TestConversation_ResolveAsError(t *testing.T) {
	conv := NewConversation()
	conv.AddUserMessage("Explain osmosis")
	pending := conv.AddPendingAssistant()

	if !conv.ResolveAsError(pending.ID) {
		t.Fatal("ResolveAsError should find the placeholder")
	}

	msg := conv.GetMessageByID(pending.ID)
	if msg.State != StateFailed {
		t.Errorf("State = %v, want StateFailed", msg.State)
	}
	if msg.Content != FailedAnswerText {
		t.Errorf("Content = %q, want the fixed failure text", msg.Content)
	}
	if msg.IsPending() {
		t.Error("failed message must not be pending")
	}
	if len(msg.Sources) != 0 {
		t.Error("failed message must carry no sources")
	}
}

func TestConversation_ResolveUnknownID(t *testing.T) {
	conv := NewConversation()
	conv.AddUserMessage("hello")

	if conv.Resolve("msg_does_not_exist", "x", nil) {
		t.Error("Resolve with unknown ID should return false")
	}
	if conv.ResolveAsError("msg_does_not_exist") {
		t.Error("ResolveAsError with unknown ID should return false")
	}
}

func TestMessage_ResolveIsOneShot(t *testing.T) {
	msg := NewPendingAssistant()
	msg.Resolve("first answer", nil)
	msg.Resolve("second answer", nil)

	if msg.Content != "first answer" {
		t.Errorf("Content = %q, resolution must be one-shot", msg.Content)
	}

	msg.ResolveAsError()
	if msg.State != StateResolved {
		t.Error("a resolved message must not transition to failed")
	}
}

// =============================================================================
// CLEAR TESTS
// =============================================================================

func TestConversation_ClearHistory(t *testing.T) {
	conv := NewConversation()
	conv.AddUserMessage("q1")
	conv.AddPendingAssistant()
	conv.AddUserMessage("q2")

	conv.ClearHistory()

	if !conv.IsEmpty() {
		t.Errorf("MessageCount = %d after clear, want 0", conv.MessageCount())
	}
	if conv.HasPending() {
		t.Error("cleared conversation must have no pending messages")
	}
}

// =============================================================================
// PRUNING TESTS
// =============================================================================

func TestConversation_PruneKeepsRecentMessages(t *testing.T) {
	conv := NewConversation()
	for i := 0; i < MaxMessages+10; i++ {
		conv.AddUserMessage("question")
	}

	if conv.MessageCount() != MaxMessages {
		t.Errorf("MessageCount = %d, want %d", conv.MessageCount(), MaxMessages)
	}
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"short passes through", "hello", 10, "hello"},
		{"long is truncated", "abcdefghij", 8, "abcde..."},
		{"unicode is rune safe", "日本語のテキストです", 5, "日本..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.content)
			if got := msg.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "You" {
		t.Errorf("RoleUser.DisplayName() = %q", RoleUser.DisplayName())
	}
	if RoleAssistant.DisplayName() != "Study Buddy" {
		t.Errorf("RoleAssistant.DisplayName() = %q", RoleAssistant.DisplayName())
	}
}
