// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Study Buddy"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE STATE
// =============================================================================

// MessageState is the lifecycle tag for a message. A user message is born
// resolved; an assistant message is born pending and transitions exactly
// once, to either resolved or failed. The tagged state (rather than a bare
// boolean) makes "resolved but still pending" unrepresentable.
type MessageState int

const (
	// StatePending marks an assistant placeholder awaiting a backend answer.
	StatePending MessageState = iota
	// StateResolved marks a message with final content.
	StateResolved
	// StateFailed marks an assistant message whose answer request failed.
	StateFailed
)

// String returns the string representation of the state.
func (s MessageState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailedAnswerText is the fixed user-facing content of a failed assistant
// message. Raw transport errors are never shown to the user.
const FailedAnswerText = "Sorry, something went wrong answering that. " +
	"Check that the study backend is running and try again."

// =============================================================================
// SOURCE TYPE
// =============================================================================

// Source is one passage citation supporting an assistant answer.
// Sources are owned by the message that carries them and are immutable
// once attached.
type Source struct {
	// Document is the name of the source document.
	Document string `json:"document"`
	// Page is the page number the excerpt came from.
	Page int `json:"page"`
	// Content is the excerpt text.
	Content string `json:"content"`
	// Relevance is the retrieval score as a 0-100 integer.
	Relevance int `json:"relevance"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single conversation turn.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content (markdown for assistant turns)
	Content string `json:"content"`

	// Citations (assistant turns only, may be empty)
	Sources []Source `json:"sources,omitempty"`

	// Lifecycle
	State MessageState `json:"-"`
}

// NewUserMessage creates a resolved user message with a generated ID.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		State:     StateResolved,
	}
}

// NewPendingAssistant creates an assistant placeholder with empty content.
// The placeholder keeps its ID and position for the lifetime of the
// conversation; resolution mutates it in place.
func NewPendingAssistant() *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Timestamp: time.Now(),
		State:     StatePending,
	}
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Resolve fills in the final answer and citations. No-op unless pending.
func (m *Message) Resolve(content string, sources []Source) {
	if m.State != StatePending {
		return
	}
	m.Content = content
	m.Sources = sources
	m.State = StateResolved
}

// ResolveAsError marks the message failed with the fixed failure text.
// No-op unless pending.
func (m *Message) ResolveAsError() {
	if m.State != StatePending {
		return
	}
	m.Content = FailedAnswerText
	m.Sources = nil
	m.State = StateFailed
}

// IsPending reports whether the message is still awaiting resolution.
func (m *Message) IsPending() bool {
	return m.State == StatePending
}

// HasSources reports whether the message carries any citations.
func (m *Message) HasSources() bool {
	return len(m.Sources) > 0
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
