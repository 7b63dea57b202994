// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the Study Buddy client.
package model

import (
	"time"
)

// MaxMessages is the maximum number of messages to keep in conversation
// history. When exceeded, old messages are pruned to prevent unbounded
// memory growth across a long study session.
const MaxMessages = 1000

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered chat history for one session.
//
// Messages are total-ordered by append sequence and never re-sorted.
// Pending assistant placeholders are resolved in place: same ID, same
// position, length unchanged.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages
	Messages []*Message `json:"messages"`
}

// NewConversation creates an empty conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        "conv_" + generateID()[4:],
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddUserMessage appends a new user message and returns it.
func (c *Conversation) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.append(msg)
	return msg
}

// AddPendingAssistant appends an assistant placeholder and returns it.
// The caller holds on to the ID to resolve the placeholder later.
func (c *Conversation) AddPendingAssistant() *Message {
	msg := NewPendingAssistant()
	c.append(msg)
	return msg
}

// Resolve replaces the pending message with the given ID by its final
// answer and citations, in place. Returns false if no message with that
// ID exists.
func (c *Conversation) Resolve(id string, content string, sources []Source) bool {
	msg := c.GetMessageByID(id)
	if msg == nil {
		return false
	}
	msg.Resolve(content, sources)
	c.UpdatedAt = time.Now()
	return true
}

// ResolveAsError replaces the pending message with the given ID by the
// fixed failure text, in place. Returns false if no message with that ID
// exists.
func (c *Conversation) ResolveAsError(id string) bool {
	msg := c.GetMessageByID(id)
	if msg == nil {
		return false
	}
	msg.ResolveAsError()
	c.UpdatedAt = time.Now()
	return true
}

// ClearHistory removes all messages. Local and unconditional; whether the
// backend acknowledged its own reset is not this type's concern.
func (c *Conversation) ClearHistory() {
	c.Messages = make([]*Message, 0)
	c.UpdatedAt = time.Now()
}

// GetMessageByID returns a message by its ID, or nil.
func (c *Conversation) GetMessageByID(id string) *Message {
	for _, msg := range c.Messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// GetLastMessage returns the most recent message, or nil if empty.
func (c *Conversation) GetLastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// GetLastUserMessage returns the most recent user message, or nil.
func (c *Conversation) GetLastUserMessage() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleUser {
			return c.Messages[i]
		}
	}
	return nil
}

// HasPending reports whether any assistant placeholder is unresolved.
func (c *Conversation) HasPending() bool {
	for _, msg := range c.Messages {
		if msg.IsPending() {
			return true
		}
	}
	return false
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// ExchangeCount returns the number of completed question/answer pairs.
func (c *Conversation) ExchangeCount() int {
	n := 0
	for _, msg := range c.Messages {
		if msg.Role == RoleAssistant && msg.State == StateResolved {
			n++
		}
	}
	return n
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// GetHistory returns the message history for display.
func (c *Conversation) GetHistory() []*Message {
	return c.Messages
}

// =============================================================================
// INTERNAL
// =============================================================================

// append adds a message and maintains the history bound.
func (c *Conversation) append(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	c.pruneOldMessages()
}

// pruneOldMessages drops the oldest messages when history exceeds
// MaxMessages. Keeps the most recent MaxMessages entries; order among the
// survivors is unchanged.
func (c *Conversation) pruneOldMessages() {
	if len(c.Messages) <= MaxMessages {
		return
	}
	start := len(c.Messages) - MaxMessages
	c.Messages = append(make([]*Message, 0, MaxMessages), c.Messages[start:]...)
}
