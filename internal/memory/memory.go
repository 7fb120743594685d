// Package memory keeps the bounded conversation log for a single
// session. The log is process-lifetime only and never persisted.
package memory

import "sync"

// DefaultMaxMessages is the conversation cap when none is configured.
const DefaultMaxMessages = 20

// Message is one role-tagged conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is a bounded ordered log of messages. Insertion past the
// cap evicts from the front, preserving recency.
type Conversation struct {
	mu       sync.RWMutex
	messages []Message
	max      int
}

// New creates a conversation log with the given cap; zero or negative
// means DefaultMaxMessages.
func New(maxMessages int) *Conversation {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &Conversation{max: maxMessages}
}

// Add appends a message, evicting the oldest entries past the cap.
func (c *Conversation) Add(role, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, Message{Role: role, Content: content})
	if len(c.messages) > c.max {
		c.messages = c.messages[len(c.messages)-c.max:]
	}
}

// History returns a copy of the current message log.
func (c *Conversation) History() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Message, len(c.messages))
	copy(result, c.messages)
	return result
}

// Len returns the number of retained messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Clear drops all messages.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
