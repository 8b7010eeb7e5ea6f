package models

import "maps"

// DefaultReaction is the reaction kind used when none is given.
const DefaultReaction = "like"

// ChatMessage is a message in the general chat.
type ChatMessage struct {
	ID        string         `json:"id" example:"msg1"`
	UserID    string         `json:"userId" example:"user2"`
	Text      string         `json:"text" example:"Anyone up for a study group?"`
	Timestamp int64          `json:"timestamp" example:"1705312800000"` // epoch milliseconds
	Reactions map[string]int `json:"reactions"`
}

// Validate implements Validatable.
func (m ChatMessage) Validate() error {
	if m.UserID == "" {
		return invalid("chat message", m.ID, "empty author")
	}
	for kind, n := range m.Reactions {
		if kind == "" {
			return invalid("chat message", m.ID, "empty reaction kind")
		}
		if n < 0 {
			return invalid("chat message", m.ID, "negative %s count", kind)
		}
	}
	return nil
}

// Clone returns a deep copy with a non-nil reactions map.
func (m ChatMessage) Clone() ChatMessage {
	if m.Reactions == nil {
		m.Reactions = map[string]int{}
	} else {
		m.Reactions = maps.Clone(m.Reactions)
	}
	return m
}

// ChatMessages is the chat history in insertion order.
type ChatMessages []ChatMessage

// Validate implements Validatable.
func (c ChatMessages) Validate() error {
	ids := make([]string, len(c))
	for i, m := range c {
		if err := m.Validate(); err != nil {
			return err
		}
		ids[i] = m.ID
	}
	return uniqueIDs("chat message", ids)
}

// Clone returns a deep copy.
func (c ChatMessages) Clone() ChatMessages {
	out := make(ChatMessages, len(c))
	for i, m := range c {
		out[i] = m.Clone()
	}
	return out
}

// Index returns the position of the message with id, or -1.
func (c ChatMessages) Index(id string) int {
	for i, m := range c {
		if m.ID == id {
			return i
		}
	}
	return -1
}
