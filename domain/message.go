// Package domain contains core concepts of the room session.
// This file defines Message values and related rules.
// Messages are immutable once appended to a transcript.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindEmoji MessageKind = "emoji"
)

// Message represents an immutable transcript entry.
// ReceivedAt is the local arrival time; transcript ordering is insertion
// order, never timestamp order (peer clocks are not corrected).
type Message struct {
	ID         uuid.UUID // unique within a session
	Author     string
	Content    string
	Kind       MessageKind
	ReceivedAt time.Time
}

func NewMessage(author, content string, kind MessageKind, receivedAt time.Time) Message {
	return Message{
		ID:         uuid.New(),
		Author:     author,
		Content:    content,
		Kind:       kind,
		ReceivedAt: receivedAt,
	}
}
