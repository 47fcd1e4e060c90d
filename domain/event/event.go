// Package event defines the observable events of a room session.
// Sinks consume them for UI refresh, auto-scroll, logging.
package event

import (
	"time"

	"github.com/StaticAccess/Lynai/domain"
)

// SessionEvent is anything observable that happened to a room session.
type SessionEvent interface {
	RoomID() string
}

// MessageAppended fires after every transcript append, live or imported.
type MessageAppended struct {
	Room    string
	Message domain.Message
}

func (e MessageAppended) RoomID() string { return e.Room }

// ConnectionChanged fires on every stream lifecycle transition.
type ConnectionChanged struct {
	Room  string
	State domain.ConnectionState
}

func (e ConnectionChanged) RoomID() string { return e.Room }

// CountdownTicked carries the remaining seconds of an armed countdown.
type CountdownTicked struct {
	Room      string
	Remaining int
}

func (e CountdownTicked) RoomID() string { return e.Room }

// SessionExpired fires exactly once, when an armed countdown reaches zero.
type SessionExpired struct {
	Room string
}

func (e SessionExpired) RoomID() string { return e.Room }

// UsernameChanged fires after the server of record confirmed a rename.
type UsernameChanged struct {
	Room string
	Old  string
	New  string
}

func (e UsernameChanged) RoomID() string { return e.Room }

// PeerRenamed surfaces a rename announce from another participant.
// It is never appended to the transcript; relabeling prior messages is
// the consumer's own policy.
type PeerRenamed struct {
	Room string
	Old  string
	New  string
	At   time.Time
}

func (e PeerRenamed) RoomID() string { return e.Room }

// TranscriptReplaced fires after an import replaced the whole history.
type TranscriptReplaced struct {
	Room  string
	Count int
}

func (e TranscriptReplaced) RoomID() string { return e.Room }

// SessionEnded is the terminal event of a session. Navigation after it
// (back to home, a new open) belongs to the host layer.
type SessionEnded struct {
	Room   string
	Reason string
}

func (e SessionEnded) RoomID() string { return e.Room }
