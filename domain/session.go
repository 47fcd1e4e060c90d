package domain

// ConnectionState describes one stream's lifecycle. Transitions are
// monotone within a stream: Connecting -> Open -> {Closing -> Closed | Failed}.
type ConnectionState string

const (
	StateConnecting ConnectionState = "connecting"
	StateOpen       ConnectionState = "open"
	StateClosing    ConnectionState = "closing"
	StateClosed     ConnectionState = "closed"
	StateFailed     ConnectionState = "failed"
)

// Terminal reports whether the stream can never leave this state.
func (s ConnectionState) Terminal() bool {
	return s == StateClosed || s == StateFailed
}

type ExpiryMode string

const (
	ExpiryNone            ExpiryMode = "none"
	ExpiryFixedDuration   ExpiryMode = "fixed"
	ExpiryAfterRoomCloses ExpiryMode = "after"
)

// TimerAfter is the wire value selecting ExpiryAfterRoomCloses; every
// other accepted timer value is a positive minute count.
const TimerAfter = "after"

// ExpiryState is the countdown policy of a session. RemainingSeconds is
// only meaningful when Mode is ExpiryFixedDuration.
type ExpiryState struct {
	Mode             ExpiryMode
	RemainingSeconds *int
}

// RoomSession is a point-in-time snapshot of one live session, owned
// exclusively by its session controller.
type RoomSession struct {
	RoomID        string
	LocalUsername string
	Connection    ConnectionState
	Transcript    []Message
	Expiry        ExpiryState
}
