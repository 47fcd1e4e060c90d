// Package stream owns the real-time websocket connection of one room.
//
// One Conn binds exactly one stream to a room id. Lifecycle is monotone
// within the stream: Connecting -> Open -> {Closing -> Closed | Failed}.
// A failed stream is terminal; reconnecting is a fresh Dial decided by
// the session controller, never by this package.
package stream

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/errors"
)

// Wire values of the Frame Type field.
const (
	FrameText           = "text"
	FrameEmoji          = "emoji"
	FrameUsernameChange = "username_change"
)

// Frame is the JSON wire shape, one frame per message. Inbound frames
// without a type decode as text.
type Frame struct {
	Username    string `json:"username,omitempty"`
	Message     string `json:"message,omitempty"`
	Type        string `json:"type,omitempty"`
	OldUsername string `json:"oldUsername,omitempty"`
	NewUsername string `json:"newUsername,omitempty"`
}

const closeDrainTimeout = time.Second

type Conn struct {
	log    *slog.Logger
	roomID string

	mu    sync.Mutex
	ws    *websocket.Conn
	state domain.ConnectionState

	frames chan Frame
	states chan domain.ConnectionState
	done   chan struct{}
}

// Dial opens the stream for roomID against wsBaseURL (ws://host:port).
// On error no Conn is returned; the caller owns reporting the failure.
func Dial(ctx context.Context, wsBaseURL, roomID string, log *slog.Logger) (*Conn, error) {
	c := &Conn{
		log:    log,
		roomID: roomID,
		state:  domain.StateConnecting,
		frames: make(chan Frame, 64),
		states: make(chan domain.ConnectionState, 8),
		done:   make(chan struct{}),
	}

	endpoint := fmt.Sprintf("%s/ws/%s", wsBaseURL, url.PathEscape(roomID))
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	c.ws = ws
	c.transition(domain.StateOpen)
	go c.readLoop()
	return c, nil
}

// Frames delivers decoded inbound frames in arrival order. The channel
// closes when the stream dies, for any reason.
func (c *Conn) Frames() <-chan Frame {
	return c.frames
}

// States delivers lifecycle transitions (Open, Closing, Closed, Failed).
func (c *Conn) States() <-chan domain.ConnectionState {
	return c.states
}

func (c *Conn) State() domain.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Conn) RoomID() string {
	return c.roomID
}

// SendText transmits a chat frame. Sends on a stream that is not open
// are dropped, never queued.
func (c *Conn) SendText(username, content string) error {
	return c.send(Frame{Username: username, Message: content, Type: FrameText})
}

// SendEmoji transmits an emoji frame; same drop semantics as SendText.
func (c *Conn) SendEmoji(username, content string) error {
	return c.send(Frame{Username: username, Message: content, Type: FrameEmoji})
}

// Announce broadcasts a confirmed rename so peers can relabel prior
// messages if they choose to.
func (c *Conn) Announce(oldUsername, newUsername string) error {
	return c.send(Frame{Type: FrameUsernameChange, OldUsername: oldUsername, NewUsername: newUsername})
}

func (c *Conn) send(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != domain.StateOpen {
		return errors.ErrNotConnected
	}
	if err := c.ws.WriteJSON(f); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close requests an orderly shutdown: a close frame is sent, then the
// read loop is given a short drain window before the socket is torn
// down. Closing an already-terminal stream is a no-op.
func (c *Conn) Close() error {
	c.mu.Lock()
	if c.state.Terminal() || c.state == domain.StateClosing {
		c.mu.Unlock()
		return nil
	}
	c.state = domain.StateClosing
	ws := c.ws
	c.mu.Unlock()
	c.notify(domain.StateClosing)

	deadline := time.Now().Add(closeDrainTimeout)
	_ = ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

	select {
	case <-c.done:
	case <-time.After(closeDrainTimeout):
	}

	err := ws.Close()
	c.transition(domain.StateClosed)
	return err
}

func (c *Conn) readLoop() {
	defer close(c.done)
	defer close(c.frames)

	for {
		var f Frame
		if err := c.ws.ReadJSON(&f); err != nil {
			c.mu.Lock()
			closing := c.state == domain.StateClosing || c.state.Terminal()
			c.mu.Unlock()

			if closing || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.transition(domain.StateClosed)
			} else {
				c.log.Warn("Stream read failed", "room", c.roomID, "err", err)
				c.transition(domain.StateFailed)
			}
			return
		}

		if f.Type == "" {
			f.Type = FrameText
		}
		c.frames <- f
	}
}

// transition moves the state forward; terminal states never change.
func (c *Conn) transition(to domain.ConnectionState) {
	c.mu.Lock()
	if c.state.Terminal() || c.state == to {
		c.mu.Unlock()
		return
	}
	c.state = to
	c.mu.Unlock()
	c.notify(to)
}

func (c *Conn) notify(state domain.ConnectionState) {
	// Lifecycle has at most four transitions; the buffer always holds.
	select {
	case c.states <- state:
	default:
		c.log.Debug("State transition dropped", "room", c.roomID, "state", state)
	}
}
