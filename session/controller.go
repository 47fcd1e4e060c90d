// Package session composes the room core: transcript, stream, countdown
// and identity behind one serialized event loop.
//
// Everything that mutates session state (inbound frames, countdown
// ticks, user intents, collaborator completions) runs on the single
// loop goroutine. Collaborator round-trips happen off-loop and deliver
// their results back into the loop, so handlers never block and a
// completion that lands after teardown is discarded.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/StaticAccess/Lynai/contract"
	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/domain/event"
	apperrors "github.com/StaticAccess/Lynai/errors"
	"github.com/StaticAccess/Lynai/expiry"
	"github.com/StaticAccess/Lynai/identity"
	"github.com/StaticAccess/Lynai/stream"
	"github.com/StaticAccess/Lynai/transcript"
)

// roomStream is what the controller needs from the live connection.
// *stream.Conn satisfies it; tests substitute a scripted double.
type roomStream interface {
	Frames() <-chan stream.Frame
	States() <-chan domain.ConnectionState
	State() domain.ConnectionState
	SendText(username, content string) error
	SendEmoji(username, content string) error
	Announce(oldUsername, newUsername string) error
	Close() error
}

// Deps are the external collaborators of a session.
type Deps struct {
	Rooms   contract.RoomLifecycle
	Renames contract.RenameService
	Timers  contract.TimerPolicy
	Exports contract.ExportService
	Imports contract.ImportService
	Log     *slog.Logger
}

// Controller owns exactly one RoomSession. It implements contract.Worker:
// the session only makes progress while Run is running.
type Controller struct {
	log    *slog.Logger
	roomID string

	conn      roomStream
	store     *transcript.Store
	countdown *expiry.Countdown
	identity  *identity.Negotiator

	rooms   contract.RoomLifecycle
	timers  contract.TimerPolicy
	exports contract.ExportService
	imports contract.ImportService

	sinks []contract.EventSink

	intents chan func()
	apply   chan func()
	closed  chan struct{}
	endOnce sync.Once

	tick     <-chan time.Time
	stopTick func()

	// Snapshot mirror, guarded for concurrent hosts. Written only from
	// the loop (and once during construction).
	mu          sync.RWMutex
	connState   domain.ConnectionState
	expiryState domain.ExpiryState
	username    string
	runCtx      context.Context
	now         func() time.Time
	endReason   string
}

// Open dials the room stream and prepares the session. The local
// username starts as a generated one. Run must be started for the
// session to make progress; sinks registered before Run see every event.
func Open(ctx context.Context, wsBaseURL, roomID string, deps Deps, opts ...Option) (*Controller, error) {
	c := newController(roomID, deps, opts...)

	c.emit(event.ConnectionChanged{Room: roomID, State: domain.StateConnecting})
	conn, err := stream.Dial(ctx, wsBaseURL, roomID, deps.Log)
	if err != nil {
		c.setConnState(domain.StateFailed)
		c.emit(event.ConnectionChanged{Room: roomID, State: domain.StateFailed})
		return nil, fmt.Errorf("open session: %w", err)
	}
	c.conn = conn
	return c, nil
}

func newController(roomID string, deps Deps, opts ...Option) *Controller {
	c := &Controller{
		log:         deps.Log,
		roomID:      roomID,
		store:       transcript.NewStore(),
		countdown:   expiry.NewCountdown(),
		identity:    identity.NewNegotiator(deps.Renames, deps.Log),
		rooms:       deps.Rooms,
		timers:      deps.Timers,
		exports:     deps.Exports,
		imports:     deps.Imports,
		intents:     make(chan func()),
		apply:       make(chan func(), 16),
		closed:      make(chan struct{}),
		connState:   domain.StateConnecting,
		expiryState: domain.ExpiryState{Mode: domain.ExpiryNone},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.username = c.identity.Current()
	return c
}

// RegisterSinks attaches event consumers. Call before Run starts.
func (c *Controller) RegisterSinks(sinks ...contract.EventSink) {
	c.sinks = append(c.sinks, sinks...)
}

// Transcript exposes the append-only store for read access and
// subscriptions. Mutation stays with the controller.
func (c *Controller) Transcript() *transcript.Store {
	return c.store
}

// Snapshot returns the externally observable session state.
func (c *Controller) Snapshot() domain.RoomSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.RoomSession{
		RoomID:        c.roomID,
		LocalUsername: c.username,
		Connection:    c.connState,
		Transcript:    c.store.All(),
		Expiry:        c.expiryState,
	}
}

// Run drives the session loop until the session ends (expiry, room
// closed, host Close) or ctx is canceled. Implements contract.Worker.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	c.runCtx = ctx
	c.mu.Unlock()

	if c.tick == nil {
		ticker := time.NewTicker(time.Second)
		c.tick = ticker.C
		c.stopTick = ticker.Stop
	}

	defer func() {
		if c.stopTick != nil {
			c.stopTick()
		}
		c.endOnce.Do(func() { close(c.closed) })
	}()

	frames := c.conn.Frames()
	states := c.conn.States()

	for {
		select {
		case <-ctx.Done():
			c.teardown("session canceled")
			return ctx.Err()

		case fn := <-c.intents:
			fn()

		case fn := <-c.apply:
			fn()

		case f, ok := <-frames:
			if !ok {
				// The stream died; its final state arrives on states.
				frames = nil
				continue
			}
			c.onFrame(f)

		case st := <-states:
			c.onConnState(st)

		case <-c.tick:
			c.onTick()
		}

		if c.ended() {
			return nil
		}
	}
}

// ---- loop-side event handling ----

func (c *Controller) onFrame(f stream.Frame) {
	if f.Type == stream.FrameUsernameChange {
		c.emit(event.PeerRenamed{Room: c.roomID, Old: f.OldUsername, New: f.NewUsername, At: c.now()})
		return
	}

	kind := domain.KindText
	if f.Type == stream.FrameEmoji {
		kind = domain.KindEmoji
	}
	msg := domain.NewMessage(f.Username, f.Message, kind, c.now())
	c.store.Append(msg)
	c.emit(event.MessageAppended{Room: c.roomID, Message: msg})
}

func (c *Controller) onConnState(st domain.ConnectionState) {
	c.setConnState(st)
	c.emit(event.ConnectionChanged{Room: c.roomID, State: st})
	if st == domain.StateFailed {
		// Terminal for the stream, not for the session: the transcript
		// and countdown stay observable, sends drop. No auto-reconnect.
		c.log.Warn("Room stream failed", "room", c.roomID)
	}
}

func (c *Controller) onTick() {
	expired := c.countdown.Tick()
	if c.countdown.State() == expiry.Armed {
		remaining := c.countdown.Remaining()
		c.setExpiry(domain.ExpiryState{Mode: domain.ExpiryFixedDuration, RemainingSeconds: lo.ToPtr(remaining)})
		c.emit(event.CountdownTicked{Room: c.roomID, Remaining: remaining})
	}
	if expired {
		c.setExpiry(domain.ExpiryState{Mode: domain.ExpiryFixedDuration, RemainingSeconds: lo.ToPtr(0)})
		c.emit(event.SessionExpired{Room: c.roomID})
		c.endSession("room expired")
	}
}

// endSession tears the stream down and marks the loop for exit.
func (c *Controller) endSession(reason string) {
	_ = c.conn.Close()
	c.setConnState(domain.StateClosed)
	c.emit(event.ConnectionChanged{Room: c.roomID, State: domain.StateClosed})
	c.emit(event.SessionEnded{Room: c.roomID, Reason: reason})
	c.finish(reason)
}

// teardown is endSession for an external cancellation.
func (c *Controller) teardown(reason string) {
	_ = c.conn.Close()
	c.emit(event.SessionEnded{Room: c.roomID, Reason: reason})
	c.finish(reason)
}

func (c *Controller) finish(reason string) {
	c.mu.Lock()
	c.endReason = reason
	c.mu.Unlock()
	c.endOnce.Do(func() { close(c.closed) })
}

func (c *Controller) ended() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// ---- plumbing ----

// do runs fn on the loop and waits for its outcome. Intents against a
// torn-down session resolve to Dropped without touching any state.
func (c *Controller) do(fn func(reply chan<- domain.Outcome)) domain.Outcome {
	reply := make(chan domain.Outcome, 1)
	select {
	case c.intents <- func() { fn(reply) }:
	case <-c.closed:
		return domain.Dropped(apperrors.ErrSessionClosed.Error())
	}
	select {
	case out := <-reply:
		return out
	case <-c.closed:
		// The intent may have resolved in the same loop turn that ended
		// the session (Close, CloseRoom); its outcome wins.
		select {
		case out := <-reply:
			return out
		default:
			return domain.Dropped(apperrors.ErrSessionClosed.Error())
		}
	}
}

// post delivers a completion back onto the loop. Results arriving after
// teardown are discarded: they must not mutate a torn-down session.
func (c *Controller) post(fn func()) {
	select {
	case c.apply <- fn:
	case <-c.closed:
	}
}

func (c *Controller) emit(e event.SessionEvent) {
	for _, sink := range c.sinks {
		sink.Consume(e)
	}
}

func (c *Controller) setConnState(st domain.ConnectionState) {
	c.mu.Lock()
	c.connState = st
	c.mu.Unlock()
}

func (c *Controller) setExpiry(st domain.ExpiryState) {
	c.mu.Lock()
	c.expiryState = st
	c.mu.Unlock()
}

func (c *Controller) setUsername(name string) {
	c.mu.Lock()
	c.username = name
	c.mu.Unlock()
}

func (c *Controller) collabCtx() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.runCtx != nil {
		return c.runCtx
	}
	return context.Background()
}

func reasonOf(err error) string {
	return err.Error()
}

var _ contract.Worker = (*Controller)(nil)

func parseMinutes(value string) (int, error) {
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive minute count", apperrors.ErrInvalidTimer, value)
	}
	return minutes, nil
}
