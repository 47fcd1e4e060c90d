package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/domain/event"
	apperrors "github.com/StaticAccess/Lynai/errors"
	"github.com/StaticAccess/Lynai/mocks"
	"github.com/StaticAccess/Lynai/stream"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeStream is a scripted roomStream. Tests push inbound frames and
// state changes; outbound frames are recorded for inspection.
type fakeStream struct {
	mu     sync.Mutex
	state  domain.ConnectionState
	frames chan stream.Frame
	states chan domain.ConnectionState
	sent   []stream.Frame
}

func newFakeStream(state domain.ConnectionState) *fakeStream {
	return &fakeStream{
		state:  state,
		frames: make(chan stream.Frame, 16),
		states: make(chan domain.ConnectionState, 8),
	}
}

func (f *fakeStream) Frames() <-chan stream.Frame           { return f.frames }
func (f *fakeStream) States() <-chan domain.ConnectionState { return f.states }

func (f *fakeStream) State() domain.ConnectionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeStream) SendText(username, content string) error {
	return f.record(stream.Frame{Username: username, Message: content, Type: stream.FrameText})
}

func (f *fakeStream) SendEmoji(username, content string) error {
	return f.record(stream.Frame{Username: username, Message: content, Type: stream.FrameEmoji})
}

func (f *fakeStream) Announce(oldUsername, newUsername string) error {
	return f.record(stream.Frame{Type: stream.FrameUsernameChange, OldUsername: oldUsername, NewUsername: newUsername})
}

func (f *fakeStream) record(fr stream.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != domain.StateOpen {
		return apperrors.ErrNotConnected
	}
	f.sent = append(f.sent, fr)
	return nil
}

func (f *fakeStream) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.state.Terminal() {
		f.state = domain.StateClosed
	}
	return nil
}

func (f *fakeStream) push(fr stream.Frame) {
	f.frames <- fr
}

// fail simulates the server dropping the socket: the read loop dies and
// the terminal state is reported.
func (f *fakeStream) fail() {
	f.mu.Lock()
	f.state = domain.StateFailed
	f.mu.Unlock()
	close(f.frames)
	f.states <- domain.StateFailed
}

func (f *fakeStream) sentFrames() []stream.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]stream.Frame, len(f.sent))
	copy(out, f.sent)
	return out
}

type captureSink struct {
	mu     sync.Mutex
	events []event.SessionEvent
}

func (s *captureSink) Consume(e event.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *captureSink) all() []event.SessionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.SessionEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *captureSink) count(match func(event.SessionEvent) bool) int {
	return lo.CountBy(s.all(), match)
}

type harness struct {
	c    *Controller
	fs   *fakeStream
	sink *captureSink
	tick chan time.Time
	done chan error

	rooms   *mocks.MockRoomLifecycle
	renames *mocks.MockRenameService
	timers  *mocks.MockTimerPolicy
	exports *mocks.MockExportService
	imports *mocks.MockImportService
}

func newHarness(t *testing.T, fs *fakeStream) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		fs:      fs,
		sink:    &captureSink{},
		tick:    make(chan time.Time),
		done:    make(chan error, 1),
		rooms:   mocks.NewMockRoomLifecycle(ctrl),
		renames: mocks.NewMockRenameService(ctrl),
		timers:  mocks.NewMockTimerPolicy(ctrl),
		exports: mocks.NewMockExportService(ctrl),
		imports: mocks.NewMockImportService(ctrl),
	}

	deps := Deps{
		Rooms:   h.rooms,
		Renames: h.renames,
		Timers:  h.timers,
		Exports: h.exports,
		Imports: h.imports,
		Log:     logs.GetLoggerFromLevel(slog.LevelDebug),
	}
	h.c = newController("room-1", deps,
		WithSinks(h.sink),
		WithTickSource(h.tick),
		WithClock(func() time.Time { return fixedNow }),
	)
	h.c.conn = fs

	ctx, cancel := context.WithCancel(context.Background())
	go func() { h.done <- h.c.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-h.done:
		case <-time.After(2 * time.Second):
			t.Error("session loop did not exit")
		}
	})
	return h
}

func (h *harness) waitDone(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		h.done <- err
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session loop did not end")
		return nil
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func Test_send_while_stream_not_open_is_dropped_and_appends_nothing(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateConnecting))

	out := h.c.SendText("hello?")

	require.Equal(domain.OutcomeDropped, out.Status)
	assert.Equal(t, "not connected", out.Reason)
	assert.Zero(t, h.c.Transcript().Len())
	assert.Empty(t, h.fs.sentFrames())
}

func Test_inbound_frames_append_in_arrival_order(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	h.fs.push(stream.Frame{Username: "alice", Message: "first"})
	h.fs.push(stream.Frame{Username: "bob", Message: "second", Type: stream.FrameText})
	h.fs.push(stream.Frame{Username: "alice", Message: "🎉", Type: stream.FrameEmoji})

	waitUntil(t, func() bool { return h.c.Transcript().Len() == 3 })

	msgs := h.c.Transcript().All()
	require.Len(msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, domain.KindEmoji, msgs[2].Kind)
	assert.Equal(t, fixedNow, msgs[0].ReceivedAt)

	appended := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.MessageAppended)
		return ok
	})
	assert.Equal(t, 3, appended)
}

func Test_stream_failure_keeps_session_alive(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	h.fs.fail()
	waitUntil(t, func() bool { return h.c.Snapshot().Connection == domain.StateFailed })

	// Sends drop, the transcript stays readable, the loop keeps running.
	out := h.c.SendText("anyone there")
	require.Equal(domain.OutcomeDropped, out.Status)

	ended := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.SessionEnded)
		return ok
	})
	assert.Zero(t, ended)
}

func TestController_SetTimer_rejects_garbage_values(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	for _, value := range []string{"abc", "0", "-3", ""} {
		out := h.c.SetTimer(value)
		require.Equal(domain.OutcomeInvalid, out.Status, "value %q", value)
	}
	assert.Equal(t, domain.ExpiryNone, h.c.Snapshot().Expiry.Mode)
}

func TestController_SetTimer_one_minute_expires_exactly_once(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.timers.EXPECT().SetDeleteTimer(gomock.Any(), "room-1", "1").Return(nil)

	out := h.c.SetTimer("1")
	require.Equal(domain.OutcomeOK, out.Status)

	snap := h.c.Snapshot()
	require.Equal(domain.ExpiryFixedDuration, snap.Expiry.Mode)
	require.NotNil(snap.Expiry.RemainingSeconds)
	assert.Equal(t, 60, *snap.Expiry.RemainingSeconds)

	for i := 0; i < 60; i++ {
		h.tick <- fixedNow.Add(time.Duration(i) * time.Second)
	}
	require.NoError(h.waitDone(t))

	expired := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.SessionExpired)
		return ok
	})
	assert.Equal(t, 1, expired)

	reasons := lo.FilterMap(h.sink.all(), func(e event.SessionEvent, _ int) (string, bool) {
		ended, ok := e.(event.SessionEnded)
		return ended.Reason, ok
	})
	require.Equal([]string{"room expired"}, reasons)
	assert.Equal(t, domain.StateClosed, h.fs.State())
}

func TestController_SetTimer_after_selects_room_closure_policy(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.timers.EXPECT().SetDeleteTimer(gomock.Any(), "room-1", "after").Return(nil)

	out := h.c.SetTimer("after")

	require.Equal(domain.OutcomeOK, out.Status)
	snap := h.c.Snapshot()
	assert.Equal(t, domain.ExpiryAfterRoomCloses, snap.Expiry.Mode)
	assert.Nil(t, snap.Expiry.RemainingSeconds)
}

func TestController_SetTimer_rejection_leaves_countdown_untouched(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.timers.EXPECT().
		SetDeleteTimer(gomock.Any(), "room-1", "5").
		Return(fmt.Errorf("%w: not the room owner", apperrors.ErrRemoteRejected))

	out := h.c.SetTimer("5")

	require.Equal(domain.OutcomeRejected, out.Status)
	assert.Equal(t, domain.ExpiryNone, h.c.Snapshot().Expiry.Mode)
}

func TestController_Rename_commits_and_announces_once(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	old := h.c.Snapshot().LocalUsername
	h.renames.EXPECT().
		RenameUser(gomock.Any(), "room-1", "NeoPanda7").
		Return("Username changed successfully", nil)

	out := h.c.Rename("NeoPanda7")

	require.Equal(domain.OutcomeOK, out.Status)
	assert.Equal(t, "Username changed successfully", out.Reason)
	assert.Equal(t, "NeoPanda7", h.c.Snapshot().LocalUsername)

	announces := lo.Filter(h.fs.sentFrames(), func(f stream.Frame, _ int) bool {
		return f.Type == stream.FrameUsernameChange
	})
	require.Len(announces, 1)
	assert.Equal(t, old, announces[0].OldUsername)
	assert.Equal(t, "NeoPanda7", announces[0].NewUsername)

	changed := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.UsernameChanged)
		return ok
	})
	assert.Equal(t, 1, changed)
}

func TestController_Rename_rejection_leaves_username_unchanged(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	old := h.c.Snapshot().LocalUsername
	h.renames.EXPECT().
		RenameUser(gomock.Any(), "room-1", "Taken").
		Return("", fmt.Errorf("%w: username already in use", apperrors.ErrRemoteRejected))

	out := h.c.Rename("Taken")

	require.Equal(domain.OutcomeRejected, out.Status)
	assert.Equal(t, old, h.c.Snapshot().LocalUsername)
	assert.Empty(t, h.fs.sentFrames())
}

func TestController_Rename_empty_name_is_invalid_without_a_roundtrip(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	out := h.c.Rename("   ")

	require.Equal(domain.OutcomeInvalid, out.Status)
}

func TestController_Export_returns_rendered_bytes(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.exports.EXPECT().
		ExportTranscript(gomock.Any(), "room-1", "txt").
		Return([]byte("alice: hi\n"), nil)

	data, out := h.c.Export("txt")

	require.Equal(domain.OutcomeOK, out.Status)
	assert.Equal(t, []byte("alice: hi\n"), data)
}

func TestController_Export_rejects_unknown_format(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	data, out := h.c.Export("csv")

	require.Equal(domain.OutcomeInvalid, out.Status)
	assert.Nil(t, data)
}

func TestController_Import_replaces_the_whole_transcript(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	h.fs.push(stream.Frame{Username: "carol", Message: "before import"})
	waitUntil(t, func() bool { return h.c.Transcript().Len() == 1 })

	h.imports.EXPECT().
		ImportTranscript(gomock.Any(), "room-1", "chat.json", gomock.Any()).
		Return([]domain.ImportedEntry{
			{Username: "alice", Content: "hi", Timestamp: "2024-01-01T00:00:00Z"},
			{Username: "bob", Content: "yo", Timestamp: "2024-01-01T00:00:01Z"},
		}, nil)

	out := h.c.Import("chat.json", strings.NewReader("{}"))

	require.Equal(domain.OutcomeOK, out.Status)
	msgs := h.c.Transcript().All()
	require.Len(msgs, 2)
	assert.Equal(t, "alice", msgs[0].Author)
	assert.Equal(t, "bob", msgs[1].Author)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC), msgs[1].ReceivedAt)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)

	replaced := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.TranscriptReplaced)
		return ok
	})
	assert.Equal(t, 1, replaced)
}

func TestController_Import_bad_timestamp_leaves_transcript_untouched(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	h.fs.push(stream.Frame{Username: "carol", Message: "still here"})
	waitUntil(t, func() bool { return h.c.Transcript().Len() == 1 })

	h.imports.EXPECT().
		ImportTranscript(gomock.Any(), "room-1", "chat.json", gomock.Any()).
		Return([]domain.ImportedEntry{
			{Username: "alice", Content: "hi", Timestamp: "yesterday"},
		}, nil)

	out := h.c.Import("chat.json", strings.NewReader("{}"))

	require.Equal(domain.OutcomeInvalid, out.Status)
	msgs := h.c.Transcript().All()
	require.Len(msgs, 1)
	assert.Equal(t, "still here", msgs[0].Content)
}

func TestController_Import_malformed_payload_is_invalid(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.imports.EXPECT().
		ImportTranscript(gomock.Any(), "room-1", "notes.txt", gomock.Any()).
		Return(nil, fmt.Errorf("%w: only JSON files are supported", apperrors.ErrMalformedImport))

	out := h.c.Import("notes.txt", strings.NewReader("plain text"))

	require.Equal(domain.OutcomeInvalid, out.Status)
	assert.Zero(t, h.c.Transcript().Len())
}

func TestController_CloseRoom_failure_keeps_the_session_live(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.rooms.EXPECT().
		DeleteRoom(gomock.Any(), "room-1").
		Return(fmt.Errorf("%w: room not found", apperrors.ErrRemoteRejected))

	out := h.c.CloseRoom()

	require.Equal(domain.OutcomeRejected, out.Status)
	sent := h.c.SendText("still alive")
	assert.Equal(t, domain.OutcomeOK, sent.Status)
}

func TestController_CloseRoom_success_ends_the_session(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	h.rooms.EXPECT().DeleteRoom(gomock.Any(), "room-1").Return(nil)

	out := h.c.CloseRoom()

	require.Equal(domain.OutcomeOK, out.Status)
	require.NoError(h.waitDone(t))
	assert.Equal(t, domain.StateClosed, h.fs.State())

	reasons := lo.FilterMap(h.sink.all(), func(e event.SessionEvent, _ int) (string, bool) {
		ended, ok := e.(event.SessionEnded)
		return ended.Reason, ok
	})
	require.Equal([]string{"room closed"}, reasons)
}

func Test_completion_arriving_after_teardown_is_discarded(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))
	old := h.c.Snapshot().LocalUsername

	started := make(chan struct{})
	release := make(chan struct{})
	h.renames.EXPECT().
		RenameUser(gomock.Any(), "room-1", "LateArrival").
		DoAndReturn(func(context.Context, string, string) (string, error) {
			close(started)
			<-release
			return "Username changed successfully", nil
		})

	renameOut := make(chan domain.Outcome, 1)
	go func() { renameOut <- h.c.Rename("LateArrival") }()

	<-started
	out := h.c.Close()
	require.Equal(domain.OutcomeOK, out.Status)
	require.NoError(h.waitDone(t))
	close(release)

	select {
	case late := <-renameOut:
		assert.Equal(t, domain.OutcomeDropped, late.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("rename intent never resolved")
	}
	assert.Equal(t, old, h.c.Snapshot().LocalUsername)

	changed := h.sink.count(func(e event.SessionEvent) bool {
		_, ok := e.(event.UsernameChanged)
		return ok
	})
	assert.Zero(t, changed)
}

func Test_intents_after_close_resolve_to_dropped(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, newFakeStream(domain.StateOpen))

	out := h.c.Close()
	require.Equal(domain.OutcomeOK, out.Status)
	require.NoError(h.waitDone(t))

	assert.Equal(t, domain.OutcomeDropped, h.c.SendText("too late").Status)
	assert.Equal(t, domain.OutcomeDropped, h.c.SetTimer("5").Status)
	assert.Equal(t, domain.OutcomeDropped, h.c.Rename("Ghost").Status)
}
