package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"github.com/StaticAccess/Lynai/domain/event"
)

// consoleSink renders session events for the terminal. Consume runs on
// the session loop, so rendering stays cheap and never blocks.
type consoleSink struct {
	out   io.Writer
	ended chan struct{}
	once  sync.Once
}

func newConsoleSink(out io.Writer) *consoleSink {
	return &consoleSink{out: out, ended: make(chan struct{})}
}

// Ended closes once the session emitted its terminal event.
func (s *consoleSink) Ended() <-chan struct{} {
	return s.ended
}

func (s *consoleSink) Consume(e event.SessionEvent) {
	switch ev := e.(type) {
	case event.MessageAppended:
		ts := ev.Message.ReceivedAt.Format("15:04:05")
		author := color.New(color.FgCyan).Render(ev.Message.Author)
		fmt.Fprintf(s.out, "[%s] %s: %s\n", ts, author, ev.Message.Content)
	case event.ConnectionChanged:
		s.notice(color.FgDarkGray, "connection "+string(ev.State))
	case event.CountdownTicked:
		// Full cadence would flood the terminal; announce round marks
		// and the last five seconds.
		if ev.Remaining <= 5 || ev.Remaining%30 == 0 {
			s.notice(color.FgYellow, fmt.Sprintf("room self-destructs in %ds", ev.Remaining))
		}
	case event.SessionExpired:
		s.notice(color.FgRed, "room expired")
	case event.UsernameChanged:
		s.notice(color.FgGreen, "you are now "+ev.New)
	case event.PeerRenamed:
		s.notice(color.FgYellow, fmt.Sprintf("%s is now %s", ev.Old, ev.New))
	case event.TranscriptReplaced:
		s.notice(color.FgYellow, fmt.Sprintf("transcript replaced with %d imported message(s)", ev.Count))
	case event.SessionEnded:
		s.notice(color.FgRed, "session ended: "+ev.Reason)
		s.once.Do(func() { close(s.ended) })
	}
}

func (s *consoleSink) notice(fg color.Color, text string) {
	fmt.Fprintln(s.out, color.New(fg).Render("* "+text))
}
