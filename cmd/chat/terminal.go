package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/session"
)

var emojiPalette = []string{"😀", "😂", "😍", "🤔", "👍", "👎", "🎉", "🔥", "❤️", "😎"}

// terminal turns stdin lines into session intents. Plain lines are chat
// messages; lines starting with "/" are commands.
type terminal struct {
	in      io.Reader
	out     io.Writer
	session *session.Controller
	roomID  string
	ended   <-chan struct{}
}

func newTerminal(in io.Reader, out io.Writer, s *session.Controller, roomID string, ended <-chan struct{}) *terminal {
	return &terminal{in: in, out: out, session: s, roomID: roomID, ended: ended}
}

// Run implements contract.Worker. It returns when the session ends, the
// context is canceled or stdin closes.
func (t *terminal) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		// The scanner goroutine lives as long as the process; stdin has
		// no portable cancelable read.
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	t.printHelp()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.ended:
			return nil
		case line, ok := <-lines:
			if !ok {
				t.report(t.session.Close())
				return nil
			}
			t.handle(line)
		}
	}
}

func (t *terminal) handle(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if !strings.HasPrefix(line, "/") {
		t.report(t.session.SendText(line))
		return
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "/help":
		t.printHelp()
	case "/name":
		t.report(t.session.Rename(arg))
	case "/random":
		t.report(t.session.RandomizeName())
	case "/emoji":
		t.sendEmoji(arg)
	case "/timer":
		t.report(t.session.SetTimer(arg))
	case "/export":
		t.export(arg)
	case "/import":
		t.importFile(arg)
	case "/history":
		t.printHistory()
	case "/close":
		t.report(t.session.CloseRoom())
	case "/quit":
		t.report(t.session.Close())
	default:
		fmt.Fprintf(t.out, "Unknown command %s, try /help\n", command)
	}
}

// sendEmoji accepts a palette index or a literal emoji; with no
// argument it prints the palette.
func (t *terminal) sendEmoji(arg string) {
	if arg == "" {
		for i, e := range emojiPalette {
			fmt.Fprintf(t.out, "  %d %s", i+1, e)
		}
		fmt.Fprintln(t.out)
		return
	}
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(emojiPalette) {
			fmt.Fprintf(t.out, "Pick an emoji between 1 and %d\n", len(emojiPalette))
			return
		}
		arg = emojiPalette[idx-1]
	}
	t.report(t.session.SendEmoji(arg))
}

func (t *terminal) export(format string) {
	data, out := t.session.Export(format)
	if !out.Ok() {
		t.report(out)
		return
	}
	path := fmt.Sprintf("chat_%s.%s", t.roomID, format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintln(t.out, color.New(color.FgRed).Render("Export write failed: "+err.Error()))
		return
	}
	fmt.Fprintln(t.out, color.New(color.FgGreen).Render("Transcript written to "+path))
}

func (t *terminal) importFile(path string) {
	if path == "" {
		fmt.Fprintln(t.out, "Usage: /import <file.json>")
		return
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(t.out, color.New(color.FgRed).Render("Import failed: "+err.Error()))
		return
	}
	defer f.Close()
	t.report(t.session.Import(filepath.Base(path), f))
}

func (t *terminal) printHistory() {
	msgs := t.session.Transcript().All()
	if len(msgs) == 0 {
		fmt.Fprintln(t.out, "No messages yet")
		return
	}
	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"Time", "Author", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, msg := range msgs {
		table.Append([]string{msg.ReceivedAt.Format("15:04:05"), msg.Author, msg.Content})
	}
	table.Render()
}

func (t *terminal) printHelp() {
	fmt.Fprintln(t.out, strings.TrimLeft(`
Commands:
  /name <username>     change your display name
  /random              pick a random display name
  /emoji [n]           send an emoji from the palette
  /timer <1|3|5|10|30|after>  set the room delete timer
  /export <txt|json>   save the transcript to a file
  /import <file.json>  replace the transcript from a file
  /history             print the transcript
  /close               delete the room and leave
  /quit                leave without deleting the room
`, "\n"))
}

func (t *terminal) report(out domain.Outcome) {
	switch out.Status {
	case domain.OutcomeOK:
		fmt.Fprintln(t.out, color.New(color.FgGreen).Render(out.Reason))
	case domain.OutcomeInvalid:
		fmt.Fprintln(t.out, color.New(color.FgYellow).Render(out.Reason))
	case domain.OutcomeRejected:
		fmt.Fprintln(t.out, color.New(color.FgRed).Render(out.Reason))
	default:
		fmt.Fprintln(t.out, color.New(color.FgDarkGray).Render(out.Reason))
	}
}
