package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/domain/event"
	apperrors "github.com/StaticAccess/Lynai/errors"
)

var validate = validator.New()

// SendText transmits a chat message under the current username. Sends
// while the stream is not open are dropped, never queued, and nothing
// is appended locally; the transcript only grows from inbound frames.
func (c *Controller) SendText(content string) domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		reply <- c.send(content, domain.KindText)
	})
}

// SendEmoji transmits an emoji message; same drop semantics as SendText.
func (c *Controller) SendEmoji(content string) domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		reply <- c.send(content, domain.KindEmoji)
	})
}

func (c *Controller) send(content string, kind domain.MessageKind) domain.Outcome {
	var err error
	if kind == domain.KindEmoji {
		err = c.conn.SendEmoji(c.identity.Current(), content)
	} else {
		err = c.conn.SendText(c.identity.Current(), content)
	}
	switch {
	case err == nil:
		return domain.OK("sent")
	case errors.Is(err, apperrors.ErrNotConnected):
		return domain.Dropped("not connected")
	default:
		return domain.Dropped(reasonOf(err))
	}
}

// SetTimer applies a delete-timer intent. "after" selects the
// room-closure policy and arms nothing; any other value must be a
// positive minute count. The server of record confirms the policy
// before the countdown state moves; a rejection leaves it untouched.
func (c *Controller) SetTimer(value string) domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		c.setTimer(value, reply)
	})
}

func (c *Controller) setTimer(value string, reply chan<- domain.Outcome) {
	var minutes int
	if value != domain.TimerAfter {
		var err error
		minutes, err = parseMinutes(value)
		if err != nil {
			reply <- domain.Invalid(err.Error())
			return
		}
	}

	go func() {
		err := c.timers.SetDeleteTimer(c.collabCtx(), c.roomID, value)
		c.post(func() {
			if err != nil {
				reply <- domain.Rejected(reasonOf(err))
				return
			}
			if value == domain.TimerAfter {
				c.countdown.Disarm()
				c.setExpiry(domain.ExpiryState{Mode: domain.ExpiryAfterRoomCloses})
				reply <- domain.OK("room will be deleted after it closes")
				return
			}
			seconds := minutes * 60
			c.countdown.Arm(seconds)
			c.setExpiry(domain.ExpiryState{Mode: domain.ExpiryFixedDuration, RemainingSeconds: lo.ToPtr(seconds)})
			c.emit(event.CountdownTicked{Room: c.roomID, Remaining: seconds})
			reply <- domain.OK(fmt.Sprintf("room deletes in %d minute(s)", minutes))
		})
	}()
}

// Rename routes a username change through the server of record. The
// local name commits only on confirmation, then the change is announced
// over the stream (best-effort) so peers can react.
func (c *Controller) Rename(newUsername string) domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		c.rename(newUsername, reply)
	})
}

// RandomizeName generates a candidate display name and routes it
// through the normal rename flow.
func (c *Controller) RandomizeName() domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		c.rename(c.identity.RandomCandidate(), reply)
	})
}

func (c *Controller) rename(newUsername string, reply chan<- domain.Outcome) {
	if err := c.identity.Validate(newUsername); err != nil {
		reply <- domain.Invalid(err.Error())
		return
	}

	go func() {
		msg, err := c.identity.Request(c.collabCtx(), c.roomID, newUsername)
		c.post(func() {
			if err != nil {
				reply <- domain.Rejected(reasonOf(err))
				return
			}
			old := c.identity.Commit(newUsername)
			c.setUsername(c.identity.Current())
			c.identity.AnnounceOver(c.conn, old, c.identity.Current())
			c.emit(event.UsernameChanged{Room: c.roomID, Old: old, New: c.identity.Current()})
			if msg == "" {
				msg = fmt.Sprintf("username is now %s", c.identity.Current())
			}
			reply <- domain.OK(msg)
		})
	}()
}

// Export requests a rendered transcript from the export collaborator.
// The bytes are an opaque artifact for the host to persist.
func (c *Controller) Export(format string) ([]byte, domain.Outcome) {
	type result struct {
		data []byte
		out  domain.Outcome
	}
	reply := make(chan result, 1)

	out := c.do(func(outcomes chan<- domain.Outcome) {
		if format != "txt" && format != "json" {
			outcomes <- domain.Invalid(fmt.Sprintf("unsupported export format %q", format))
			return
		}
		go func() {
			data, err := c.exports.ExportTranscript(c.collabCtx(), c.roomID, format)
			c.post(func() {
				if err != nil {
					outcomes <- domain.Rejected(reasonOf(err))
					return
				}
				reply <- result{data: data, out: domain.OK(fmt.Sprintf("transcript exported as %s", format))}
				outcomes <- domain.OK(fmt.Sprintf("transcript exported as %s", format))
			})
		}()
	})

	if !out.Ok() {
		return nil, out
	}
	res := <-reply
	return res.data, res.out
}

// Import uploads a transcript file through the import collaborator and,
// if the returned payload is well-formed, replaces the entire in-memory
// transcript with the imported entries under fresh ids. Any validation
// failure leaves the transcript untouched. Replace, never merge.
func (c *Controller) Import(filename string, file io.Reader) domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		go func() {
			entries, err := c.imports.ImportTranscript(c.collabCtx(), c.roomID, filename, file)
			c.post(func() {
				reply <- c.applyImport(entries, err)
			})
		}()
	})
}

func (c *Controller) applyImport(entries []domain.ImportedEntry, err error) domain.Outcome {
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedImport) {
			return domain.Invalid(reasonOf(err))
		}
		return domain.Rejected(reasonOf(err))
	}

	messages := make([]domain.Message, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return domain.Invalid(fmt.Sprintf("entry %d is malformed: %v", i, err))
		}
		at, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			return domain.Invalid(fmt.Sprintf("entry %d has a bad timestamp %q", i, entry.Timestamp))
		}
		messages = append(messages, domain.NewMessage(entry.Username, entry.Content, domain.KindText, at))
	}

	c.store.Replace(messages)
	c.emit(event.TranscriptReplaced{Room: c.roomID, Count: len(messages)})
	for _, msg := range messages {
		c.emit(event.MessageAppended{Room: c.roomID, Message: msg})
	}
	return domain.OK(fmt.Sprintf("imported %d message(s)", len(messages)))
}

// CloseRoom asks the room of record to delete the room. On success the
// session tears down; on failure it stays live and the rejection is
// surfaced.
func (c *Controller) CloseRoom() domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		go func() {
			err := c.rooms.DeleteRoom(c.collabCtx(), c.roomID)
			c.post(func() {
				if err != nil {
					reply <- domain.Rejected(reasonOf(err))
					return
				}
				reply <- domain.OK("room deleted")
				c.endSession("room closed")
			})
		}()
	})
}

// Close ends the session without deleting the room.
func (c *Controller) Close() domain.Outcome {
	return c.do(func(reply chan<- domain.Outcome) {
		reply <- domain.OK("session closed")
		c.endSession("closed by host")
	})
}

