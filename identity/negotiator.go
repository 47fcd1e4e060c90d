// Package identity manages the local display name of a room session.
//
// A rename is request -> confirm/reject against the server of record.
// The name is committed only after explicit confirmation; there is no
// speculative write to roll back.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/StaticAccess/Lynai/contract"
	"github.com/StaticAccess/Lynai/domain"
)

// Announcer broadcasts a confirmed rename over the room stream.
// *stream.Conn satisfies it.
type Announcer interface {
	Announce(oldUsername, newUsername string) error
}

// Negotiator holds the confirmed username and the rename rules. It is
// owned by one session loop: Commit and Current are only called there.
type Negotiator struct {
	log     *slog.Logger
	renames contract.RenameService
	current string
}

func NewNegotiator(renames contract.RenameService, log *slog.Logger) *Negotiator {
	return &Negotiator{
		log:     log,
		renames: renames,
		current: domain.RandomUsername(),
	}
}

// Current is the confirmed username.
func (n *Negotiator) Current() string {
	return n.current
}

// Validate rejects candidates before any server round-trip.
func (n *Negotiator) Validate(candidate string) error {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return fmt.Errorf("username must not be empty")
	}
	if candidate == n.current {
		return fmt.Errorf("already using username %s", candidate)
	}
	return nil
}

// Request performs the out-of-band rename call. It never mutates the
// local name: the owner applies Commit once it decides the session is
// still live. Safe to call off the session loop.
func (n *Negotiator) Request(ctx context.Context, roomID, newUsername string) (serverMessage string, err error) {
	return n.renames.RenameUser(ctx, roomID, strings.TrimSpace(newUsername))
}

// Commit records the confirmed name and returns the previous one.
func (n *Negotiator) Commit(newUsername string) (old string) {
	old = n.current
	n.current = strings.TrimSpace(newUsername)
	return old
}

// AnnounceOver broadcasts the change so peers can relabel prior
// messages if they choose. Best-effort: a stream that is not open
// skips the announce without surfacing an error.
func (n *Negotiator) AnnounceOver(a Announcer, oldUsername, newUsername string) {
	if err := a.Announce(oldUsername, newUsername); err != nil {
		n.log.Debug("Rename announce skipped", "old", oldUsername, "new", newUsername, "err", err)
	}
}

// RandomCandidate generates a fresh display name to route through the
// usual rename flow.
func (n *Negotiator) RandomCandidate() string {
	return domain.RandomUsername()
}
