//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"io"
	"reflect"

	"github.com/StaticAccess/Lynai/domain"
	"github.com/StaticAccess/Lynai/domain/event"
)

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives session events. Sinks are called from the session
// loop and must not block.
type EventSink interface {
	Consume(e event.SessionEvent)
}

// RoomLifecycle is the room-of-record service: create, join, delete.
type RoomLifecycle interface {
	CreateRoom(ctx context.Context, password string) (string, error)
	JoinRoom(ctx context.Context, roomID, password string) error
	DeleteRoom(ctx context.Context, roomID string) error
}

// RenameService confirms username changes against the server of record.
// The returned string is the server's confirmation message.
type RenameService interface {
	RenameUser(ctx context.Context, roomID, newUsername string) (string, error)
}

// TimerPolicy records the room's delete-timer policy server-side.
// Accepted values are positive minute counts and domain.TimerAfter.
type TimerPolicy interface {
	SetDeleteTimer(ctx context.Context, roomID, value string) error
}

// ExportService renders the transcript remotely. The bytes are an opaque
// downloadable artifact; content framing is not this core's business.
type ExportService interface {
	ExportTranscript(ctx context.Context, roomID, format string) ([]byte, error)
}

// ImportService uploads a transcript file and returns the parsed triples.
type ImportService interface {
	ImportTranscript(ctx context.Context, roomID, filename string, file io.Reader) ([]domain.ImportedEntry, error)
}
