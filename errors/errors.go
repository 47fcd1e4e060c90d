package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrNotConnected    = fmt.Errorf("stream is not open")
	ErrInvalidTimer    = fmt.Errorf("invalid delete timer value")
	ErrMalformedImport = fmt.Errorf("malformed import payload")
	ErrSessionClosed   = fmt.Errorf("session is torn down")
	ErrRemoteRejected  = fmt.Errorf("request rejected by the room server")
)
