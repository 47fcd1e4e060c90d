package domain

// OutcomeStatus classifies how a user intent resolved.
type OutcomeStatus string

const (
	OutcomeOK       OutcomeStatus = "ok"
	OutcomeDropped  OutcomeStatus = "dropped"  // transport: stream not open, send not queued
	OutcomeInvalid  OutcomeStatus = "invalid"  // validation: prior state retained
	OutcomeRejected OutcomeStatus = "rejected" // collaborator returned a failure
)

// Outcome is what every user intent returns. The session controller
// never panics or errors across its boundary; hosts receive an explicit
// outcome with a human-readable reason and decide presentation.
type Outcome struct {
	Status OutcomeStatus
	Reason string
}

func (o Outcome) Ok() bool {
	return o.Status == OutcomeOK
}

func OK(reason string) Outcome {
	return Outcome{Status: OutcomeOK, Reason: reason}
}

func Dropped(reason string) Outcome {
	return Outcome{Status: OutcomeDropped, Reason: reason}
}

func Invalid(reason string) Outcome {
	return Outcome{Status: OutcomeInvalid, Reason: reason}
}

func Rejected(reason string) Outcome {
	return Outcome{Status: OutcomeRejected, Reason: reason}
}
