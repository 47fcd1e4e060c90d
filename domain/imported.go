package domain

// ImportedEntry is one [username, content, isoTimestamp] triple from an
// imported transcript, as returned by the import collaborator. Entries
// are validated by the session controller before they replace anything.
type ImportedEntry struct {
	Username  string `validate:"required"`
	Content   string
	Timestamp string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
