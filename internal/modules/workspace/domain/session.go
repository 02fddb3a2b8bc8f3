package domain

// Session is one open editing tab bound to exactly one note. Dirty means
// the working content differs from the last value known to be persisted
// for that note.
type Session struct {
	ID             string
	NoteID         string
	WorkingContent string
	Dirty          bool
}
