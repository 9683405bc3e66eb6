package renderer

import (
	"github.com/etnz/fintrack"
)

// NotesMarkdown renders the notes, newest first as they are stored.
func NotesMarkdown(p Page, notes []fintrack.Note) string {
	return p.renderTemplate("notes", "notes.md", nil, notes)
}
