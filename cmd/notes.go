package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct{}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "show notes to your future self" }
func (*notesCmd) Usage() string {
	return `ft notes

  Shows the notes, newest first.
`
}

func (c *notesCmd) SetFlags(f *flag.FlagSet) {}

func (c *notesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	notes, err := s.book.Notes()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.NotesMarkdown(s.page(), notes))
	return subcommands.ExitSuccess
}

type noteAddCmd struct {
	title    string
	content  string
	category string
	linkedTo string
}

func (*noteAddCmd) Name() string     { return "note-add" }
func (*noteAddCmd) Synopsis() string { return "write a note to your future self" }
func (*noteAddCmd) Usage() string {
	return `ft note-add -title <title> -content <text> [-category <category>] [-linked-to <goal>]

  Writes a note. Categories are motivation, goal, milestone and reminder.
`
}

func (c *noteAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Note title (required)")
	f.StringVar(&c.content, "content", "", "Note text (required)")
	f.StringVar(&c.category, "category", "motivation", "Note category")
	f.StringVar(&c.linkedTo, "linked-to", "", "Goal or topic the note is about")
}

func (c *noteAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireName("title", c.title) || !requireName("content", c.content) {
		return subcommands.ExitUsageError
	}
	category, err := fintrack.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, status := openSession()
	if s == nil {
		return status
	}
	defer s.Close()

	n, err := s.book.AddNote(c.title, c.content, category, c.linkedTo, time.Now())
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(out, "Added note %q (id %s)\n", n.Title, n.ID)
	return subcommands.ExitSuccess
}

type noteRmCmd struct{}

func (*noteRmCmd) Name() string     { return "note-rm" }
func (*noteRmCmd) Synopsis() string { return "delete a note" }
func (*noteRmCmd) Usage() string {
	return `ft note-rm <id>

  Deletes a note.
`
}

func (c *noteRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *noteRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeRecord(f, "note", func(b *fintrack.Book, id string) error { return b.RemoveNote(id) })
}
