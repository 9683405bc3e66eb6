package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// EnvelopesMarkdown renders the budget envelopes. Overspent envelopes show
// how much they are over.
func EnvelopesMarkdown(p Page, envelopes []fintrack.Envelope) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Envelope Budgeting")
	allocated, spent := fintrack.EnvelopeTotals(envelopes)
	doc.Table(md.TableSet{
		Header: []string{"Allocated", "Spent", "Remaining"},
		Rows:   [][]string{{p.Money(allocated), p.Money(spent), p.Money(fintrack.Remaining(allocated, spent))}},
	})

	doc.H2("Envelopes")
	rows := make([][]string, 0, len(envelopes))
	for _, e := range envelopes {
		progress := e.Progress()
		left := p.Money(progress.Remaining) + " left"
		if e.Overspent() {
			left = p.Money(progress.Remaining.Abs()) + " over ⚠"
		}
		rows = append(rows, []string{
			e.Icon.Glyph(),
			e.Name,
			p.Money(e.Allocated),
			p.Money(e.Spent),
			left,
			fmt.Sprintf("%s %.0f%%", Bar(progress.Percent), float64(progress.Percent)),
			e.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Envelope", "Allocated", "Spent", "Remaining", "Used", "ID"},
		Rows:   rows,
	})
	return doc.String()
}
