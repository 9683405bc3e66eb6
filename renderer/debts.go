package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// DebtsMarkdown renders the debts, their totals and payoff countdown.
func DebtsMarkdown(p Page, debts []fintrack.Debt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debt Tracker")
	total, paid := fintrack.DebtTotals(debts)
	doc.Table(md.TableSet{
		Header: []string{"Total Debt", "Total Paid", "Remaining"},
		Rows:   [][]string{{p.Money(total), p.Money(paid), p.Money(fintrack.Remaining(total, paid))}},
	})

	if len(debts) == 0 {
		doc.PlainText("No debts, add one with `ft debt-add`.")
		return doc.String()
	}

	doc.H2("Debts")
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		progress := d.Progress()
		rows = append(rows, []string{
			d.Name,
			fmt.Sprintf("%s / %s", p.Money(d.PaidAmount), p.Money(d.TotalDebt)),
			p.Money(progress.Remaining),
			fmt.Sprintf("%s %.1f%%", Bar(progress.Percent), float64(progress.Percent)),
			d.TargetDate.String(),
			countdown(d, p),
			d.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Debt", "Paid", "Remaining", "Progress", "Target", "Status", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

func countdown(d fintrack.Debt, p Page) string {
	days := d.DaysUntilTarget(p.Today)
	switch {
	case d.PaidOff():
		return "paid off"
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
