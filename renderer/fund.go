package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// FundMarkdown renders the emergency fund.
func FundMarkdown(p Page, f fintrack.EmergencyFund) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	progress := f.Progress()
	low, high := f.RecommendedRange()

	doc.H1("Emergency Fund")
	doc.PlainText(fmt.Sprintf("%s / %s", p.Money(f.CurrentAmount), p.Money(f.TargetAmount)))
	doc.PlainText(fmt.Sprintf("%s %.0f%%", Bar(progress.Percent), float64(progress.Percent)))
	doc.PlainText(fmt.Sprintf("%.1f months of expenses covered", f.MonthsCovered()))

	doc.Table(md.TableSet{
		Header: []string{"Target", "Remaining", "Monthly Expenses"},
		Rows:   [][]string{{p.Money(f.TargetAmount), p.Money(progress.Remaining), p.Money(f.MonthlyExpenses)}},
	})
	doc.Blockquote(fmt.Sprintf("Experts recommend saving 3 to 6 months of expenses: %s to %s.", p.Money(low), p.Money(high)))
	return doc.String()
}
