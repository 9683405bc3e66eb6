package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the saving goals with their countdown.
func GoalsMarkdown(p Page, goals []fintrack.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Saving Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals yet, create one with `ft goal-create`.")
		return doc.String()
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		progress := g.Progress()
		rows = append(rows, []string{
			g.Name,
			fmt.Sprintf("%s / %s", p.Money(g.CurrentAmount), p.Money(g.TargetAmount)),
			fmt.Sprintf("%s %.0f%%", Bar(progress.Percent), float64(progress.Percent)),
			p.Money(g.DailyAmount),
			fmt.Sprintf("%d", g.DaysRemaining(p.Today)),
			g.ExpectedCompletionDate().String(),
			g.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Progress", "Daily", "Days Left", "Expected", "ID"},
		Rows:   rows,
	})
	doc.Build()

	ConditionalBlock(&buf, func(w io.Writer) bool {
		reached := false
		fmt.Fprintf(w, "\n## Reached\n\n")
		for _, g := range goals {
			if g.Reached() {
				reached = true
				fmt.Fprintf(w, "- 🎉 %s: %s saved\n", g.Name, p.Money(g.TargetAmount))
			}
		}
		return reached
	})
	return buf.String()
}

// GoalPlanMarkdown renders the plan of a goal being created.
func GoalPlanMarkdown(p Page, g fintrack.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Goal %q", g.Name))
	doc.BulletList(
		fmt.Sprintf("Target: %s", p.Money(g.TargetAmount)),
		fmt.Sprintf("Save %s per day for %d days", p.Money(g.DailyAmount), g.Days),
		fmt.Sprintf("Expected completion: %s", g.ExpectedCompletionDate()),
	)
	return doc.String()
}
