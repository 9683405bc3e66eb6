package renderer

import (
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
)

// periodTotal is what was saved in the current period.
type periodTotal struct {
	Period date.Period
	Amount fintrack.Amount
}

// piggybankView is a piggybank with its derived values, as the templates use it.
type piggybankView struct {
	fintrack.Piggybank
	Fill       fintrack.Progress
	Badge      fintrack.StreakStatus
	Totals     []periodTotal
	SavedToday bool
}

// DefaultTotals are the periods summed on every piggybank card.
var DefaultTotals = []date.Period{date.Weekly, date.Monthly}

// PiggybanksMarkdown renders the piggybanks with their streak, the amounts
// saved in the current periods and the recent history.
// At most historyLen contributions are listed per piggybank.
func PiggybanksMarkdown(p Page, piggybanks []fintrack.Piggybank, periods []date.Period, historyLen int) string {
	views := make([]piggybankView, 0, len(piggybanks))
	for _, pb := range piggybanks {
		v := piggybankView{
			Fill:       pb.Progress(),
			Badge:      pb.Status(),
			SavedToday: pb.LastSaveDate == p.Today,
		}
		for _, period := range periods {
			v.Totals = append(v.Totals, periodTotal{period, pb.SavedIn(date.NewRange(p.Today, period))})
		}
		if len(pb.History) > historyLen {
			pb.History = pb.History[:historyLen]
		}
		v.Piggybank = pb
		views = append(views, v)
	}
	partials := map[string]string{
		"piggybank_card": "piggybank_card.md",
	}
	return p.renderTemplate("piggybanks", "piggybanks.md", partials, views)
}
