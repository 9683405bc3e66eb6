package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// SettingsMarkdown renders the preferences and the available currencies.
func SettingsMarkdown(s fintrack.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	theme := "light"
	if s.DarkMode {
		theme = "dark"
	}
	doc.H1("Settings")
	doc.BulletList(
		fmt.Sprintf("Theme: %s", theme),
		fmt.Sprintf("Currency: %s (%s)", s.Currency.Code, s.Currency.Symbol),
	)

	doc.H2("Currencies")
	rows := [][]string{}
	for _, c := range fintrack.Currencies() {
		mark := ""
		if c.Code == s.Currency.Code {
			mark = "✓"
		}
		rows = append(rows, []string{mark, c.Code, c.Symbol, c.Rate.String(), c.Format(fintrack.A(1000))})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Code", "Symbol", "Rate", fmt.Sprintf("%s1,000.00", fintrack.Base.Symbol)},
		Rows:   rows,
	})
	return doc.String()
}
