package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the bank accounts and their total balance.
// The total is always shown in the base currency.
func DashboardMarkdown(p Page, accounts []fintrack.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.PlainText(fmt.Sprintf("Total Balance: **%s**", fintrack.Base.Format(fintrack.TotalBalance(accounts))))

	doc.H2("Bank Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet, add one with `ft account-add`.")
		return doc.String()
	}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.Icon.Glyph(), a.Name, p.Money(a.Balance), a.Color.Hue(), a.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Account", "Balance", "Color", "ID"},
		Rows:   rows,
	})
	return doc.String()
}
