package fintrack

// Account is a bank account. Its balance may be negative (a credit line).
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Amount `json:"balance"`
	Color   Color  `json:"color"`
	Icon    Icon   `json:"icon"`
}

func (a Account) identity() string { return a.ID }

// defaultAccounts is what a new store starts with.
func defaultAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Main Checking", Color: ColorBlue, Icon: IconWallet},
		{ID: "2", Name: "Savings Account", Color: ColorGreen, Icon: IconBuilding},
	}
}

// NewAccount returns a new account, the n-th of its list.
func NewAccount(name string, balance Amount, icon Icon, n int) Account {
	return Account{
		ID:      NewID(),
		Name:    name,
		Balance: balance,
		Color:   AccountPalette.Next(n),
		Icon:    AccountIcons.Resolve(icon),
	}
}

// TotalBalance returns the sum of all balances.
//
// The dashboard always shows it in the base currency, whatever the display
// currency: use Base.Format, not the selected currency.
func TotalBalance(accounts []Account) Amount {
	var total Amount
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}
