package fintrack

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned when selecting a currency that is not in the table.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency describes a display currency.
type Currency struct {
	Code   string          // ISO 4217 code
	Symbol string          // prefix used by Format
	Rate   decimal.Decimal // units of this currency for one unit of the base currency
}

func cur(code, symbol, rate string) Currency {
	return Currency{Code: code, Symbol: symbol, Rate: decimal.RequireFromString(rate)}
}

// currencies is the fixed table of display currencies, the first one is the base currency.
// Rates are constants, they are never fetched.
var currencies = []Currency{
	cur("PHP", "₱", "1"),
	cur("USD", "$", "0.018"),
	cur("EUR", "€", "0.017"),
	cur("JPY", "¥", "2.75"),
	cur("GBP", "£", "0.014"),
}

// Base is the currency all amounts are stored in.
var Base = currencies[0]

// Currencies returns the table of display currencies, base currency first.
func Currencies() []Currency { return slices.Clone(currencies) }

// CurrencyCodes returns the codes of the display currencies.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.Code)
	}
	return codes
}

// LookupCurrency returns the display currency for code.
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w %q, want one of %s", ErrUnknownCurrency, code, strings.Join(CurrencyCodes(), ", "))
}

// Convert returns the base currency amount expressed in c.
func (c Currency) Convert(amount Amount) Amount {
	return Amount{value: amount.value.Mul(c.Rate)}
}

// formatter returns the go-money formatter for c: symbol prefix, two decimals
// and comma thousands separators, whatever the ISO fraction of the currency.
// The sign of negative amounts goes between the symbol and the digits.
func (c Currency) formatter(negative bool) *money.Formatter {
	template := "$1"
	if negative {
		template = "$-1"
	}
	return money.NewFormatter(2, ".", ",", c.Symbol, template)
}

// Format converts a base currency amount into c and renders it like "$1,234.50".
// Negative amounts are rendered like "$-150.00".
func (c Currency) Format(amount Amount) string {
	cents := c.Convert(amount).value.Round(2).Shift(2).IntPart()
	if cents < 0 {
		return c.formatter(true).Format(-cents)
	}
	return c.formatter(false).Format(cents)
}

func (c Currency) String() string { return c.Code }
