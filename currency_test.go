package fintrack

import (
	"errors"
	"testing"

	"github.com/Rhymond/go-money"
)

func TestCurrency_Format(t *testing.T) {
	usd, _ := LookupCurrency("USD")
	jpy, _ := LookupCurrency("jpy")

	tests := []struct {
		name     string
		currency Currency
		amount   Amount
		want     string
	}{
		{"base", Base, A(1234.5), "₱1,234.50"},
		{"base millions", Base, A(1234567.891), "₱1,234,567.89"},
		{"base zero", Base, A(0), "₱0.00"},
		{"converted", usd, A(100), "$1.80"},
		{"converted thousands", usd, A(100000), "$1,800.00"},
		{"yen keeps two decimals", jpy, A(10), "¥27.50"},
		{"negative", usd, A(-10000), "$-180.00"},
		{"negative base", Base, A(-150), "₱-150.00"},
		{"negative thousands", Base, A(-1234.5), "₱-1,234.50"},
		{"negative rounded to zero", Base, A(-0.001), "₱0.00"},
		{"rounded", Base, A(0.005), "₱0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.currency.Format(tt.amount); got != tt.want {
				t.Errorf("%s.Format(%v) = %q, want %q", tt.currency, tt.amount, got, tt.want)
			}
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	for _, code := range CurrencyCodes() {
		c, err := LookupCurrency(code)
		if err != nil {
			t.Errorf("LookupCurrency(%q) error = %v", code, err)
		}
		// every display currency is a real ISO currency
		if money.GetCurrency(c.Code) == nil {
			t.Errorf("%q is not an ISO 4217 code", c.Code)
		}
	}
	if _, err := LookupCurrency("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("LookupCurrency(XYZ) error = %v, want ErrUnknownCurrency", err)
	}
	if Base.Code != "PHP" || Currencies()[0] != Base {
		t.Errorf("Base = %v, want PHP first", Base)
	}
}
