package fintrack

import (
	"errors"
	"testing"

	"github.com/etnz/fintrack/store"
)

func TestPreferences_Defaults(t *testing.T) {
	p, err := NewPreferences(store.NewGateway(store.NewMemory()))
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	s := p.Settings()
	if s.DarkMode || s.Currency.Code != "PHP" {
		t.Errorf("Settings() = %v, want light theme and PHP", s)
	}
	if got := p.Format(A(1500)); got != "₱1,500.00" {
		t.Errorf("Format(1500) = %q, want ₱1,500.00", got)
	}
}

func TestPreferences_Load(t *testing.T) {
	tests := []struct {
		name         string
		darkMode     string
		currency     string
		wantDark     bool
		wantCurrency string
	}{
		{"json values", `true`, `"EUR"`, true, "EUR"},
		{"bare legacy code", `false`, `USD`, false, "USD"},
		{"unknown currency", `true`, `"XYZ"`, true, "PHP"},
		{"malformed theme", `maybe`, `"GBP"`, false, "GBP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := store.NewMemory()
			put(t, m, KeyDarkMode, tt.darkMode)
			put(t, m, KeyCurrency, tt.currency)
			p, err := NewPreferences(store.NewGateway(m))
			if err != nil {
				t.Fatalf("NewPreferences() error = %v", err)
			}
			s := p.Settings()
			if s.DarkMode != tt.wantDark || s.Currency.Code != tt.wantCurrency {
				t.Errorf("Settings() = %v %v, want %v %v", s.DarkMode, s.Currency, tt.wantDark, tt.wantCurrency)
			}
		})
	}
}

func TestPreferences_Changes(t *testing.T) {
	m := store.NewMemory()
	g := store.NewGateway(m)
	p, err := NewPreferences(g)
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}

	var notified []Settings
	cancel := p.Subscribe(func(s Settings) { notified = append(notified, s) })

	if err := p.SetCurrency("usd"); err != nil {
		t.Fatalf("SetCurrency() error = %v", err)
	}
	if err := p.ToggleDarkMode(); err != nil {
		t.Fatalf("ToggleDarkMode() error = %v", err)
	}
	if got := p.Format(A(100)); got != "$1.80" {
		t.Errorf("Format(100) = %q, want $1.80", got)
	}
	if len(notified) != 2 || notified[0].Currency.Code != "USD" || notified[0].DarkMode || !notified[1].DarkMode {
		t.Errorf("notifications = %v", notified)
	}

	// an unknown code keeps the selection
	if err := p.SetCurrency("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("SetCurrency(XYZ) error = %v, want ErrUnknownCurrency", err)
	}
	if p.Settings().Currency.Code != "USD" || len(notified) != 2 {
		t.Errorf("SetCurrency(XYZ) changed the settings: %v", p.Settings())
	}

	// changes are persisted
	reloaded, err := NewPreferences(g)
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}
	if s := reloaded.Settings(); !s.DarkMode || s.Currency.Code != "USD" {
		t.Errorf("reloaded Settings() = %v, want dark and USD", s)
	}

	cancel()
	if err := p.ToggleDarkMode(); err != nil {
		t.Fatalf("ToggleDarkMode() error = %v", err)
	}
	if len(notified) != 2 {
		t.Errorf("cancelled subscriber was notified")
	}

	// nothing changes when the store fails
	m.Fail = errors.New("quota exceeded")
	if err := p.SetCurrency("EUR"); err == nil {
		t.Error("SetCurrency() error = nil, want the storage error")
	}
	if p.Settings().Currency.Code != "USD" {
		t.Errorf("Currency = %v after a failed save, want USD", p.Settings().Currency)
	}
}

func TestInit(t *testing.T) {
	m := store.NewMemory()
	put(t, m, KeyCurrency, `"GBP"`)
	if _, err := Init(store.NewGateway(m)); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := Format(A(1000)); got != "£14.00" {
		t.Errorf("Format(1000) = %q, want £14.00", got)
	}
	if Prefs().Settings().Currency.Code != "GBP" {
		t.Errorf("Prefs() currency = %v, want GBP", Prefs().Settings().Currency)
	}

	// Format follows currency changes made through Prefs
	tests := []struct {
		code string
		want string
	}{
		{"EUR", "€17.00"},
		{"PHP", "₱1,000.00"},
	}
	for _, tt := range tests {
		if err := Prefs().SetCurrency(tt.code); err != nil {
			t.Fatalf("SetCurrency(%s) error = %v", tt.code, err)
		}
		if got := Format(A(1000)); got != tt.want {
			t.Errorf("Format(1000) in %s = %q, want %q", tt.code, got, tt.want)
		}
	}
}
