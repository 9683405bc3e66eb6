package fintrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/etnz/fintrack/store"
)

// Settings are the user preferences shared by every page.
type Settings struct {
	DarkMode bool
	Currency Currency
}

// Preferences holds the current Settings and persists every change.
//
// Subscribers are called, in no particular order, after each change with the
// new settings.
type Preferences struct {
	mu          sync.Mutex
	g           *store.Gateway
	current     Settings
	subscribers map[int]func(Settings)
	nextID      int
}

// NewPreferences loads the preferences from g. Missing or malformed values
// default to the light theme and the base currency.
func NewPreferences(g *store.Gateway) (*Preferences, error) {
	p := &Preferences{
		g:           g,
		current:     Settings{Currency: Base},
		subscribers: make(map[int]func(Settings)),
	}

	var dark bool
	switch err := g.Load(KeyDarkMode, &dark); {
	case err == nil:
		p.current.DarkMode = dark
	case errors.Is(err, store.ErrMalformed):
		log.Printf("warning, %v, using light theme", err)
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	code, err := p.loadCurrency()
	if err != nil {
		return nil, err
	}
	if code != "" {
		c, err := LookupCurrency(code)
		if err != nil {
			log.Printf("warning, stored currency: %v, using %s", err, Base)
		} else {
			p.current.Currency = c
		}
	}
	return p, nil
}

// loadCurrency returns the stored currency code, or "" when there is none.
// Stores written by older versions hold the bare code, not a JSON string.
func (p *Preferences) loadCurrency() (string, error) {
	raw, err := p.g.Raw(KeyCurrency)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		return string(raw), nil
	}
	return code, nil
}

// Settings returns the current settings.
func (p *Preferences) Settings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe registers fn to be called on every change. Calling cancel
// unregisters it.
func (p *Preferences) Subscribe(fn func(Settings)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// ToggleDarkMode flips the theme.
func (p *Preferences) ToggleDarkMode() error {
	return p.change(KeyDarkMode, func(s *Settings) any {
		s.DarkMode = !s.DarkMode
		return s.DarkMode
	})
}

// SetCurrency selects the display currency. An unknown code returns
// ErrUnknownCurrency and keeps the previous selection.
func (p *Preferences) SetCurrency(code string) error {
	c, err := LookupCurrency(code)
	if err != nil {
		return err
	}
	return p.change(KeyCurrency, func(s *Settings) any {
		s.Currency = c
		return c.Code
	})
}

// change applies fn to a copy of the settings, persists the value it returns
// under key, then publishes the new settings. Nothing changes if saving fails.
func (p *Preferences) change(key string, fn func(*Settings) any) error {
	p.mu.Lock()
	next := p.current
	value := fn(&next)
	if err := p.g.Save(key, value); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("cannot save %s: %w", key, err)
	}
	p.current = next
	subscribers := make([]func(Settings), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subscribers = append(subscribers, fn)
	}
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
	return nil
}

// Format renders a base currency amount in the selected currency.
func (p *Preferences) Format(amount Amount) string {
	return p.Settings().Currency.Format(amount)
}

var (
	prefsMu sync.Mutex
	prefs   *Preferences
)

// Init loads the process-wide preferences from g. Calling it again reloads them.
func Init(g *store.Gateway) (*Preferences, error) {
	p, err := NewPreferences(g)
	if err != nil {
		return nil, err
	}
	prefsMu.Lock()
	defer prefsMu.Unlock()
	prefs = p
	return p, nil
}

// Prefs returns the process-wide preferences. It panics if Init was never called.
func Prefs() *Preferences {
	prefsMu.Lock()
	defer prefsMu.Unlock()
	if prefs == nil {
		panic("fintrack: preferences used before Init")
	}
	return prefs
}

// Format renders a base currency amount in the process-wide selected currency.
func Format(amount Amount) string { return Prefs().Format(amount) }
