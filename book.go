package fintrack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/etnz/fintrack/store"
)

// Names of the store slots, one per tracker.
const (
	KeyAccounts        = "bankAccounts"
	KeyGoals           = "savingGoals"
	KeyDebts           = "debts"
	KeyEnvelopes       = "envelopes"
	KeyEmergencyFund   = "emergencyFund"
	KeyPiggybanks      = "piggybanks"
	KeyLegacyPiggybank = "piggybankData"
	KeyNotes           = "futureMeNotes"
	KeyDarkMode        = "darkMode"
	KeyCurrency        = "currency"
)

// Keys lists the slots the trackers use.
var Keys = []string{
	KeyAccounts, KeyGoals, KeyDebts, KeyEnvelopes, KeyEmergencyFund,
	KeyPiggybanks, KeyNotes, KeyDarkMode, KeyCurrency,
}

// Book gives the trackers access to their records.
//
// Every tracker reads its whole list, changes it, then writes it back. Slots are
// independent: no operation writes two of them, except the one-time upgrade of
// the legacy piggybank record.
type Book struct {
	g *store.Gateway
}

// NewBook returns a Book over a store gateway.
func NewBook(g *store.Gateway) *Book { return &Book{g: g} }

// Gateway returns the underlying store gateway.
func (b *Book) Gateway() *store.Gateway { return b.g }

// load decodes a slot into v. It reports false when the slot is absent or
// malformed: a malformed record is logged and treated as absent.
func (b *Book) load(key string, v any) (bool, error) {
	err := b.g.Load(key, v)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	case errors.Is(err, store.ErrMalformed):
		log.Printf("warning, %v, using default value instead", err)
		return false, nil
	default:
		return false, err
	}
}

// GetList returns the list stored under key, or an empty list.
func GetList[T any](b *Book, key string) ([]T, error) {
	var list []T
	ok, err := b.load(key, &list)
	if err != nil || !ok {
		return nil, err
	}
	return list, nil
}

// PutList replaces the list stored under key.
func PutList[T any](b *Book, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	if err := b.g.Save(key, list); err != nil {
		return fmt.Errorf("cannot save %s: %w", key, err)
	}
	return nil
}

// seeded returns the list under key, or seeds and persists defaults when absent
// or null.
func seeded[T any](b *Book, key string, defaults func() []T) ([]T, error) {
	var list []T
	ok, err := b.load(key, &list)
	if err != nil {
		return nil, err
	}
	if ok && list != nil {
		return list, nil
	}
	if ok {
		log.Printf("warning, null record %q, using default value instead", key)
	}
	list = defaults()
	if err := PutList(b, key, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Accounts returns the bank accounts. Accounts stored without an icon get the
// default one.
func (b *Book) Accounts() ([]Account, error) {
	accounts, err := seeded(b, KeyAccounts, defaultAccounts)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Icon = AccountIcons.Resolve(accounts[i].Icon)
	}
	return accounts, nil
}

func (b *Book) SaveAccounts(accounts []Account) error { return PutList(b, KeyAccounts, accounts) }

func (b *Book) Goals() ([]Goal, error)        { return GetList[Goal](b, KeyGoals) }
func (b *Book) SaveGoals(goals []Goal) error  { return PutList(b, KeyGoals, goals) }
func (b *Book) Debts() ([]Debt, error)        { return GetList[Debt](b, KeyDebts) }
func (b *Book) SaveDebts(debts []Debt) error  { return PutList(b, KeyDebts, debts) }
func (b *Book) Notes() ([]Note, error)        { return GetList[Note](b, KeyNotes) }
func (b *Book) SaveNotes(notes []Note) error  { return PutList(b, KeyNotes, notes) }

// Envelopes returns the budget envelopes, seeded with the usual categories.
func (b *Book) Envelopes() ([]Envelope, error) {
	envelopes, err := seeded(b, KeyEnvelopes, defaultEnvelopes)
	if err != nil {
		return nil, err
	}
	for i := range envelopes {
		envelopes[i].Icon = EnvelopeIcons.Resolve(envelopes[i].Icon)
	}
	return envelopes, nil
}

func (b *Book) SaveEnvelopes(envelopes []Envelope) error {
	return PutList(b, KeyEnvelopes, envelopes)
}

// EmergencyFund returns the emergency fund, or its default value.
func (b *Book) EmergencyFund() (EmergencyFund, error) {
	fund := defaultEmergencyFund()
	ok, err := b.load(KeyEmergencyFund, &fund)
	if err != nil {
		return EmergencyFund{}, err
	}
	if !ok {
		fund = defaultEmergencyFund()
	}
	return fund, nil
}

// UpdateEmergencyFund merges a partial update into the stored fund and saves it.
func (b *Book) UpdateEmergencyFund(u FundUpdate) (EmergencyFund, error) {
	fund, err := b.EmergencyFund()
	if err != nil {
		return EmergencyFund{}, err
	}
	fund = fund.Merge(u)
	if err := b.g.Save(KeyEmergencyFund, fund); err != nil {
		return EmergencyFund{}, fmt.Errorf("cannot save %s: %w", KeyEmergencyFund, err)
	}
	return fund, nil
}

// Piggybanks returns the savings ledgers.
//
// Stores written before multiple piggybanks were supported hold a single
// ledger, either under the legacy slot or as an object in the current slot. It
// is upgraded into a one element list, saved, and the legacy slot deleted, so
// that the upgrade happens once.
func (b *Book) Piggybanks() ([]Piggybank, error) {
	var raw json.RawMessage
	ok, err := b.load(KeyPiggybanks, &raw)
	if err != nil {
		return nil, err
	}

	var legacy *legacyPiggybank
	switch {
	case ok && isObject(raw):
		legacy = new(legacyPiggybank)
		if err := json.Unmarshal(raw, legacy); err != nil {
			log.Printf("warning, malformed legacy record %q: %v, using default value instead", KeyPiggybanks, err)
			legacy = nil
		}
	case ok:
		var list []Piggybank
		err := json.Unmarshal(raw, &list)
		switch {
		case err != nil:
			log.Printf("warning, malformed record %q: %v, using default value instead", KeyPiggybanks, err)
		case list == nil:
			log.Printf("warning, null record %q, using default value instead", KeyPiggybanks)
		default:
			return b.resolvePiggybanks(list), nil
		}
	default:
		legacy = new(legacyPiggybank)
		found, err := b.load(KeyLegacyPiggybank, legacy)
		if err != nil {
			return nil, err
		}
		if !found {
			legacy = nil
		}
	}

	list := defaultPiggybanks()
	if legacy != nil {
		log.Printf("upgrading legacy piggybank record into %q", KeyPiggybanks)
		list = legacy.upgrade()
	}
	if err := PutList(b, KeyPiggybanks, list); err != nil {
		return nil, err
	}
	if err := b.g.Delete(KeyLegacyPiggybank); err != nil {
		return nil, err
	}
	return list, nil
}

func (b *Book) resolvePiggybanks(list []Piggybank) []Piggybank {
	for i := range list {
		list[i].Icon = PiggybankIcons.Resolve(list[i].Icon)
		if list[i].History == nil {
			list[i].History = []Deposit{}
		}
	}
	return list
}

func (b *Book) SavePiggybanks(list []Piggybank) error { return PutList(b, KeyPiggybanks, list) }

// isObject reports whether a raw JSON value is an object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
