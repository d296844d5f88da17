package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUnit = errors.New("invalid unit")
	ErrInvalidFiat = errors.New("invalid fiat")
)

// Unit is a bitcoin display denomination. The zero value is not a valid unit;
// values are obtained from the constants or ParseUnit.
type Unit uint8

const (
	UnitSat Unit = iota + 1
	UnitBit
	UnitBTC
)

type unitInfo struct {
	code        string
	display     string
	displayLong string
	denominator int64 // satoshis per whole unit
}

var units = map[Unit]unitInfo{
	UnitSat: {code: "sat", display: "SAT", displayLong: "Satoshi", denominator: 1},
	UnitBit: {code: "bit", display: "bits", displayLong: "Bits", denominator: 100},
	UnitBTC: {code: "btc", display: "BTC", displayLong: "Bitcoin", denominator: 100_000_000},
}

// Fiat is a supported fiat currency. The zero value is not a valid currency.
type Fiat uint8

const (
	FiatUSD Fiat = iota + 1
	FiatEUR
	FiatGBP
)

type fiatInfo struct {
	code   string
	symbol string
	name   string
}

var fiats = map[Fiat]fiatInfo{
	FiatUSD: {code: "usd", symbol: "$", name: "US Dollar"},
	FiatEUR: {code: "eur", symbol: "€", name: "Euro"},
	FiatGBP: {code: "gbp", symbol: "£", name: "British Pound"},
}

const (
	DefaultUnit = UnitBTC
	DefaultFiat = FiatUSD
)

// ParseUnit converts a raw unit code ("sat", "bit", "btc") into a Unit.
func ParseUnit(raw string) (Unit, error) {
	for u, info := range units {
		if info.code == raw {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidUnit, raw)
}

// Units lists every supported unit in ascending denomination.
func Units() []Unit {
	return []Unit{UnitSat, UnitBit, UnitBTC}
}

func (u Unit) Valid() bool {
	_, ok := units[u]
	return ok
}

func (u Unit) String() string {
	return units[u].code
}

// Display returns the short label shown next to amounts.
func (u Unit) Display() string {
	return units[u].display
}

func (u Unit) DisplayLong() string {
	return units[u].displayLong
}

// Denominator returns the number of satoshis in one whole unit.
func (u Unit) Denominator() int64 {
	return units[u].denominator
}

func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidUnit, uint8(u))
	}
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseFiat converts a raw lower-case currency code into a Fiat.
func ParseFiat(raw string) (Fiat, error) {
	for f, info := range fiats {
		if info.code == raw {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidFiat, raw)
}

// Fiats lists every supported fiat currency.
func Fiats() []Fiat {
	return []Fiat{FiatUSD, FiatEUR, FiatGBP}
}

func (f Fiat) Valid() bool {
	_, ok := fiats[f]
	return ok
}

func (f Fiat) String() string {
	return fiats[f].code
}

// Symbol returns the currency sign, e.g. "€".
func (f Fiat) Symbol() string {
	return fiats[f].symbol
}

func (f Fiat) Name() string {
	return fiats[f].name
}

func (f Fiat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidFiat, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Fiat) UnmarshalText(text []byte) error {
	parsed, err := ParseFiat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Settings holds the user-configurable wallet preferences.
type Settings struct {
	Unit      Unit `json:"unit"`
	Fiat      Fiat `json:"fiat"`
	Restoring bool `json:"restoring"`
	Autopilot bool `json:"autopilot"`
}

// DefaultSettings returns the preferences a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Unit:      DefaultUnit,
		Fiat:      DefaultFiat,
		Restoring: false,
		Autopilot: true,
	}
}
