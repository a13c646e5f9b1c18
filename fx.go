package fx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount rejects conversions of negative amounts.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// FormatError malformed currency pair text
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// CurrencyNotFoundError a referenced currency has no rate entry
type CurrencyNotFoundError struct {
	Code string
}

func (e *CurrencyNotFoundError) Error() string {
	return fmt.Sprintf("currency not found: %v", e.Code)
}

// Currency a currency identified by its ISO code.
// Equality is by ISO code only, the name is display-only.
type Currency struct {
	IsoCode string
	Name    string
}

// NewCurrency constructs a valid Currency. The ISO code is normalized to uppercase.
func NewCurrency(isoCode string, name string) (Currency, error) {
	if strings.TrimSpace(isoCode) == "" {
		return Currency{}, errors.New("iso code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Currency{}, errors.New("currency name cannot be empty")
	}
	return Currency{
		IsoCode: strings.ToUpper(isoCode),
		Name:    name,
	}, nil
}

// Equal reports whether both currencies carry the same ISO code
func (c Currency) Equal(other Currency) bool {
	return c.IsoCode == other.IsoCode
}

func (c Currency) String() string {
	return c.IsoCode
}

// CurrencyPair an ordered pair: convert an amount of Main into Money
type CurrencyPair struct {
	Main  Currency
	Money Currency
}

// ParsePair parses text of the form XXX/YYY into a CurrencyPair.
// Both sides are trimmed and upper-cased. At parse time the code is the only
// known fact about a currency, so it doubles as the display name.
func ParsePair(text string) (CurrencyPair, error) {
	if strings.TrimSpace(text) == "" {
		return CurrencyPair{}, &FormatError{Message: "Currency pair cannot be empty"}
	}

	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return CurrencyPair{}, &FormatError{
			Message: fmt.Sprintf("Invalid currency pair format: %v. Expected format: XXX/YYY", text),
		}
	}

	mainIso := strings.ToUpper(strings.TrimSpace(parts[0]))
	moneyIso := strings.ToUpper(strings.TrimSpace(parts[1]))
	if mainIso == "" || moneyIso == "" {
		return CurrencyPair{}, &FormatError{
			Message: fmt.Sprintf("Invalid currency pair format: %v", text),
		}
	}

	main, err := NewCurrency(mainIso, mainIso)
	if err != nil {
		return CurrencyPair{}, err
	}
	money, err := NewCurrency(moneyIso, moneyIso)
	if err != nil {
		return CurrencyPair{}, err
	}

	return CurrencyPair{Main: main, Money: money}, nil
}

// String renders the pair as MAIN/MONEY. Parsing the output reproduces the pair.
func (p CurrencyPair) String() string {
	return fmt.Sprintf("%v/%v", p.Main.IsoCode, p.Money.IsoCode)
}

// ExchangeRate how many reference-currency units buy 100 units of Currency
type ExchangeRate struct {
	Currency        Currency
	RateToReference decimal.Decimal
}

// NewExchangeRate constructs a valid ExchangeRate. The rate must be strictly positive.
func NewExchangeRate(currency Currency, rateToReference decimal.Decimal) (ExchangeRate, error) {
	if !rateToReference.IsPositive() {
		return ExchangeRate{}, errors.New("exchange rate must be positive")
	}
	return ExchangeRate{
		Currency:        currency,
		RateToReference: rateToReference,
	}, nil
}
