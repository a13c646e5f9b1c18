package fx

import "github.com/shopspring/decimal"

// Result is the closed outcome of processing one command. Exactly one of
// Success, InvalidFormat, CurrencyNotFound or GeneralError implements it, and
// each variant carries only its own payload. Consumers branch with a type
// switch.
type Result interface {
	isResult()
}

// Success a completed conversion
type Success struct {
	OriginalAmount  decimal.Decimal
	MainCurrency    string
	ConvertedAmount decimal.Decimal
	MoneyCurrency   string
}

// InvalidFormat the command text could not be parsed
type InvalidFormat struct {
	Message string
}

// CurrencyNotFound a currency in the command has no rate entry
type CurrencyNotFound struct {
	Code string
}

// GeneralError any failure not covered by the other variants
type GeneralError struct {
	Message string
}

func (Success) isResult()          {}
func (InvalidFormat) isResult()    {}
func (CurrencyNotFound) isResult() {}
func (GeneralError) isResult()     {}
