package exchange

import (
	"context"
	"fmt"

	fx "go-fx-exchange"
	"go-fx-exchange/rates"

	"github.com/shopspring/decimal"
)

// Service converts an amount of one currency into another
type Service interface {
	Convert(ctx context.Context, pair fx.CurrencyPair, amount decimal.Decimal) (decimal.Decimal, error)
}

// service converts via the shared reference currency
type service struct {
	// rates to resolve each side of a pair against the reference currency
	rates rates.Service
}

// NewService constructs a valid Service
func NewService(r rates.Service) Service {
	return &service{
		rates: r,
	}
}

var oneHundred = decimal.NewFromInt(100)

// Convert computes the cross-rate conversion of amount from pair.Main into
// pair.Money. Same-currency pairs return the amount unchanged without
// touching the rate table. The main currency's rate is resolved before the
// money currency's, so when both are unknown the main code is the one
// reported missing. No rounding is applied, formatting is the caller's
// concern.
func (s *service) Convert(ctx context.Context, pair fx.CurrencyPair, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fx.ErrNegativeAmount
	}

	if pair.Main.IsoCode == pair.Money.IsoCode {
		return amount, nil
	}

	mainRate, ok, err := s.rates.Lookup(ctx, pair.Main.IsoCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving rate [%v]: %w", pair.Main.IsoCode, err)
	}
	if !ok {
		return decimal.Decimal{}, &fx.CurrencyNotFoundError{Code: pair.Main.IsoCode}
	}

	moneyRate, ok, err := s.rates.Lookup(ctx, pair.Money.IsoCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving rate [%v]: %w", pair.Money.IsoCode, err)
	}
	if !ok {
		return decimal.Decimal{}, &fx.CurrencyNotFoundError{Code: pair.Money.IsoCode}
	}

	// Rates are quoted per 100 units of the quoted currency.
	referenceAmount := amount.Div(oneHundred).Mul(mainRate.RateToReference)
	result := referenceAmount.Div(moneyRate.RateToReference.Div(oneHundred))

	return result, nil
}
