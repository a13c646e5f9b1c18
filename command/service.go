package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fx "go-fx-exchange"
	"go-fx-exchange/exchange"

	"github.com/shopspring/decimal"
)

// Service processes one raw command line into a Result
type Service interface {
	Process(ctx context.Context, input string) fx.Result
}

// service parses Exchange commands and drives the converter. It holds no
// state of its own, every call is a pure function of its input and the
// shared converter.
type service struct {
	converter exchange.Service
}

// NewService constructs a valid Service
func NewService(converter exchange.Service) Service {
	return &service{
		converter: converter,
	}
}

// Process parses input of the form "Exchange <currency_pair> <amount>" and
// returns the outcome as a Result. Process never fails: every error from the
// layers below is mapped to a Result variant here and nowhere else.
func (s *service) Process(ctx context.Context, input string) fx.Result {
	if strings.TrimSpace(input) == "" {
		return fx.InvalidFormat{Message: "Input cannot be empty"}
	}

	parts := strings.Fields(input)
	if len(parts) != 3 {
		return fx.InvalidFormat{Message: "Invalid command format. Use: Exchange <currency_pair> <amount>"}
	}

	if !strings.EqualFold(parts[0], "Exchange") {
		return fx.InvalidFormat{Message: "Command must start with 'Exchange'"}
	}

	pair, err := fx.ParsePair(parts[1])
	if err != nil {
		var formatErr *fx.FormatError
		if errors.As(err, &formatErr) {
			return fx.InvalidFormat{Message: formatErr.Message}
		}
		return fx.GeneralError{Message: err.Error()}
	}

	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fx.InvalidFormat{
			Message: fmt.Sprintf("Invalid amount '%v'. Please provide a valid decimal number.", parts[2]),
		}
	}

	converted, err := s.converter.Convert(ctx, pair, amount)
	if err != nil {
		var notFound *fx.CurrencyNotFoundError
		if errors.As(err, &notFound) {
			return fx.CurrencyNotFound{Code: notFound.Code}
		}
		return fx.GeneralError{Message: err.Error()}
	}

	return fx.Success{
		OriginalAmount:  amount,
		MainCurrency:    pair.Main.IsoCode,
		ConvertedAmount: converted,
		MoneyCurrency:   pair.Money.IsoCode,
	}
}
