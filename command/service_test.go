package command

import (
	"context"
	"errors"
	"testing"

	fx "go-fx-exchange"
	"go-fx-exchange/exchange"
	"go-fx-exchange/rates"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newProcessor(t *testing.T) Service {
	rateService, err := rates.NewService()
	assert.NoError(t, err)
	return NewService(exchange.NewService(rateService))
}

func TestService_Process_Success(t *testing.T) {
	processor := newProcessor(t)

	result := processor.Process(context.Background(), "Exchange EUR/USD 100")

	success, ok := result.(fx.Success)
	assert.True(t, ok, "expected Success, got %T", result)
	assert.Equal(t, "EUR", success.MainCurrency)
	assert.Equal(t, "USD", success.MoneyCurrency)
	assert.Equal(t, "100.00", success.OriginalAmount.StringFixed(2))
	assert.Equal(t, "112.19", success.ConvertedAmount.StringFixed(2))
}

func TestService_Process_SameCurrency(t *testing.T) {
	processor := newProcessor(t)

	result := processor.Process(context.Background(), "Exchange EUR/EUR 100")

	success, ok := result.(fx.Success)
	assert.True(t, ok, "expected Success, got %T", result)
	assert.True(t, success.ConvertedAmount.Equal(decimal.NewFromInt(100)))
}

func TestService_Process_InvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"empty input",
			"",
			"Input cannot be empty",
		},
		{
			"whitespace only",
			"   \t ",
			"Input cannot be empty",
		},
		{
			"too few tokens",
			"Exchange EUR/USD",
			"Invalid command format. Use: Exchange <currency_pair> <amount>",
		},
		{
			"too many tokens",
			"Exchange EUR/USD 100 200",
			"Invalid command format. Use: Exchange <currency_pair> <amount>",
		},
		{
			"wrong keyword",
			"Convert EUR/USD 100",
			"Command must start with 'Exchange'",
		},
		{
			"malformed pair",
			"Exchange EURUSD 100",
			"Invalid currency pair format: EURUSD. Expected format: XXX/YYY",
		},
		{
			"pair missing one side",
			"Exchange EUR/ 100",
			"Invalid currency pair format: EUR/",
		},
		{
			"non-numeric amount",
			"Exchange EUR/USD abc",
			"Invalid amount 'abc'. Please provide a valid decimal number.",
		},
	}

	processor := newProcessor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processor.Process(context.Background(), tt.input)
			invalid, ok := result.(fx.InvalidFormat)
			assert.True(t, ok, "expected InvalidFormat, got %T", result)
			assert.Equal(t, tt.want, invalid.Message)
		})
	}
}

func TestService_Process_WhitespaceInsensitive(t *testing.T) {
	processor := newProcessor(t)
	ctx := context.Background()

	want := processor.Process(ctx, "Exchange EUR/USD 100")

	for _, input := range []string{
		"Exchange  EUR/USD  100",
		"  Exchange EUR/USD 100",
		"Exchange EUR/USD 100  ",
		"\tExchange\tEUR/USD\t100",
	} {
		assert.Equal(t, want, processor.Process(ctx, input), "input %q", input)
	}
}

func TestService_Process_KeywordCaseInsensitive(t *testing.T) {
	processor := newProcessor(t)

	for _, input := range []string{"exchange EUR/USD 100", "EXCHANGE EUR/USD 100", "eXcHaNgE EUR/USD 100"} {
		result := processor.Process(context.Background(), input)
		_, ok := result.(fx.Success)
		assert.True(t, ok, "expected Success for %q, got %T", input, result)
	}
}

func TestService_Process_CurrencyNotFound(t *testing.T) {
	processor := newProcessor(t)

	result := processor.Process(context.Background(), "Exchange XYZ/USD 100")

	notFound, ok := result.(fx.CurrencyNotFound)
	assert.True(t, ok, "expected CurrencyNotFound, got %T", result)
	assert.Equal(t, "XYZ", notFound.Code)

	// main side is resolved first, so its code wins when both are unknown
	result = processor.Process(context.Background(), "Exchange ABC/XYZ 100")
	notFound, ok = result.(fx.CurrencyNotFound)
	assert.True(t, ok, "expected CurrencyNotFound, got %T", result)
	assert.Equal(t, "ABC", notFound.Code)
}

func TestService_Process_NegativeAmount(t *testing.T) {
	processor := newProcessor(t)

	result := processor.Process(context.Background(), "Exchange EUR/USD -5")

	general, ok := result.(fx.GeneralError)
	assert.True(t, ok, "expected GeneralError, got %T", result)
	assert.Equal(t, "amount cannot be negative", general.Message)
}

// brokenConverter stands in for a converter whose rate source fails
type brokenConverter struct{}

func (brokenConverter) Convert(_ context.Context, _ fx.CurrencyPair, _ decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Decimal{}, errors.New("rate source unavailable")
}

func TestService_Process_GeneralError(t *testing.T) {
	processor := NewService(brokenConverter{})

	result := processor.Process(context.Background(), "Exchange EUR/USD 100")

	general, ok := result.(fx.GeneralError)
	assert.True(t, ok, "expected GeneralError, got %T", result)
	assert.Equal(t, "rate source unavailable", general.Message)
}

func TestService_Process_Idempotent(t *testing.T) {
	processor := newProcessor(t)
	ctx := context.Background()

	first := processor.Process(ctx, "Exchange GBP/SEK 25")
	second := processor.Process(ctx, "Exchange GBP/SEK 25")
	assert.Equal(t, first, second)
}
