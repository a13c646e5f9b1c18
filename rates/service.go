package rates

import (
	"context"
	"strings"

	fx "go-fx-exchange"

	"github.com/shopspring/decimal"
)

// Service looks up exchange rates against the reference currency.
// Absence of a rate is a normal outcome reported through the bool, not an
// error. The error return is reserved for sources that can actually fail.
type Service interface {
	Lookup(ctx context.Context, isoCode string) (fx.ExchangeRate, bool, error)
	Supported(ctx context.Context) ([]fx.ExchangeRate, error)
}

// service a fixed in-memory rate table keyed by uppercase ISO code
type service struct {
	// rates maps an ISO code to its rate entry
	rates map[string]fx.ExchangeRate

	// order the listing order of supported currencies
	order []string
}

// entry one (code, name, rate) tuple used to seed the table
type entry struct {
	isoCode string
	name    string
	rate    string
}

// Rates are quoted as the amount of reference currency (DKK) required to
// purchase 100 units of the named currency. DKK itself is the pivot at
// exactly 100.
var entries = []entry{
	{"EUR", "Euro", "743.94"},
	{"USD", "Amerikanske dollar", "663.11"},
	{"GBP", "Britiske pund", "852.85"},
	{"SEK", "Svenske kroner", "76.10"},
	{"NOK", "Norske kroner", "78.40"},
	{"CHF", "Schweiziske franc", "683.58"},
	{"JPY", "Japanske yen", "5.9740"},
	{"DKK", "Danske kroner", "100.00"},
}

// NewService constructs the rate table Service seeded with the fixed set of
// supported currencies.
func NewService() (Service, error) {
	s := &service{
		rates: map[string]fx.ExchangeRate{},
	}
	for _, e := range entries {
		currency, err := fx.NewCurrency(e.isoCode, e.name)
		if err != nil {
			return nil, err
		}
		rate, err := fx.NewExchangeRate(currency, decimal.RequireFromString(e.rate))
		if err != nil {
			return nil, err
		}
		s.rates[currency.IsoCode] = rate
		s.order = append(s.order, currency.IsoCode)
	}
	return s, nil
}

// Lookup finds the rate entry for an ISO code. Lookup is case-insensitive.
func (s *service) Lookup(_ context.Context, isoCode string) (fx.ExchangeRate, bool, error) {
	rate, ok := s.rates[strings.ToUpper(isoCode)]
	return rate, ok, nil
}

// Supported returns every rate entry in the table's fixed listing order.
func (s *service) Supported(_ context.Context) ([]fx.ExchangeRate, error) {
	supported := make([]fx.ExchangeRate, 0, len(s.order))
	for _, code := range s.order {
		supported = append(supported, s.rates[code])
	}
	return supported, nil
}
