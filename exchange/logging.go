package exchange

import (
	"context"
	"time"

	fx "go-fx-exchange"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, pair fx.CurrencyPair, amount decimal.Decimal) (converted decimal.Decimal, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"pair", pair,
			"amount", amount,
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, pair, amount)
}
