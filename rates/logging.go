package rates

import (
	"context"
	"time"

	fx "go-fx-exchange"

	"github.com/go-kit/log"
)

// loggingService decorates a rates.Service with logging
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

func (s *loggingService) Lookup(ctx context.Context, isoCode string) (rate fx.ExchangeRate, ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "lookup",
			"currency", isoCode,
			"found", ok,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lookup(ctx, isoCode)
}

func (s *loggingService) Supported(ctx context.Context) ([]fx.ExchangeRate, error) {
	return s.next.Supported(ctx)
}
