package command

import (
	"context"
	"time"

	fx "go-fx-exchange"

	"github.com/go-kit/log"
)

// loggingService decorates a command.Service with logging
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

func (s *loggingService) Process(ctx context.Context, input string) (result fx.Result) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "process",
			"input", input,
			"outcome", outcome(result),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Process(ctx, input)
}

// outcome names a Result variant for log output
func outcome(result fx.Result) string {
	switch result.(type) {
	case fx.Success:
		return "success"
	case fx.InvalidFormat:
		return "invalid_format"
	case fx.CurrencyNotFound:
		return "currency_not_found"
	case fx.GeneralError:
		return "general_error"
	default:
		return "unknown"
	}
}
