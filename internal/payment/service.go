// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"log/slog"
)

const methodCard = "card"

type Service struct {
	gateway  Gateway
	currency string
	logger   *slog.Logger
}

func NewService(gateway Gateway, currency string, logger *slog.Logger) *Service {
	return &Service{
		gateway:  gateway,
		currency: currency,
		logger:   logger,
	}
}

// MinorUnits converts a decimal price to cents, truncating toward zero.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent makes exactly one attempt against the processor and keeps
// no local record of it.
func (s *Service) CreateIntent(
	ctx context.Context,
	price float64,
) (string, error) {
	amount := MinorUnits(price)
	s.logger.DebugContext(ctx, "creating payment intent",
		"amount", amount,
		"currency", s.currency,
	)

	return s.gateway.CreateIntent(ctx, IntentRequest{
		Amount:      amount,
		Currency:    s.currency,
		MethodTypes: []string{methodCard},
	})
}
