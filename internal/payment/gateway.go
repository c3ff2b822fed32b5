// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

// IntentRequest is what gets forwarded to the processor.
type IntentRequest struct {
	Amount      int64
	Currency    string
	MethodTypes []string
}

// Gateway creates payment intents and returns their client secret.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (string, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateIntent(
	ctx context.Context,
	req IntentRequest,
) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice(req.MethodTypes),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return "", fmt.Errorf(
				"create payment intent: %w: %s (%s)",
				core.ErrPaymentProvider,
				stripeErr.Msg,
				stripeErr.Code,
			)
		}
		return "", fmt.Errorf("create payment intent: %w: %w", core.ErrPaymentProvider, err)
	}

	return intent.ClientSecret, nil
}

var _ Gateway = (*StripeGateway)(nil)
