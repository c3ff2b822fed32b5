// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type fakeGateway struct {
	calls []IntentRequest
	err   error
}

func (f *fakeGateway) CreateIntent(_ context.Context, req IntentRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("pi_%d_secret_abc", req.Amount), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{10, 1000},
		{12.5, 1250},
		{0, 0},
		{0.015, 1},
		{19.99, 1998},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price), "price %v", tt.price)
	}
}

func TestCreateIntentForwardsRequest(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, "usd", discardLogger())

	secret, err := svc.CreateIntent(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "pi_2500_secret_abc", secret)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, IntentRequest{
		Amount:      2500,
		Currency:    "usd",
		MethodTypes: []string{"card"},
	}, gw.calls[0])
}

func TestCreateIntentRoute(t *testing.T) {
	tests := []struct {
		name   string
		gw     *fakeGateway
		body   string
		status int
	}{
		{"ok", &fakeGateway{}, `{"price":12.5}`, http.StatusOK},
		{"provider down", &fakeGateway{err: fmt.Errorf("create payment intent: %w", core.ErrPaymentProvider)}, `{"price":12.5}`, http.StatusBadGateway},
		{"bad body", &fakeGateway{}, `{"price":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			NewHandler(NewService(tt.gw, "usd", discardLogger())).RegisterRoutes(r)

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}

			var resp IntentResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "pi_1250_secret_abc", resp.ClientSecret)
		})
	}
}

func TestProviderFailureCode(t *testing.T) {
	r := chi.NewRouter()
	gw := &fakeGateway{err: fmt.Errorf("create payment intent: %w", core.ErrPaymentProvider)}
	NewHandler(NewService(gw, "usd", discardLogger())).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":1}`)))

	var body core.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, core.CodePaymentProvider, body.Error.Code)
	assert.Len(t, gw.calls, 1)
}
