// AngelaMos | 2026
// service_test.go

package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type memoryRepo struct {
	invoices []core.Document
	err      error
}

func (m *memoryRepo) List(context.Context) ([]core.Document, error) {
	return m.invoices, m.err
}

func (m *memoryRepo) Create(_ context.Context, doc core.Document) (core.InsertResult, error) {
	id := primitive.NewObjectID()
	stored := core.Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	m.invoices = append(m.invoices, stored)
	return core.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *memoryRepo) FirstByEmail(_ context.Context, email string) (core.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, inv := range m.invoices {
		if inv[fieldEmail] == email {
			return inv, nil
		}
	}
	return nil, core.ErrNotFound
}

func TestPremiumStatus(t *testing.T) {
	repo := &memoryRepo{invoices: []core.Document{
		{fieldEmail: "granted@x.com", "price": 10, fieldOrder: OrderGranted},
		{fieldEmail: "pending@x.com", "price": 10},
		{fieldEmail: "twice@x.com", "price": 10},
		{fieldEmail: "twice@x.com", "price": 10, fieldOrder: OrderGranted},
		{fieldEmail: "odd@x.com", "price": "10", fieldOrder: true},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		email string
		want  bool
	}{
		{"granted@x.com", true},
		{"pending@x.com", false},
		{"nobody@x.com", false},
		{"twice@x.com", false},
		{"odd@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got, err := svc.PremiumStatus(ctx, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPremiumStatusStoreFailure(t *testing.T) {
	svc := NewService(&memoryRepo{err: core.StoreError("find invoice", errors.New("timeout"))})

	_, err := svc.PremiumStatus(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, core.ErrDatabase)
}

func TestPremiumStatusRoutes(t *testing.T) {
	repo := &memoryRepo{invoices: []core.Document{{fieldEmail: "a@x.com", fieldOrder: OrderGranted}}}
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)

	for _, path := range []string{"/invoice/premium/a@x.com", "/invoice/request/a@x.com"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp PremiumStatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Premium, path)
	}
}

func TestCreateInvoiceRoute(t *testing.T) {
	repo := &memoryRepo{}
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/invoice",
		strings.NewReader(`{"email":"a@x.com","price":"250","transactionId":"pi_1"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res core.InsertResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Acknowledged)

	require.Len(t, repo.invoices, 1)
	assert.Equal(t, "250", repo.invoices[0]["price"])
	assert.Equal(t, "pi_1", repo.invoices[0]["transactionId"])
}
