// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type IntentRequestBody struct {
	Price float64 `json:"price"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/create-payment-intent", h.CreateIntent)
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body IntentRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), body.Price)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, IntentResponse{ClientSecret: secret})
}
