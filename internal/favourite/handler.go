// AngelaMos | 2026
// handler.go

package favourite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/favourite", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := core.DecodeDocument(r.Body)
	if err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), doc)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, result)
}
