// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
	"github.com/carterperez-dev/moments-matrimony/internal/middleware"
)

// adminParam is shared by GET /admin/{email} and PATCH /admin/{id}; chi
// needs one name per pattern position.
const adminParam = "subject"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
		r.Patch("/admin/{"+adminParam+"}", h.PromoteToAdmin)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/", h.List)
			r.Get("/admin/{"+adminParam+"}", h.CheckAdmin)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, users)
}

func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, adminParam)

	admin, err := h.service.IsAdmin(
		r.Context(),
		email,
		middleware.GetEmail(r.Context()),
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, AdminStatusResponse{Admin: admin})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	if result.Outcome == OutcomeExists {
		core.OK(w, result)
		return
	}

	core.Created(w, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PromoteToAdmin(
		r.Context(),
		chi.URLParam(r, adminParam),
	)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, result)
}
