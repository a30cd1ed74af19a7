package folio

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/folio"
	"github.com/khata-app/khata/internal/http/respond"
)

const (
	msgMissingFields = "Name, email, and phone are required"
	msgInvalidKind   = "Invalid employee type. Must be EMPLOYEE or INVESTOR"
	msgEmptyUpdate   = "At least one field is required"
	msgNotFound      = "Folio not found"
	msgDeleted       = "Folio deleted successfully"
)

type Handler struct {
	svc *folio.Service
}

func NewHandler(svc *folio.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createFolioRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createFolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		respond.Error(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	// An absent or unrecognized kind quietly becomes INVESTOR on create.
	// Updates are strict; see update below.
	kind, ok := folio.ParseKind(req.Type)
	if !ok {
		kind = folio.KindInvestor
	}

	f, err := h.svc.Create(r.Context(), folio.CreateParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Kind:  kind,
	})
	if err != nil {
		slog.Error("failed to create folio", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(f))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	folios, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list folios", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(folios))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid folio id")
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, folio.ErrNotFound) {
			slog.Info("folio not found", "id", id)
			respond.Error(w, http.StatusNotFound, msgNotFound)

			return
		}

		slog.Error("failed to get folio", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(f))
}

type updateFolioRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Type  *string `json:"type"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid folio id")
		return
	}

	var req updateFolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := folio.UpdateParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if req.Type != nil {
		kind, ok := folio.ParseKind(*req.Type)
		if !ok {
			respond.Error(w, http.StatusBadRequest, msgInvalidKind)
			return
		}

		params.Kind = &kind
	}

	if params.Empty() {
		respond.Error(w, http.StatusBadRequest, msgEmptyUpdate)
		return
	}

	f, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		if errors.Is(err, folio.ErrNotFound) {
			slog.Info("folio not found", "id", id)
			respond.Error(w, http.StatusNotFound, msgNotFound)

			return
		}

		slog.Error("failed to update folio", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(f))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid folio id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, folio.ErrNotFound) {
			slog.Info("folio not found", "id", id)
			respond.Error(w, http.StatusNotFound, msgNotFound)

			return
		}

		slog.Error("failed to delete folio", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.Message(w, http.StatusOK, msgDeleted)
}
