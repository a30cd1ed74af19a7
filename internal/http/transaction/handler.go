package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/folio"
	"github.com/khata-app/khata/internal/http/respond"
	"github.com/khata-app/khata/internal/transaction"
)

const (
	msgNotFound = "Transaction not found"
	msgDeleted  = "Transaction deleted successfully"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	InvestorID    *uuid.UUID      `json:"investorId"`
	FolioTypeFrom *string         `json:"folioTypeFrom"`
	FolioIDFrom   *uuid.UUID      `json:"folioIdFrom"`
	FolioTypeTo   *string         `json:"folioTypeTo"`
	FolioIDTo     *uuid.UUID      `json:"folioIdTo"`
	Date          string          `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		// The kind strings pass through unparsed; the validator owns
		// every enum message.
		Type:          transaction.Type(req.Type),
		InvestorID:    req.InvestorID,
		FolioTypeFrom: kindOf(req.FolioTypeFrom),
		FolioIDFrom:   req.FolioIDFrom,
		FolioTypeTo:   kindOf(req.FolioTypeTo),
		FolioIDTo:     req.FolioIDTo,
		Date:          date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := transaction.ListFilter{
		FolioIDFrom: uuidParam(q.Get("folioIdFrom")),
		FolioIDTo:   uuidParam(q.Get("folioIdTo")),
	}

	if s := q.Get("folioTypeFrom"); s != "" {
		if k, ok := folio.ParseKind(s); ok {
			filter.FolioTypeFrom = &k
		}
	}

	if s := q.Get("folioTypeTo"); s != "" {
		if k, ok := folio.ParseKind(s); ok {
			filter.FolioTypeTo = &k
		}
	}

	if s := q.Get("transactionType"); s != "" {
		if t, ok := transaction.ParseType(s); ok {
			filter.Type = &t
		}
	}

	if s := q.Get("dateFrom"); s != "" {
		if t, err := parseDate(s); err == nil {
			filter.DateFrom = &t
		}
	}

	if s := q.Get("dateTo"); s != "" {
		if t, err := parseDate(s); err == nil {
			filter.DateTo = &t
		}
	}

	// Without paging params the full filtered listing comes back as a
	// plain array.
	pageStr, limitStr := q.Get("page"), q.Get("limit")
	if pageStr == "" && limitStr == "" {
		txs, err := h.svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponseList(txs))

		return
	}

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	txs, pagination, err := h.svc.ListPage(r.Context(), filter, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPageResponse(txs, pagination))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Description   *string          `json:"description"`
	Type          *string          `json:"type"`
	InvestorID    *uuid.UUID       `json:"investorId"`
	FolioTypeFrom *string          `json:"folioTypeFrom"`
	FolioIDFrom   *uuid.UUID       `json:"folioIdFrom"`
	FolioTypeTo   *string          `json:"folioTypeTo"`
	FolioIDTo     *uuid.UUID       `json:"folioIdTo"`
	Date          *string          `json:"date"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := transaction.UpdateParams{
		Amount:        req.Amount,
		Description:   req.Description,
		InvestorID:    req.InvestorID,
		FolioTypeFrom: kindOf(req.FolioTypeFrom),
		FolioIDFrom:   req.FolioIDFrom,
		FolioTypeTo:   kindOf(req.FolioTypeTo),
		FolioIDTo:     req.FolioIDTo,
	}

	if req.Type != nil {
		t := transaction.Type(*req.Type)
		params.Type = &t
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid date format")
			return
		}

		params.Date = &date
	}

	tx, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, msgDeleted)
}

// writeError maps service errors onto the API's three outcomes: rule
// violations are 400 with the validator's sentence, a missing record is
// 404, anything else is a 500 with the detail kept server-side.
func writeError(w http.ResponseWriter, err error) {
	var vErr *transaction.ValidationError
	if errors.As(err, &vErr) {
		respond.Error(w, http.StatusBadRequest, vErr.Message)
		return
	}

	if errors.Is(err, transaction.ErrNotFound) {
		slog.Info("transaction not found")
		respond.Error(w, http.StatusNotFound, msgNotFound)

		return
	}

	slog.Error("transaction request failed", "error", err)
	respond.Error(w, http.StatusInternalServerError, "Internal server error")
}

// parseDate accepts a bare date or a full RFC 3339 timestamp. An empty
// value defaults to now, matching the entry form's behavior.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}

func kindOf(s *string) *folio.Kind {
	if s == nil || *s == "" {
		return nil
	}

	k := folio.Kind(*s)

	return &k
}

func uuidParam(s string) *uuid.UUID {
	if s == "" {
		return nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}

	return &id
}
