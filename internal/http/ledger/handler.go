package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/http/respond"
	"github.com/khata-app/khata/internal/importer"
	"github.com/khata-app/khata/internal/ledger"
)

const (
	msgInvalidEntryType  = "Invalid entry type. Must be credit or debit"
	msgInvalidFolioClass = "Invalid folio type. Must be investor, expense, or worker"
	msgNotFound          = "Ledger entry not found"
	msgDeleted           = "Ledger entry deleted successfully"
)

type Handler struct {
	svc       *ledger.Service
	importSvc *importer.Service
}

func NewHandler(svc *ledger.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
	r.Post("/import", h.importSheet)
}

type createEntryRequest struct {
	Type       *string          `json:"type"`
	Date       *string          `json:"date"`
	Amount     *decimal.Decimal `json:"amount"`
	FolioType  *string          `json:"folioType"`
	Investor   *string          `json:"investor"`
	Worker     *string          `json:"worker"`
	ActionType *string          `json:"actionType"`
	LinkID     *int64           `json:"linkId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := ledger.AppendParams{
		Date:       emptyToNil(req.Date),
		Amount:     req.Amount,
		Investor:   emptyToNil(req.Investor),
		Worker:     emptyToNil(req.Worker),
		ActionType: emptyToNil(req.ActionType),
		LinkID:     req.LinkID,
	}

	if s := emptyToNil(req.Type); s != nil {
		t, ok := ledger.ParseEntryType(*s)
		if !ok {
			respond.Error(w, http.StatusBadRequest, msgInvalidEntryType)
			return
		}

		params.Type = &t
	}

	if s := emptyToNil(req.FolioType); s != nil {
		c, ok := ledger.ParseFolioClass(*s)
		if !ok {
			respond.Error(w, http.StatusBadRequest, msgInvalidFolioClass)
			return
		}

		params.FolioType = &c
	}

	e, err := h.svc.Append(r.Context(), params)
	if err != nil {
		slog.Error("failed to append ledger entry", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter ledger.ListFilter

	if s := q.Get("id"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			filter.ID = &id
		}
	}

	if s := q.Get("type"); s != "" {
		if t, ok := ledger.ParseEntryType(s); ok {
			filter.Type = &t
		}
	}

	if s := q.Get("date"); s != "" {
		filter.Date = &s
	}

	if s := q.Get("amount"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			filter.Amount = &d
		}
	}

	if s := q.Get("folioType"); s != "" {
		if c, ok := ledger.ParseFolioClass(s); ok {
			filter.FolioType = &c
		}
	}

	if s := q.Get("investor"); s != "" {
		filter.Investor = &s
	}

	if s := q.Get("worker"); s != "" {
		filter.Worker = &s
	}

	if s := q.Get("actionType"); s != "" {
		filter.ActionType = &s
	}

	if s := q.Get("linkId"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			filter.LinkID = &id
		}
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	entries, pagination, err := h.svc.ListPage(r.Context(), filter, page, limit)
	if err != nil {
		slog.Error("failed to list ledger entries", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusOK, toPageResponse(entries, pagination))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid ledger entry id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			slog.Info("ledger entry not found", "id", id)
			respond.Error(w, http.StatusNotFound, msgNotFound)

			return
		}

		slog.Error("failed to delete ledger entry", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.Message(w, http.StatusOK, msgDeleted)
}

// importSheet accepts a multipart upload of a ledger sheet and appends
// the parsed rows in sheet order.
func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.svc.AppendBatch(r.Context(), params)
	if err != nil {
		slog.Error("ledger import failed mid-batch", "written", len(entries), "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Imported: len(entries),
		Entries:  toResponseList(entries),
	})
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
