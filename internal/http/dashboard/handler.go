package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/http/respond"
	"github.com/khata-app/khata/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/aggregate", h.aggregate)
}

type summaryResponse struct {
	TotalInvestment       decimal.Decimal            `json:"totalInvestment"`
	InvestmentsByInvestor map[string]decimal.Decimal `json:"investmentsByInvestor"`
	TotalExpense          decimal.Decimal            `json:"totalExpense"`
	ExpensesBySpender     map[string]decimal.Decimal `json:"expensesBySpender"`
	NetBalanceByWorker    map[string]decimal.Decimal `json:"netBalanceByWorker"`
}

// aggregate recomputes the dashboard summary from the full ledger on
// every request. It only fails when the ledger cannot be read at all;
// individual malformed rows never surface here.
func (h *Handler) aggregate(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summarize(r.Context())
	if err != nil {
		slog.Error("failed to aggregate ledger", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	respond.JSON(w, http.StatusOK, summaryResponse{
		TotalInvestment:       summary.TotalInvestment,
		InvestmentsByInvestor: summary.InvestmentsByInvestor,
		TotalExpense:          summary.TotalExpense,
		ExpensesBySpender:     summary.ExpensesBySpender,
		NetBalanceByWorker:    summary.NetBalanceByWorker,
	})
}
