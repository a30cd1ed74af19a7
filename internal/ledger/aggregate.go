package ledger

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard view of a tenant's ledger.
type Summary struct {
	TotalInvestment       decimal.Decimal
	InvestmentsByInvestor map[string]decimal.Decimal
	TotalExpense          decimal.Decimal
	ExpensesBySpender     map[string]decimal.Decimal
	NetBalanceByWorker    map[string]decimal.Decimal
}

// Aggregate folds the full ledger into the dashboard summary in a single
// pass plus link resolution. It never fails: a malformed or unlinkable row
// contributes nothing and the rest of the ledger still aggregates.
func Aggregate(entries []*Entry) Summary {
	byID := make(map[int64]*Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	summary := Summary{
		InvestmentsByInvestor: make(map[string]decimal.Decimal),
		ExpensesBySpender:     make(map[string]decimal.Decimal),
		NetBalanceByWorker:    make(map[string]decimal.Decimal),
	}

	type workerTotals struct {
		credit decimal.Decimal
		debit  decimal.Decimal
	}

	workers := make(map[string]workerTotals)

	for _, e := range entries {
		switch {
		case e.is(ClassInvestor, EntryCredit):
			if e.Investor == nil {
				continue
			}

			amount := amountOrZero(e)
			summary.InvestmentsByInvestor[*e.Investor] = summary.InvestmentsByInvestor[*e.Investor].Add(amount)
			summary.TotalInvestment = summary.TotalInvestment.Add(amount)

		case e.is(ClassExpense, EntryCredit):
			linked, ok := resolveLink(e, byID)
			if !ok {
				slog.Debug("skipping expense row with unresolvable link",
					"entry_id", e.ID, "link_id", e.LinkID)
				continue
			}

			spender := "Unknown"

			switch {
			case linked.Worker != nil:
				spender = *linked.Worker
			case linked.Investor != nil:
				spender = *linked.Investor
			}

			// The amount is taken from the linked row, the one that
			// actually funded the expense.
			amount := amountOrZero(linked)
			summary.ExpensesBySpender[spender] = summary.ExpensesBySpender[spender].Add(amount)
			summary.TotalExpense = summary.TotalExpense.Add(amount)

		case e.FolioType != nil && *e.FolioType == ClassWorker:
			if e.Worker == nil || e.Type == nil {
				continue
			}

			amount := amountOrZero(e)

			// Rows entered without an amount borrow it from the linked row.
			if e.Amount == nil {
				if linked, ok := resolveLink(e, byID); ok && linked.Amount != nil {
					amount = *linked.Amount
				}
			}

			totals := workers[*e.Worker]

			switch *e.Type {
			case EntryCredit:
				totals.credit = totals.credit.Add(amount)
			case EntryDebit:
				totals.debit = totals.debit.Add(amount)
			}

			workers[*e.Worker] = totals
		}
	}

	for worker, totals := range workers {
		summary.NetBalanceByWorker[worker] = totals.credit.Sub(totals.debit)
	}

	return summary
}

func resolveLink(e *Entry, byID map[int64]*Entry) (*Entry, bool) {
	if e.LinkID == nil {
		return nil, false
	}

	linked, ok := byID[*e.LinkID]

	return linked, ok
}

func amountOrZero(e *Entry) decimal.Decimal {
	if e.Amount == nil {
		return decimal.Zero
	}

	return *e.Amount
}
