package transaction

import "github.com/khata-app/khata/internal/folio"

// User-facing validation messages. These sentences are part of the API
// contract; clients match on them.
const (
	msgInvalidType = "Invalid transaction type. Must be EXPENSE, TRANSFER, or INVESTMENT"
	msgInvalidKind = "Invalid folio type. Must be EMPLOYEE or INVESTOR"

	msgNegativeAmount = "Amount cannot be negative"

	msgInvestmentRequired  = "Amount, description, and investorId are required for investment transactions"
	msgInvestmentForbidden = "Investment transactions must not have folioTypeFrom, folioTypeTo, folioIdFrom, or folioIdTo"

	msgExpenseRequired = "Amount, description, folioTypeFrom, and folioIdFrom are required for expense transactions"

	msgTransferRequired = "Amount, description, folioTypeFrom, folioIdFrom, folioTypeTo, and folioIdTo are required for transfer transactions"
	msgSelfTransfer     = "Transfer transactions must be between two different parties"
)

// Validate checks a candidate transaction against the per-type field rules.
// It is a pure function: safe to call concurrently, touches nothing.
//
// A zero amount counts as missing, matching the entry form where the field
// starts empty.
func Validate(tx *Transaction) error {
	if tx.Amount.IsNegative() {
		return &ValidationError{Message: msgNegativeAmount}
	}

	hasBase := !tx.Amount.IsZero() && tx.Description != ""

	switch tx.Type {
	case TypeInvestment:
		if !hasBase || tx.InvestorID == nil {
			return &ValidationError{Message: msgInvestmentRequired}
		}

		if tx.FolioTypeFrom != nil || tx.FolioTypeTo != nil || tx.FolioIDFrom != nil || tx.FolioIDTo != nil {
			return &ValidationError{Message: msgInvestmentForbidden}
		}

	case TypeExpense:
		if !hasBase || tx.FolioTypeFrom == nil || tx.FolioIDFrom == nil {
			return &ValidationError{Message: msgExpenseRequired}
		}

		if !validKind(*tx.FolioTypeFrom) {
			return &ValidationError{Message: msgInvalidKind}
		}

	case TypeTransfer:
		if !hasBase || tx.FolioTypeFrom == nil || tx.FolioIDFrom == nil || tx.FolioTypeTo == nil || tx.FolioIDTo == nil {
			return &ValidationError{Message: msgTransferRequired}
		}

		if !validKind(*tx.FolioTypeFrom) || !validKind(*tx.FolioTypeTo) {
			return &ValidationError{Message: msgInvalidKind}
		}

		if *tx.FolioTypeFrom == *tx.FolioTypeTo && *tx.FolioIDFrom == *tx.FolioIDTo {
			return &ValidationError{Message: msgSelfTransfer}
		}

	default:
		return &ValidationError{Message: msgInvalidType}
	}

	return nil
}

func validKind(k folio.Kind) bool {
	return k == folio.KindEmployee || k == folio.KindInvestor
}
