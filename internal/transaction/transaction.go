package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/folio"
)

// Type classifies the direction of a money movement.
type Type string

const (
	// TypeExpense is money leaving the business, fronted by one internal party.
	TypeExpense Type = "EXPENSE"
	// TypeTransfer is money moving between two internal parties.
	TypeTransfer Type = "TRANSFER"
	// TypeInvestment is money entering the business from an external investor.
	TypeInvestment Type = "INVESTMENT"
)

// ParseType reports whether s names a valid transaction type.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeExpense, TypeTransfer, TypeInvestment:
		return Type(s), true
	}

	return "", false
}

var ErrNotFound = errors.New("transaction not found")

// ValidationError reports caller-supplied data that violates a per-type
// field rule. The message is the user-facing sentence, verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Transaction is a single money movement. Which party fields are populated
// depends on Type; Validate enforces the exact combination.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Type        Type

	// INVESTMENT only.
	InvestorID *uuid.UUID

	// EXPENSE and TRANSFER. The To pair is required for TRANSFER and
	// tolerated as a reference on EXPENSE.
	FolioTypeFrom *folio.Kind
	FolioIDFrom   *uuid.UUID
	FolioTypeTo   *folio.Kind
	FolioIDTo     *uuid.UUID

	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
