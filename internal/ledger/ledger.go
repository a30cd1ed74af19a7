// Package ledger holds the flat ledger: append-only credit/debit rows with
// small integer ids and link references between rows. It is a separate
// representation from the typed transaction model and feeds the dashboard
// aggregation.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the side of a ledger row.
type EntryType string

const (
	EntryCredit EntryType = "credit"
	EntryDebit  EntryType = "debit"
)

// ParseEntryType reports whether s names a valid entry type. Ledger sheets
// are hand-typed, so matching is case-insensitive.
func ParseEntryType(s string) (EntryType, bool) {
	switch t := EntryType(strings.ToLower(s)); t {
	case EntryCredit, EntryDebit:
		return t, true
	}

	return "", false
}

// FolioClass says whose books a row belongs to.
type FolioClass string

const (
	ClassInvestor FolioClass = "investor"
	ClassExpense  FolioClass = "expense"
	ClassWorker   FolioClass = "worker"
)

// ParseFolioClass reports whether s names a valid folio class.
func ParseFolioClass(s string) (FolioClass, bool) {
	switch c := FolioClass(strings.ToLower(s)); c {
	case ClassInvestor, ClassExpense, ClassWorker:
		return c, true
	}

	return "", false
}

var ErrNotFound = errors.New("ledger entry not found")

// Entry is one ledger row. Every field except the id is optional; rows are
// entered from a free-form ledger sheet and an absent value is stored as
// null, never as an empty string or zero.
//
// LinkID points at a paired row, e.g. an expense credit links back to the
// worker debit that funded it.
type Entry struct {
	ID         int64
	Type       *EntryType
	Date       *string
	Amount     *decimal.Decimal
	FolioType  *FolioClass
	Investor   *string
	Worker     *string
	ActionType *string
	LinkID     *int64
	CreatedAt  time.Time
}

func (e *Entry) is(class FolioClass, side EntryType) bool {
	return e.FolioType != nil && *e.FolioType == class &&
		e.Type != nil && *e.Type == side
}
