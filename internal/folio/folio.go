package folio

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a party: a staff member or an investor.
type Kind string

const (
	KindEmployee Kind = "EMPLOYEE"
	KindInvestor Kind = "INVESTOR"
)

// ParseKind reports whether s names a valid kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindEmployee, KindInvestor:
		return Kind(s), true
	}

	return "", false
}

var ErrNotFound = errors.New("folio not found")

// Folio is a named party that can be the source or destination of a
// transaction.
type Folio struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Kind      Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}
