package transaction_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khata-app/khata/internal/folio"
	"github.com/khata-app/khata/internal/transaction"
)

func kindPtr(k folio.Kind) *folio.Kind { return &k }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func validInvestment() *transaction.Transaction {
	return &transaction.Transaction{
		Amount:      decimal.NewFromInt(1000),
		Description: "Seed round",
		Type:        transaction.TypeInvestment,
		InvestorID:  uuidPtr(uuid.New()),
	}
}

func validExpense() *transaction.Transaction {
	return &transaction.Transaction{
		Amount:        decimal.NewFromInt(50),
		Description:   "lunch",
		Type:          transaction.TypeExpense,
		FolioTypeFrom: kindPtr(folio.KindEmployee),
		FolioIDFrom:   uuidPtr(uuid.New()),
	}
}

func validTransfer() *transaction.Transaction {
	return &transaction.Transaction{
		Amount:        decimal.NewFromInt(200),
		Description:   "float top-up",
		Type:          transaction.TypeTransfer,
		FolioTypeFrom: kindPtr(folio.KindInvestor),
		FolioIDFrom:   uuidPtr(uuid.New()),
		FolioTypeTo:   kindPtr(folio.KindEmployee),
		FolioIDTo:     uuidPtr(uuid.New()),
	}
}

func TestValidate_Investment(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, transaction.Validate(validInvestment()))
	})

	t.Run("MissingInvestorID", func(t *testing.T) {
		tx := validInvestment()
		tx.InvestorID = nil

		err := transaction.Validate(tx)
		require.Error(t, err)
		assert.EqualError(t, err, "Amount, description, and investorId are required for investment transactions")
	})

	t.Run("StrayPartyFields", func(t *testing.T) {
		for name, mutate := range map[string]func(*transaction.Transaction){
			"FolioTypeFrom": func(tx *transaction.Transaction) { tx.FolioTypeFrom = kindPtr(folio.KindEmployee) },
			"FolioTypeTo":   func(tx *transaction.Transaction) { tx.FolioTypeTo = kindPtr(folio.KindInvestor) },
			"FolioIDFrom":   func(tx *transaction.Transaction) { tx.FolioIDFrom = uuidPtr(uuid.New()) },
			"FolioIDTo":     func(tx *transaction.Transaction) { tx.FolioIDTo = uuidPtr(uuid.New()) },
		} {
			t.Run(name, func(t *testing.T) {
				tx := validInvestment()
				mutate(tx)

				err := transaction.Validate(tx)
				require.Error(t, err)
				assert.EqualError(t, err, "Investment transactions must not have folioTypeFrom, folioTypeTo, folioIdFrom, or folioIdTo")
			})
		}
	})
}

func TestValidate_Expense(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, transaction.Validate(validExpense()))
	})

	t.Run("ToFieldsTolerated", func(t *testing.T) {
		// The To pair is allowed as a reference on expenses.
		tx := validExpense()
		tx.FolioTypeTo = kindPtr(folio.KindInvestor)
		tx.FolioIDTo = uuidPtr(uuid.New())

		assert.NoError(t, transaction.Validate(tx))
	})

	t.Run("MissingFromPair", func(t *testing.T) {
		for name, mutate := range map[string]func(*transaction.Transaction){
			"NoFolioTypeFrom": func(tx *transaction.Transaction) { tx.FolioTypeFrom = nil },
			"NoFolioIDFrom":   func(tx *transaction.Transaction) { tx.FolioIDFrom = nil },
			"NoAmount":        func(tx *transaction.Transaction) { tx.Amount = decimal.Zero },
			"NoDescription":   func(tx *transaction.Transaction) { tx.Description = "" },
		} {
			t.Run(name, func(t *testing.T) {
				tx := validExpense()
				mutate(tx)

				err := transaction.Validate(tx)
				require.Error(t, err)
				assert.EqualError(t, err, "Amount, description, folioTypeFrom, and folioIdFrom are required for expense transactions")
			})
		}
	})

	t.Run("BadKind", func(t *testing.T) {
		tx := validExpense()
		tx.FolioTypeFrom = kindPtr(folio.Kind("MANAGER"))

		err := transaction.Validate(tx)
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid folio type. Must be EMPLOYEE or INVESTOR")
	})
}

func TestValidate_Transfer(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, transaction.Validate(validTransfer()))
	})

	t.Run("MissingAnyPartyField", func(t *testing.T) {
		for name, mutate := range map[string]func(*transaction.Transaction){
			"NoFolioTypeFrom": func(tx *transaction.Transaction) { tx.FolioTypeFrom = nil },
			"NoFolioIDFrom":   func(tx *transaction.Transaction) { tx.FolioIDFrom = nil },
			"NoFolioTypeTo":   func(tx *transaction.Transaction) { tx.FolioTypeTo = nil },
			"NoFolioIDTo":     func(tx *transaction.Transaction) { tx.FolioIDTo = nil },
		} {
			t.Run(name, func(t *testing.T) {
				tx := validTransfer()
				mutate(tx)

				err := transaction.Validate(tx)
				require.Error(t, err)
				assert.EqualError(t, err, "Amount, description, folioTypeFrom, folioIdFrom, folioTypeTo, and folioIdTo are required for transfer transactions")
			})
		}
	})

	t.Run("SelfTransfer", func(t *testing.T) {
		id := uuid.New()

		tx := validTransfer()
		tx.FolioTypeFrom = kindPtr(folio.KindEmployee)
		tx.FolioTypeTo = kindPtr(folio.KindEmployee)
		tx.FolioIDFrom = uuidPtr(id)
		tx.FolioIDTo = uuidPtr(id)

		err := transaction.Validate(tx)
		require.Error(t, err)
		assert.EqualError(t, err, "Transfer transactions must be between two different parties")
	})

	t.Run("SameIDDifferentKindAllowed", func(t *testing.T) {
		// Only the (kind, id) pair has to differ; ids are unique per
		// collection, not across collections.
		id := uuid.New()

		tx := validTransfer()
		tx.FolioTypeFrom = kindPtr(folio.KindEmployee)
		tx.FolioTypeTo = kindPtr(folio.KindInvestor)
		tx.FolioIDFrom = uuidPtr(id)
		tx.FolioIDTo = uuidPtr(id)

		assert.NoError(t, transaction.Validate(tx))
	})
}

func TestValidate_CrossType(t *testing.T) {
	t.Run("UnknownType", func(t *testing.T) {
		tx := validExpense()
		tx.Type = transaction.Type("REFUND")

		err := transaction.Validate(tx)
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid transaction type. Must be EXPENSE, TRANSFER, or INVESTMENT")
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		tx := validExpense()
		tx.Amount = decimal.NewFromInt(-1)

		err := transaction.Validate(tx)
		require.Error(t, err)
		assert.EqualError(t, err, "Amount cannot be negative")
	})

	t.Run("ValidationErrorType", func(t *testing.T) {
		tx := validExpense()
		tx.FolioIDFrom = nil

		var verr *transaction.ValidationError

		assert.ErrorAs(t, transaction.Validate(tx), &verr)
	})
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"EXPENSE", "TRANSFER", "INVESTMENT"} {
		got, ok := transaction.ParseType(valid)
		assert.True(t, ok)
		assert.Equal(t, transaction.Type(valid), got)
	}

	for _, invalid := range []string{"", "expense", "REFUND"} {
		_, ok := transaction.ParseType(invalid)
		assert.False(t, ok, invalid)
	}
}
