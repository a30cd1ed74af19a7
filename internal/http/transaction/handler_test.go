package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	txhttp "github.com/khata-app/khata/internal/http/transaction"
	"github.com/khata-app/khata/internal/transaction"
)

func newRouter(repo transaction.Repository) http.Handler {
	router := chi.NewRouter()
	txhttp.NewHandler(transaction.NewService(repo)).Routes(router)

	return router
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestCreate_Investment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	body := `{
		"amount": 1500.50,
		"description": "Seed capital",
		"type": "INVESTMENT",
		"investorId": "` + uuid.NewString() + `",
		"date": "2025-01-05"
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "INVESTMENT", decodeBody(t, rec)["type"])
}

func TestCreate_ExpenseMissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Validation fails before the store is touched.
	repo := transaction.NewMockRepository(ctrl)

	body := `{
		"amount": 50,
		"description": "Cement bags",
		"type": "EXPENSE",
		"folioTypeFrom": "EMPLOYEE"
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Amount, description, folioTypeFrom, and folioIdFrom are required for expense transactions",
		decodeBody(t, rec)["error"])
}

func TestCreate_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	body := `{"amount": 10, "description": "x", "type": "REFUND"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Invalid transaction type. Must be EXPENSE, TRANSFER, or INVESTMENT",
		decodeBody(t, rec)["error"])
}

func TestList_Paginated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CountTransactions(gomock.Any(), gomock.Any()).Return(45, nil)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Equal(t, 20, filter.Limit)
			assert.Equal(t, 20, filter.Offset)

			return []*transaction.Transaction{{ID: uuid.New(), Type: transaction.TypeInvestment}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/?page=2&limit=20", nil)
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(45), pagination["totalItems"])
	assert.Equal(t, float64(20), pagination["itemsPerPage"])
}

func TestList_Unpaginated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			assert.Zero(t, filter.Limit)
			require.NotNil(t, filter.Type)
			assert.Equal(t, transaction.TypeExpense, *filter.Type)

			return nil, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/?transactionType=EXPENSE", nil)
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_MergedPatchRevalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	investorID := uuid.New()
	stored := &transaction.Transaction{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(500),
		Description: "Seed capital",
		Type:        transaction.TypeInvestment,
		InvestorID:  &investorID,
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().GetTransaction(gomock.Any(), stored.ID).Return(stored, nil)

	// Flipping the type to EXPENSE strands the stale investorId and
	// leaves the source fields missing.
	body := `{"type": "EXPENSE"}`
	req := httptest.NewRequest(http.MethodPut, "/"+stored.ID.String(), strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Amount, description, folioTypeFrom, and folioIdFrom are required for expense transactions",
		decodeBody(t, rec)["error"])
}

func TestDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().DeleteTransaction(gomock.Any(), gomock.Any()).Return(transaction.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transaction not found", decodeBody(t, rec)["error"])
}
