package folio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khata-app/khata/internal/folio"
	foliohttp "github.com/khata-app/khata/internal/http/folio"
)

func newRouter(repo folio.Repository) http.Handler {
	router := chi.NewRouter()
	foliohttp.NewHandler(folio.NewService(repo)).Routes(router)

	return router
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body
}

func TestCreate_DefaultsToInvestor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := folio.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateFolio(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *folio.Folio) error {
			assert.Equal(t, folio.KindInvestor, f.Kind)
			f.ID = uuid.New()

			return nil
		})

	body := `{"name":"Anup","email":"anup@example.com","phone":"9800000000"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "INVESTOR", decodeBody(t, rec)["type"])
}

func TestCreate_UnrecognizedKindDefaultsToInvestor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := folio.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateFolio(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *folio.Folio) error {
			assert.Equal(t, folio.KindInvestor, f.Kind)
			return nil
		})

	body := `{"name":"Anup","email":"anup@example.com","phone":"9800000000","type":"MANAGER"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreate_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectation set: the store must stay untouched.
	repo := folio.NewMockRepository(ctrl)

	body := `{"name":"Anup","email":"anup@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email, and phone are required", decodeBody(t, rec)["error"])
}

func TestUpdate_RejectsInvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := folio.NewMockRepository(ctrl)

	body := `{"type":"MANAGER"}`
	req := httptest.NewRequest(http.MethodPut, "/"+uuid.NewString(), strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid employee type. Must be EMPLOYEE or INVESTOR", decodeBody(t, rec)["error"])
}

func TestUpdate_EmptyPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := folio.NewMockRepository(ctrl)

	req := httptest.NewRequest(http.MethodPut, "/"+uuid.NewString(), strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one field is required", decodeBody(t, rec)["error"])
}

func TestUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := folio.NewMockRepository(ctrl)
	repo.EXPECT().GetFolio(gomock.Any(), gomock.Any()).Return(nil, folio.ErrNotFound)

	body := `{"name":"Anup"}`
	req := httptest.NewRequest(http.MethodPut, "/"+uuid.NewString(), strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Folio not found", decodeBody(t, rec)["error"])
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := folio.NewMockRepository(ctrl)
		repo.EXPECT().DeleteFolio(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Folio deleted successfully", decodeBody(t, rec)["message"])
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := folio.NewMockRepository(ctrl)
		repo.EXPECT().DeleteFolio(gomock.Any(), gomock.Any()).Return(folio.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()

		newRouter(repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Folio not found", decodeBody(t, rec)["error"])
	})
}
