package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(NewMemoryRepository(), nil)
	handler := NewHandler(logger, service)

	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateReturns201WithLocation(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"Laptop","description":"thin","price":1299.99,"stock":15}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/products/1", rec.Header().Get("Location"))

	var view struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, int64(1), view.ID)
	require.Equal(t, "Laptop", view.Name)
	require.Equal(t, 1299.99, view.Price)
	require.Equal(t, 15, view.Stock)

	// Timestamps are internal and never serialized.
	require.NotContains(t, rec.Body.String(), "createdAt")
	require.NotContains(t, rec.Body.String(), "updatedAt")
}

func TestCreateValidationReturnsFieldMap(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"","price":-10,"stock":-5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Len(t, problem.Errors, 3)
	require.NotEmpty(t, problem.Errors["name"])
	require.NotEmpty(t, problem.Errors["price"])
	require.NotEmpty(t, problem.Errors["stock"])
}

func TestCreateMalformedBody(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsUnknownField(t *testing.T) {
	router := newTestRouter()

	// A misspelled key must fail loudly, not silently drop the field.
	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"A","price":10,"stok":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMissingReturnsEmpty404(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/products/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, rec.Body.Len())
}

func TestGetInvalidIDReturns400(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/products/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReturnsArray(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	doJSON(t, router, http.MethodPost, "/products", `{"name":"A","price":10,"stock":1}`)
	doJSON(t, router, http.MethodPost, "/products", `{"name":"B","price":20,"stock":2}`)

	rec = doJSON(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
}

func TestUpdatePartialPatchOverHTTP(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/products", `{"name":"Laptop","price":1299.99,"stock":15}`)

	rec := doJSON(t, router, http.MethodPut, "/products/1", `{"price":999.99}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Laptop"`)
	require.Contains(t, rec.Body.String(), `"price":999.99`)
	require.Contains(t, rec.Body.String(), `"stock":15`)
}

func TestUpdateMissingReturns404AfterValidation(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/products/999", `{"price":50}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// An invalid patch surfaces its field errors even for a missing id.
	rec = doJSON(t, router, http.MethodPut, "/products/999", `{"price":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"price"`)
}

func TestDeleteReturns204ThenNotFound(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/products", `{"name":"A","price":10,"stock":1}`)

	rec := doJSON(t, router, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Zero(t, rec.Body.Len())

	rec = doJSON(t, router, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPriceSerializesTwoDecimals(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"Plain","price":10,"stock":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"price":10.00`)
}
