package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockbook/internal/dto"
	"stockbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stub service ─────────────────────────────────────────────────────────────

type stubProductService struct {
	listResp   []dto.ProductResponse
	listErr    error
	createResp *dto.ProductResponse
	createErr  error
	updateResp *dto.ProductResponse
	updateErr  error
	deleteErr  error
}

func (s *stubProductService) List(_ context.Context, _ dto.ProductFilter) ([]dto.ProductResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubProductService) Create(_ context.Context, _ dto.CreateProductRequest) (*dto.ProductResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubProductService) Update(_ context.Context, _ uuid.UUID, _ dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return s.updateResp, s.updateErr
}

func (s *stubProductService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

var errBoom = errors.New("boom")

func newTestEngine(svc service.ProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProductsHandler(svc)
	r.GET("/v1/products", h.List)
	r.POST("/v1/products", h.Create)
	r.PATCH("/v1/products/:id", h.Update)
	r.DELETE("/v1/products", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody() string {
	return `{"productName":"DI 745","amount":1000,"type":"` + uuid.NewString() +
		`","brand":"` + uuid.NewString() + `"}`
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestListReturnsBareArray(t *testing.T) {
	svc := &stubProductService{listResp: []dto.ProductResponse{{
		ID:          uuid.NewString(),
		ProductName: "DI 745",
		Amount:      decimal.RequireFromString("1000"),
	}}}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodGet, "/v1/products?search=di&limit=20", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "DI 745", got[0].ProductName)
}

func TestListStoreFailureIsOpaque500(t *testing.T) {
	svc := &stubProductService{listErr: errBoom}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodGet, "/v1/products", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestCreateSuccessEnvelope(t *testing.T) {
	svc := &stubProductService{createResp: &dto.ProductResponse{ProductName: "DI 745"}}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodPost, "/v1/products", validCreateBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var res dto.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.NotNil(t, res.Data)
}

func TestCreateDuplicateIsSoft(t *testing.T) {
	svc := &stubProductService{createErr: service.ErrDuplicateProduct}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodPost, "/v1/products", validCreateBody())
	require.Equal(t, http.StatusOK, w.Code, "duplicates are a soft outcome, not an error status")

	var res dto.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, "Product already exists", res.Error)
}

func TestCreateValidationFailure(t *testing.T) {
	svc := &stubProductService{}
	r := newTestEngine(svc)

	// productName too short, ids missing
	w := doJSON(t, r, http.MethodPost, "/v1/products", `{"productName":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateUnknownProductIs404(t *testing.T) {
	svc := &stubProductService{updateErr: service.ErrProductNotFound}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodPatch, "/v1/products/"+uuid.NewString(), `{"amount":1200}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Product not found"}`, w.Body.String())
}

func TestUpdateSuccessEnvelope(t *testing.T) {
	svc := &stubProductService{updateResp: &dto.ProductResponse{
		ProductName: "DI 745",
		Amount:      decimal.RequireFromString("1200"),
		OldMRP:      decimal.RequireFromString("1000"),
	}}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodPatch, "/v1/products/"+uuid.NewString(), `{"amount":1200}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestUpdateMalformedIDIs400(t *testing.T) {
	svc := &stubProductService{}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodPatch, "/v1/products/not-a-uuid", `{"amount":1200}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteByQueryParam(t *testing.T) {
	svc := &stubProductService{}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodDelete, "/v1/products?_id="+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestDeleteMissingIDIs400(t *testing.T) {
	svc := &stubProductService{}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodDelete, "/v1/products", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnknownProductIs404(t *testing.T) {
	svc := &stubProductService{deleteErr: service.ErrProductNotFound}
	r := newTestEngine(svc)

	w := doJSON(t, r, http.MethodDelete, "/v1/products?_id="+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
