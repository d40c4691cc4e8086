package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub repository ──────────────────────────────────────────────────────────

type stubPriceRepo struct {
	product *model.Product
	err     error
}

func (s *stubPriceRepo) Create(_ context.Context, _ *model.Product) error { return nil }

func (s *stubPriceRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.Product, error) {
	return s.product, s.err
}

func (s *stubPriceRepo) FindPopulatedByID(_ context.Context, _ uuid.UUID) (*model.Product, error) {
	return s.product, s.err
}

func (s *stubPriceRepo) FindByName(_ context.Context, _ string) (*model.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPriceRepo) Search(_ context.Context, _ repository.Predicate, _ string, _ int) ([]model.Product, error) {
	return nil, nil
}

func (s *stubPriceRepo) Update(_ context.Context, _ *model.Product) (int64, error) { return 1, nil }

func (s *stubPriceRepo) Delete(_ context.Context, _ uuid.UUID) (int64, error) { return 1, nil }

// deadRedis returns a client whose every command fails fast, forcing the
// cache-miss path.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		ReadTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newPriceEngine(repo repository.ProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPricesHandler(repo, deadRedis(), time.Minute)
	r.GET("/v1/products/:id/price", h.GetPrice)
	return r
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestGetPriceServedFromStoreOnCacheMiss(t *testing.T) {
	repo := &stubPriceRepo{product: &model.Product{
		ProductName: "DI 745",
		Amount:      decimal.RequireFromString("1200"),
		OldMRP:      decimal.RequireFromString("1000"),
	}}
	r := newPriceEngine(repo)

	w := doJSON(t, r, http.MethodGet, "/v1/products/"+uuid.NewString()+"/price", "")
	require.Equal(t, http.StatusOK, w.Code)

	var price dto.PriceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &price))
	assert.Equal(t, "DI 745", price.ProductName)
	assert.True(t, price.Amount.Equal(decimal.RequireFromString("1200")))
	assert.True(t, price.OldMRP.Equal(decimal.RequireFromString("1000")))
}

func TestGetPriceUnknownProductIs404(t *testing.T) {
	repo := &stubPriceRepo{err: gorm.ErrRecordNotFound}
	r := newPriceEngine(repo)

	w := doJSON(t, r, http.MethodGet, "/v1/products/"+uuid.NewString()+"/price", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestGetPriceStoreFailureIsOpaque500(t *testing.T) {
	// An unreachable store is not "not found": callers must see a retryable
	// status, never a terminal 404.
	repo := &stubPriceRepo{err: errBoom}
	r := newPriceEngine(repo)

	w := doJSON(t, r, http.MethodGet, "/v1/products/"+uuid.NewString()+"/price", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestGetPriceMalformedIDIs400(t *testing.T) {
	r := newPriceEngine(&stubPriceRepo{})

	w := doJSON(t, r, http.MethodGet, "/v1/products/not-a-uuid/price", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
