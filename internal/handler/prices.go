package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stockbook/internal/apierror"
	"stockbook/internal/dto"
	"stockbook/internal/infra"
	"stockbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// PricesHandler serves the cached price lookup and the recent-changes feed.
// Lookups are read-only with no side effects beyond cache population.
type PricesHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewPricesHandler(repo repository.ProductRepository, rdb *redis.Client, ttl time.Duration) *PricesHandler {
	return &PricesHandler{repo: repo, rdb: rdb, ttl: ttl}
}

// GetPrice GET /v1/products/:id/price
func (h *PricesHandler) GetPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := infra.PriceCacheKey(id.String())

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query the store. Only a genuinely missing row is a 404;
	// a store outage must stay retryable for callers.
	product, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Internal Server Error"))
		return
	}

	resp := dto.PriceResponse{
		ProductName: product.ProductName,
		Amount:      product.Amount,
		OldMRP:      product.OldMRP,
		Discont:     product.Discont,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, h.ttl).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// RecentChanges GET /v1/products/price-changes
// Returns the capped feed maintained by the worker pool, newest first.
func (h *PricesHandler) RecentChanges(c *gin.Context) {
	entries, err := h.rdb.LRange(c.Request.Context(), infra.PriceChangesKey, 0, -1).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Internal Server Error"))
		return
	}
	changes := make([]dto.PriceChange, 0, len(entries))
	for _, raw := range entries {
		var change dto.PriceChange
		if err := json.Unmarshal([]byte(raw), &change); err != nil {
			continue // skip malformed feed entries
		}
		changes = append(changes, change)
	}
	c.JSON(http.StatusOK, changes)
}
