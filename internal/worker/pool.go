package worker

import (
	"context"
	"encoding/json"
	"time"

	"stockbook/internal/dto"
	"stockbook/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueuePriceChange = "jobs:pricechange"

	// recentFeedSize caps the price-change feed; older entries fall off.
	recentFeedSize = 50
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueuePriceChange pushes a price-change event to Redis. Best effort from
// the caller's perspective — the catalog write has already committed.
func (d *Dispatcher) EnqueuePriceChange(ctx context.Context, change dto.PriceChange) error {
	return d.enqueue(ctx, QueuePriceChange, "pricechange", change)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the job queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueuePriceChange).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			// result[0] is the queue name, result[1] the payload
			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.Error().Err(err).Msg("malformed job payload, dropping")
				continue
			}
			if err := handlePriceChange(ctx, rdb, job.Payload); err != nil {
				log.Error().Err(err).Str("type", job.Type).Msg("job failed")
			}
		}
	}
}

// handlePriceChange records the event on the capped recent-changes feed and
// drops the stale cached price projection for the product.
func handlePriceChange(ctx context.Context, rdb *redis.Client, payload json.RawMessage) error {
	var change dto.PriceChange
	if err := json.Unmarshal(payload, &change); err != nil {
		return err
	}

	if err := rdb.LPush(ctx, infra.PriceChangesKey, []byte(payload)).Err(); err != nil {
		return err
	}
	if err := rdb.LTrim(ctx, infra.PriceChangesKey, 0, recentFeedSize-1).Err(); err != nil {
		return err
	}

	// The service already invalidated synchronously; this catches entries
	// re-cached between the write and this job.
	_ = rdb.Del(ctx, infra.PriceCacheKey(change.ProductID)).Err()

	log.Info().
		Str("product_id", change.ProductID).
		Str("old_amount", change.OldAmount.String()).
		Str("new_amount", change.NewAmount.String()).
		Msg("price change recorded")
	return nil
}
