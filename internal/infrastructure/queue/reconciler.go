package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	maxAttempts    = 5
	retryBackoff   = 2 * time.Second
)

// StockAdjuster is the slice of the movie repository the reconciler needs.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, id string, delta int) error
}

// StockReconciler retries stock increments that failed after a return was
// already committed. Movie ids are sharded to a fixed set of workers by FNV
// hash, so increments for the same movie are applied in order.
type StockReconciler struct {
	workers []chan string
	movies  StockAdjuster
	log     zerolog.Logger
}

// NewStockReconciler creates a StockReconciler with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewStockReconciler(numWorkers int, movies StockAdjuster, log zerolog.Logger) *StockReconciler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &StockReconciler{
		workers: make([]chan string, numWorkers),
		movies:  movies,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan string, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *StockReconciler) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// EnqueueIncrement schedules a +1 stock adjustment for the movie. The call
// is non-blocking up to channelBuffer capacity.
func (r *StockReconciler) EnqueueIncrement(movieID string) {
	r.workers[r.shardIndex(movieID)] <- movieID
}

// shardIndex maps a movie id deterministically to a worker index.
func (r *StockReconciler) shardIndex(movieID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(movieID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *StockReconciler) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case movieID, ok := <-ch:
			if !ok {
				return
			}
			r.reconcile(ctx, id, movieID)
		}
	}
}

// reconcile retries the increment with a fixed backoff. After maxAttempts
// the drift is logged for manual repair; giving up is safe because the
// rental itself is already consistent.
func (r *StockReconciler) reconcile(ctx context.Context, workerID int, movieID string) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := r.movies.AdjustStock(ctx, movieID, 1); err == nil {
			r.log.Info().
				Str("movie_id", movieID).
				Int("attempt", attempt).
				Int("worker_id", workerID).
				Msg("stock increment reconciled")
			return
		} else if attempt == maxAttempts {
			r.log.Error().Err(err).
				Str("movie_id", movieID).
				Int("worker_id", workerID).
				Msg("stock reconciliation gave up, manual repair required")
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryBackoff):
		}
	}
}
