package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/pkg/metrics"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

var (
	// ErrQueueFull is returned by TryEnqueue when the target worker is saturated.
	ErrQueueFull = errors.New("webhook queue full")
	// ErrClosed is returned by TryEnqueue once Shutdown has begun.
	ErrClosed = errors.New("webhook dispatcher closed")
)

// Dispatcher routes webhook notifications to a fixed set of workers using
// consistent hashing on the resource URL, so notifications about the same
// resource are processed in arrival order.
type Dispatcher struct {
	workers []chan ports.WebhookEventInput
	service ports.WebhookService
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.WebhookService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.WebhookEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WebhookEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Shutdown has drained their queues.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.runWorker(ctx, i, ch)
		}()
	}
}

// Shutdown stops intake and waits for queued notifications to be processed.
// If ctx expires first, in-flight work is cancelled and ctx.Err() is returned.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if d.cancel != nil {
			d.cancel()
		}
		return nil
	case <-ctx.Done():
		if d.cancel != nil {
			d.cancel()
		}
		<-done
		return ctx.Err()
	}
}

// TryEnqueue hands a notification to its worker without blocking.
func (d *Dispatcher) TryEnqueue(event ports.WebhookEventInput) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	idx := d.shardIndex(event.ResourceURL)
	select {
	case d.workers[idx] <- event:
		metrics.WebhooksQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a resource URL deterministically to a worker index.
func (d *Dispatcher) shardIndex(resourceURL string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resourceURL))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WebhookEventInput) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.WebhooksQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			start := time.Now()
			err := d.service.Process(ctx, event)
			outcome := event.ResourceType
			if err != nil {
				outcome = "error"
				d.log.Error().Err(err).
					Str("resource_url", event.ResourceURL).
					Int("worker_id", id).
					Msg("webhook processing failed")
			}
			metrics.WebhookProcessingDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		}
	}
}
