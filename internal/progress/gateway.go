package progress

import (
	"context"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Keys under which profile data is stored.
const (
	KeyCompletedTests = "completed_tests"
	KeyUsername       = "username"
)

// Config holds gateway settings.
type Config struct {
	// QueueSize bounds the number of pending increments.
	QueueSize int

	// OpTimeout bounds each background read/write.
	OpTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		QueueSize: 32,
		OpTimeout: 5 * time.Second,
	}
}

// Gateway is the best-effort access point for the completed-tests counter
// and the username. Storage failures are logged and never returned.
type Gateway struct {
	kv      KV
	logger  *log.Logger
	cfg     Config
	pending chan struct{}
	done    sync.WaitGroup

	closeOnce sync.Once
	// counterMu serializes every read-modify-write of the counter with
	// resets, so a reset is never overwritten by an increment in flight.
	counterMu sync.Mutex
	mu        sync.RWMutex
	closed    bool
	onChange  func(count int)
}

// NewGateway creates a Gateway and starts its increment worker. A nil
// logger discards log output.
func NewGateway(kv KV, logger *log.Logger, cfg Config) *Gateway {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = DefaultConfig().OpTimeout
	}
	g := &Gateway{
		kv:      kv,
		logger:  logger,
		cfg:     cfg,
		pending: make(chan struct{}, cfg.QueueSize),
	}
	g.done.Add(1)
	go g.processLoop()
	return g
}

// IncrementCompletedCount schedules counter+1 and returns immediately.
// The increment is dropped (and logged) if the queue is full or the gateway
// is closed.
func (g *Gateway) IncrementCompletedCount() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.closed {
		g.logger.Printf("warning: completed-tests increment dropped: gateway closed")
		return
	}
	select {
	case g.pending <- struct{}{}:
	default:
		g.logger.Printf("warning: completed-tests increment dropped: queue full")
	}
}

// ReadCompletedCount returns the stored counter, or 0 if it is unset or
// cannot be read.
func (g *Gateway) ReadCompletedCount(ctx context.Context) int {
	n, err := g.readCount(ctx)
	if err != nil {
		g.logger.Printf("warning: failed to read completed tests: %v", err)
		return 0
	}
	return n
}

// ResetCompletedCount sets the counter to 0. It waits for an increment
// already in progress to finish first.
func (g *Gateway) ResetCompletedCount(ctx context.Context) {
	g.counterMu.Lock()
	defer g.counterMu.Unlock()
	if err := g.kv.Set(ctx, KeyCompletedTests, "0"); err != nil {
		g.logger.Printf("warning: failed to reset completed tests: %v", err)
	}
}

// Username returns the stored username and whether one has been set.
func (g *Gateway) Username(ctx context.Context) (string, bool) {
	v, ok, err := g.kv.Get(ctx, KeyUsername)
	if err != nil {
		g.logger.Printf("warning: failed to read username: %v", err)
		return "", false
	}
	return v, ok
}

// SetUsername stores name after trimming surrounding whitespace.
func (g *Gateway) SetUsername(ctx context.Context, name string) {
	if err := g.kv.Set(ctx, KeyUsername, strings.TrimSpace(name)); err != nil {
		g.logger.Printf("warning: failed to save username: %v", err)
	}
}

// Close stops accepting increments and waits for queued ones to finish.
func (g *Gateway) Close() {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		close(g.pending)
		g.mu.Unlock()
		g.done.Wait()
	})
}

// OnChange registers fn to run on the worker goroutine after each
// successful background increment, with the new count. fn must not call
// back into the gateway's increment path.
func (g *Gateway) OnChange(fn func(count int)) {
	g.mu.Lock()
	g.onChange = fn
	g.mu.Unlock()
}

// processLoop applies increments one at a time so read-modify-write
// cycles never interleave.
func (g *Gateway) processLoop() {
	defer g.done.Done()
	for range g.pending {
		g.increment()
	}
}

func (g *Gateway) increment() {
	ctx, cancel := context.WithTimeout(context.Background(), g.cfg.OpTimeout)
	defer cancel()

	g.counterMu.Lock()
	n, err := g.readCount(ctx)
	if err == nil {
		err = g.kv.Set(ctx, KeyCompletedTests, strconv.Itoa(n+1))
	}
	g.counterMu.Unlock()
	if err != nil {
		g.logger.Printf("warning: failed to increment completed tests: %v", err)
		return
	}

	g.mu.RLock()
	fn := g.onChange
	g.mu.RUnlock()
	if fn != nil {
		fn(n + 1)
	}
}

// readCount returns the stored counter. Absent or unparsable values read
// as 0; only storage errors are returned.
func (g *Gateway) readCount(ctx context.Context) (int, error) {
	v, ok, err := g.kv.Get(ctx, KeyCompletedTests)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		g.logger.Printf("warning: ignoring malformed completed tests value %q", v)
		return 0, nil
	}
	return n, nil
}
