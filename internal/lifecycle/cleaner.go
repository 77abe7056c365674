// Package lifecycle runs registered cleanup callbacks when the process is
// interrupted, then flushes the logger last.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/life-stream-dev/life-stream-go-stomp-client/internal/logger"
)

type Callable interface {
	Invoke(ctx context.Context) error
}

type Cleaner struct {
	cleaners       []Callable
	mu             sync.Mutex
	initOnce       sync.Once
	cleaning       bool
	loggerShutdown Callable
}

var cleanerInstance = &Cleaner{}

func NewCleaner() *Cleaner {
	return cleanerInstance
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		logger.Debug("Cleaner is already shutting down, ignoring new cleaner")
		return
	}
	c.cleaners = append(c.cleaners, callable)
}

// Clean runs all callbacks once, newest first is not guaranteed; callbacks
// must tolerate being invoked while the session is in any state.
func (c *Cleaner) Clean() {
	c.mu.Lock()
	if c.cleaning {
		c.mu.Unlock()
		return
	}
	c.cleaning = true
	cleanersCopy := make([]Callable, len(c.cleaners))
	copy(cleanersCopy, c.cleaners)
	c.mu.Unlock()

	logger.DebugF("Starting cleanup of %d registered functions", len(cleanersCopy))

	var errs []error
	for i, callable := range cleanersCopy {
		func(idx int, cb Callable) {
			logger.DebugF("Invoking cleaner #%d (%T)", idx+1, cb)
			timeoutCtx, cancelFunc := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelFunc()
			if err := cb.Invoke(timeoutCtx); err != nil {
				logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, cb, err)
				errs = append(errs, err)
			}
		}(i, callable)
	}

	if len(errs) > 0 {
		logger.ErrorF("%d errors occurred during cleanup:", len(errs))
		for i, err := range errs {
			logger.ErrorF("Error %d: %v", i+1, err)
		}
	} else {
		logger.Debug("All cleaners executed successfully")
	}

	if c.loggerShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
		}
	}
}

// Init installs the interrupt handler. The logger shutdown callback always
// runs last so every cleaner can still log.
func (c *Cleaner) Init(loggerShutdown Callable) {
	c.initOnce.Do(func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

		c.loggerShutdown = loggerShutdown

		go func() {
			<-ctx.Done()
			stop()
			logger.Info("Received interrupt signal, shutting down")
			c.Clean()
			syscall.Exit(0)
		}()
	})
}
