package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// fetch performs r, decodes the data into T, and logs a failure under op.
func fetch[T any](ctx context.Context, d api.Doer, log logging.Logger, op string, r api.Request) (T, error) {
	v, err := api.Call[T](ctx, d, r)
	if err != nil {
		log.Error(ctx, op+" failed", "err", err)
		return v, err
	}
	return v, nil
}

// send performs r and discards the response data.
func send(ctx context.Context, d api.Doer, log logging.Logger, op string, r api.Request) error {
	if _, err := d.Do(ctx, r); err != nil {
		log.Error(ctx, op+" failed", "err", err)
		return err
	}
	return nil
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

// container holds the last value a service fetched.
type container[T any] struct {
	mu sync.RWMutex
	v  T
}

func (c *container[T]) set(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

func (c *container[T]) get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}
