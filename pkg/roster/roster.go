// Package roster provides the list of known players to user pickers. The
// list is a cold read: it is cached until the host invalidates it, which
// it does whenever a new player connects.
package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// User is one roster entry.
type User struct {
	ID       int64
	Name     string
	JoinedAt time.Time
}

// Source returns the roster ordered by display name.
type Source interface {
	Users(ctx context.Context) ([]User, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]User, error)

func (f SourceFunc) Users(ctx context.Context) ([]User, error) { return f(ctx) }

// Cache memoises a Source until Invalidate is called. Concurrent misses
// share one load. It is safe for concurrent use.
type Cache struct {
	src Source

	mu    sync.Mutex
	users []User
	valid bool
	gen   uint64

	group singleflight.Group
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Users returns the cached roster, loading it on a miss. A failed load
// is not cached; the empty result and the error are returned.
func (c *Cache) Users(ctx context.Context) ([]User, error) {
	c.mu.Lock()
	if c.valid {
		out := clone(c.users)
		c.mu.Unlock()
		return out, nil
	}
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do("users", func() (any, error) {
		users, err := c.src.Users(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// an Invalidate during the load wins
		if c.gen == gen {
			c.users, c.valid = users, true
		}
		c.mu.Unlock()
		return users, nil
	})
	if err != nil {
		slog.Debug("roster load failed", "err", err)
		return []User{}, err
	}
	return clone(v.([]User)), nil
}

// Invalidate drops the cached roster.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users, c.valid = nil, false
	c.gen++
	c.group.Forget("users")
}

func clone(users []User) []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}
