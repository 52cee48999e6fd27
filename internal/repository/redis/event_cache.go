// Package redis wraps an event repository with a Redis read-through cache.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"eventsapi/internal/domain"
	"eventsapi/internal/monitoring"
)

const keyPrefix = "event:"

// EventKey returns the cache key of an event.
func EventKey(id int) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// cachedEvent keeps the timestamps that Event hides from JSON.
type cachedEvent struct {
	*domain.Event
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EncodeEvent serializes an event the way it is stored in the cache.
func EncodeEvent(e *domain.Event) (string, error) {
	b, err := json.Marshal(cachedEvent{Event: e, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeEvent(data []byte) (*domain.Event, error) {
	c := cachedEvent{Event: &domain.Event{}}
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.Event.CreatedAt = c.CreatedAt
	c.Event.UpdatedAt = c.UpdatedAt
	return c.Event, nil
}

// EventCache serves FindByID from Redis and falls through to next on a miss.
// Save writes through and refreshes the cached copy. Redis failures are logged and
// never fail the request.
type EventCache struct {
	next   domain.EventRepository
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewEventCache wraps next with a cache whose entries expire after ttl.
func NewEventCache(next domain.EventRepository, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *EventCache {
	return &EventCache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *EventCache) Save(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	saved, err := c.next.Save(ctx, e)
	if err != nil {
		// The stored row may have changed even if the save failed part way.
		if e.ID != 0 {
			c.evict(ctx, e.ID)
		}
		return nil, err
	}
	c.store(ctx, saved)
	return saved, nil
}

func (c *EventCache) FindByID(ctx context.Context, id int) (*domain.Event, error) {
	data, err := c.client.Get(ctx, EventKey(id)).Bytes()
	switch {
	case err == nil:
		e, derr := decodeEvent(data)
		if derr == nil {
			monitoring.TrackCacheLookup("hit")
			return e, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", "id", id, "err", derr)
		monitoring.TrackCacheLookup("error")
	case errors.Is(err, redis.Nil):
		monitoring.TrackCacheLookup("miss")
	default:
		c.logger.WarnContext(ctx, "event cache get failed", "id", id, "err", err)
		monitoring.TrackCacheLookup("error")
	}

	e, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, e)
	return e, nil
}

func (c *EventCache) FindAll(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	return c.next.FindAll(ctx, req)
}

func (c *EventCache) store(ctx context.Context, e *domain.Event) {
	data, err := EncodeEvent(e)
	if err != nil {
		c.logger.WarnContext(ctx, "encode event for cache", "id", e.ID, "err", err)
		return
	}
	if err := c.client.Set(ctx, EventKey(e.ID), data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "event cache set failed", "id", e.ID, "err", err)
	}
}

func (c *EventCache) evict(ctx context.Context, id int) {
	if err := c.client.Del(ctx, EventKey(id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "event cache delete failed", "id", id, "err", err)
	}
}

// NewClient parses url (redis://...) or treats it as a plain address, then pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	opts.MaxRetries = 3
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
