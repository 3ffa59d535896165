// Package activity keeps a short per-user feed of todo changes in Redis.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	OpCreate = "create"
	OpEdit   = "edit"
	OpDelete = "delete"
)

// DefaultLimit is the number of entries kept per user.
const DefaultLimit = 100

type Event struct {
	Op     string    `json:"op"`
	TodoID int       `json:"todo_id"`
	At     time.Time `json:"at"`
}

type Recorder interface {
	Record(ctx context.Context, userID int, e Event) error
}

// Nop discards events. It is used when no Redis address is configured.
type Nop struct{}

func (Nop) Record(context.Context, int, Event) error { return nil }

type RedisFeed struct {
	rdb   *redis.Client
	limit int64
}

func NewRedisFeed(rdb *redis.Client, limit int) *RedisFeed {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisFeed{rdb: rdb, limit: int64(limit)}
}

// Key returns the list holding a user's feed, newest entry first.
func Key(userID int) string {
	return fmt.Sprintf("todo:activity:%d", userID)
}

// Record pushes the event and trims the list in one transaction.
func (f *RedisFeed) Record(ctx context.Context, userID int, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	key := Key(userID)
	pipe := f.rdb.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, f.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}
