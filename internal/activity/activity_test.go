package activity

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newFeed(t *testing.T, limit int) (*RedisFeed, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisFeed(rdb, limit), mr
}

func TestRedisFeed_Record(t *testing.T) {
	feed, mr := newFeed(t, 0)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := feed.Record(ctx, 7, Event{Op: OpCreate, TodoID: 1, At: at}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := feed.Record(ctx, 7, Event{Op: OpDelete, TodoID: 1, At: at}); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := mr.List(Key(7))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	var newest Event
	if err := json.Unmarshal([]byte(entries[0]), &newest); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if newest.Op != OpDelete || newest.TodoID != 1 || !newest.At.Equal(at) {
		t.Errorf("unexpected newest entry: %+v", newest)
	}

	if mr.Exists(Key(8)) {
		t.Error("event leaked to another user's feed")
	}
}

func TestRedisFeed_Trims(t *testing.T) {
	feed, mr := newFeed(t, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := feed.Record(ctx, 1, Event{Op: OpEdit, TodoID: i, At: time.Now()}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	entries, _ := mr.List(Key(1))
	if len(entries) != 3 {
		t.Fatalf("expected feed trimmed to 3, got %d", len(entries))
	}
}

func TestRedisFeed_Unavailable(t *testing.T) {
	feed, mr := newFeed(t, 0)
	mr.Close()

	if err := feed.Record(context.Background(), 1, Event{Op: OpCreate}); err == nil {
		t.Error("expected error when redis is down")
	}
}
