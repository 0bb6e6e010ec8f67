package redis

import (
	"context"
	"testing"
	"time"

	"quiz-catalog-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestAnswerKeyCacheCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	loader := &countingKeyLoader{keys: map[string]domain.AnswerKey{
		"quiz-1": {"q1": "a", "q2": "b"},
	}}
	cache := NewAnswerKeyCache(client, loader, time.Minute)

	key, err := cache.GetAnswerKey(context.Background(), "quiz-1")
	if err != nil {
		t.Fatalf("get key: %v", err)
	}
	if len(key) != 2 || key["q2"] != "b" {
		t.Fatalf("unexpected key: %v", key)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if got := mr.HGet("quiz:quiz-1:answers", "q1"); got != "a" {
		t.Fatalf("expected hash entry in redis, got %q", got)
	}

	// Second call should hit cache, loader not incremented.
	if _, err := cache.GetAnswerKey(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("get key 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
}

func TestAnswerKeyCacheSkipsEmptyKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &countingKeyLoader{keys: map[string]domain.AnswerKey{}}
	cache := NewAnswerKeyCache(newClient(mr), loader, time.Minute)

	for i := 0; i < 2; i++ {
		key, err := cache.GetAnswerKey(context.Background(), "quiz-empty")
		if err != nil {
			t.Fatalf("get key: %v", err)
		}
		if len(key) != 0 {
			t.Fatalf("expected empty key, got %v", key)
		}
	}
	if loader.calls != 2 {
		t.Fatalf("empty keys must not be cached, loader calls %d", loader.calls)
	}
	if mr.Exists("quiz:quiz-empty:answers") {
		t.Fatalf("no hash should be written for an empty key")
	}
}

type countingKeyLoader struct {
	keys  map[string]domain.AnswerKey
	calls int
}

func (l *countingKeyLoader) LoadAnswerKey(_ context.Context, quizID string) (domain.AnswerKey, error) {
	l.calls++
	if key, ok := l.keys[quizID]; ok {
		return key, nil
	}
	return domain.AnswerKey{}, nil
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
