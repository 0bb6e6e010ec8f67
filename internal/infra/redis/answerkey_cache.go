package redis

import (
	"context"
	"math/rand"
	"time"

	"quiz-catalog-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// AnswerKeyLoader builds an answer key from the backing store.
type AnswerKeyLoader interface {
	LoadAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error)
}

// AnswerKeyCache keeps answer keys in Redis (hash per quiz) and falls back
// to a loader on cache miss.
// Keys are stored as: HSET quiz:{quizID}:answers {questionID} {correctChoice}
type AnswerKeyCache struct {
	client *redis.Client
	loader AnswerKeyLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewAnswerKeyCache(client *redis.Client, loader AnswerKeyLoader, ttl time.Duration) *AnswerKeyCache {
	return &AnswerKeyCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *AnswerKeyCache) GetAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error) {
	hashKey := c.answersKey(quizID)

	cached, err := c.client.HGetAll(ctx, hashKey).Result()
	if err == nil && len(cached) > 0 {
		return domain.AnswerKey(cached), nil
	}

	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		cached, err := c.client.HGetAll(ctx, hashKey).Result()
		if err == nil && len(cached) > 0 {
			return domain.AnswerKey(cached), nil
		}

		key, err := c.loader.LoadAnswerKey(ctx, quizID)
		if err != nil {
			return domain.AnswerKey(nil), err
		}

		// An empty hash reads as a miss, so only non-empty keys are
		// worth writing back.
		if len(key) > 0 {
			ttl := c.ttlWithJitter()
			pipe := c.client.Pipeline()
			for questionID, choice := range key {
				pipe.HSet(ctx, hashKey, questionID, choice)
			}
			if ttl > 0 {
				pipe.Expire(ctx, hashKey, ttl)
			}
			_, _ = pipe.Exec(ctx)
		}

		return key, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.AnswerKey), nil
}

func (c *AnswerKeyCache) answersKey(quizID string) string {
	return "quiz:" + quizID + ":answers"
}

func (c *AnswerKeyCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
