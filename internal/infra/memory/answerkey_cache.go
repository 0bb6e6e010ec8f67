package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quiz-catalog-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// AnswerKeyLoader builds an answer key from the backing store.
type AnswerKeyLoader interface {
	LoadAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error)
}

// AnswerKeyCache caches answer keys with TTL to avoid rebuilding them from
// the store on every scoring request.
type AnswerKeyCache struct {
	loader AnswerKeyLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedKey
}

type cachedKey struct {
	key       domain.AnswerKey
	expiresAt time.Time
}

func NewAnswerKeyCache(loader AnswerKeyLoader, ttl time.Duration) *AnswerKeyCache {
	return &AnswerKeyCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedKey),
	}
}

func (c *AnswerKeyCache) GetAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[quizID]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.key, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[quizID]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.key, nil
		}
		c.mu.RUnlock()

		key, err := c.loader.LoadAnswerKey(ctx, quizID)
		if err != nil {
			return domain.AnswerKey(nil), err
		}

		// Empty keys are not cached: a quiz with no questions stays a
		// store-checked 400 path and picks up questions added later.
		if len(key) > 0 {
			c.mu.Lock()
			c.cache[quizID] = cachedKey{
				key:       key,
				expiresAt: now.Add(c.ttlWithJitter()),
			}
			c.mu.Unlock()
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(domain.AnswerKey), nil
}

func (c *AnswerKeyCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
