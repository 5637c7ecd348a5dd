package album

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// likeCacheTTL bounds how stale a cached like count may get when an
// invalidation is missed.
const likeCacheTTL = 30 * time.Minute

const (
	SourceCache = "cache"
	SourceStore = "store"

	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// ErrAlreadyLiked is returned by LikeStore.AddLike when the (user, album)
// edge already exists.
var ErrAlreadyLiked = errors.New("album already liked")

// LikeStore is the durable relation of (user, album) like edges.
type LikeStore interface {
	HasLiked(ctx context.Context, albumID, userID string) (bool, error)
	AddLike(ctx context.Context, id, albumID, userID string) error
	RemoveLike(ctx context.Context, albumID, userID string) error
	CountLikes(ctx context.Context, albumID string) (int, error)
}

// Cache is a volatile key-value store with expiry. Get fails when the key
// is absent or expired.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type CountResult struct {
	Count  int
	Source string
}

// LikeCounter keeps an eventually-refreshed like count per album. Reads go
// cache-first and fall back to the store; toggles invalidate the cached
// entry. Cache faults never surface to callers.
type LikeCounter struct {
	store LikeStore
	cache Cache
}

func NewLikeCounter(store LikeStore, cache Cache) *LikeCounter {
	return &LikeCounter{
		store: store,
		cache: cache,
	}
}

func likeKey(albumID string) string {
	return "likes:" + albumID
}

func (c *LikeCounter) Count(ctx context.Context, albumID string) (CountResult, error) {
	if c.cache != nil {
		raw, err := c.cache.Get(ctx, likeKey(albumID))
		if err == nil {
			if n, convErr := strconv.Atoi(raw); convErr == nil {
				return CountResult{Count: n, Source: SourceCache}, nil
			}
		}
	}

	n, err := c.store.CountLikes(ctx, albumID)
	if err != nil {
		return CountResult{}, err
	}
	if c.cache != nil {
		if err := c.cache.Set(ctx, likeKey(albumID), strconv.Itoa(n), likeCacheTTL); err != nil {
			log.Printf("album-service: cache like count: %v", err)
		}
	}
	return CountResult{Count: n, Source: SourceStore}, nil
}

// Toggle flips the actor's like edge for an album and reports which action
// took effect. A concurrent duplicate insert is treated as already-liked,
// not a fault: the desired end state is reached either way.
func (c *LikeCounter) Toggle(ctx context.Context, albumID, userID string) (string, error) {
	liked, err := c.store.HasLiked(ctx, albumID, userID)
	if err != nil {
		return "", err
	}

	if liked {
		if err := c.store.RemoveLike(ctx, albumID, userID); err != nil {
			return "", err
		}
		c.invalidate(ctx, albumID)
		return ActionUnliked, nil
	}

	if err := c.store.AddLike(ctx, uuid.NewString(), albumID, userID); err != nil && !errors.Is(err, ErrAlreadyLiked) {
		return "", err
	}
	c.invalidate(ctx, albumID)
	return ActionLiked, nil
}

// invalidate drops the cached count. Failure leaves a stale entry behind
// until the TTL elapses; the toggle itself still succeeded.
func (c *LikeCounter) invalidate(ctx context.Context, albumID string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, likeKey(albumID)); err != nil {
		log.Printf("album-service: invalidate like count: %v", err)
	}
}
