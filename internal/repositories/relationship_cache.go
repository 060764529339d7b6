package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/social"
	"github.com/anonto42/y2k-space/backend/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	graphKeyPrefix      = "relations:graph:"
	generationKeyPrefix = "relations:gen:"
)

// errGraphChanged aborts a cache fill whose snapshot predates a mutation.
var errGraphChanged = errors.New("relation graph changed while loading")

// CachedRelationshipRepository keeps each user's Graph in Redis. Every
// mutation bumps both users' generation and drops their graphs; a fill only
// lands if the generation it started under is still current, so a read after
// a write never sees the old edges. Redis errors fall through to the store.
type CachedRelationshipRepository struct {
	next RelationshipRepository
	rdb  *redis.Client
	ttl  time.Duration
}

// NewCachedRelationshipRepository wraps next. With a nil client it returns
// next unchanged.
func NewCachedRelationshipRepository(next RelationshipRepository, rdb *redis.Client, ttl time.Duration) RelationshipRepository {
	if rdb == nil {
		return next
	}
	return &CachedRelationshipRepository{next: next, rdb: rdb, ttl: ttl}
}

func graphKey(userID uint) string {
	return fmt.Sprintf("%s%d", graphKeyPrefix, userID)
}

func generationKey(userID uint) string {
	return fmt.Sprintf("%s%d", generationKeyPrefix, userID)
}

func (c *CachedRelationshipRepository) GraphFor(ctx context.Context, userID uint) (social.Graph, error) {
	key := graphKey(userID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var g social.Graph
		if err := json.Unmarshal(raw, &g); err == nil {
			return g, nil
		}
		logger.Log.Warn("Discarding unreadable cached graph", zap.Uint("user_id", userID))
	} else if err != redis.Nil {
		logger.Log.Warn("Relation cache read failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	// Read the generation before the store so a mutation that commits in
	// between is detected at fill time.
	gen, genErr := c.generation(ctx, c.rdb, userID)
	if genErr != nil {
		logger.Log.Warn("Relation cache read failed", zap.Uint("user_id", userID), zap.Error(genErr))
	}

	g, err := c.next.GraphFor(ctx, userID)
	if err != nil {
		return social.Graph{}, err
	}
	if genErr == nil {
		c.fill(ctx, userID, gen, g)
	}
	return g, nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c *CachedRelationshipRepository) generation(ctx context.Context, cmd stringGetter, userID uint) (int64, error) {
	gen, err := cmd.Get(ctx, generationKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// fill caches g unless userID's generation moved past gen.
func (c *CachedRelationshipRepository) fill(ctx context.Context, userID uint, gen int64, g social.Graph) {
	payload, err := json.Marshal(g)
	if err != nil {
		return
	}

	genKey := generationKey(userID)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != gen {
			return errGraphChanged
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, graphKey(userID), payload, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errGraphChanged), errors.Is(err, redis.TxFailedErr):
		logger.Log.Debug("Skipping stale relation graph", zap.Uint("user_id", userID))
	default:
		logger.Log.Warn("Relation cache write failed", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func (c *CachedRelationshipRepository) AddFriend(ctx context.Context, senderID, receiverID uint) error {
	return c.mutate(ctx, senderID, receiverID, func() error {
		return c.next.AddFriend(ctx, senderID, receiverID)
	})
}

func (c *CachedRelationshipRepository) AcceptFriend(ctx context.Context, receiverID, senderID uint) error {
	return c.mutate(ctx, receiverID, senderID, func() error {
		return c.next.AcceptFriend(ctx, receiverID, senderID)
	})
}

func (c *CachedRelationshipRepository) RemoveFriend(ctx context.Context, userID, otherID uint) error {
	return c.mutate(ctx, userID, otherID, func() error {
		return c.next.RemoveFriend(ctx, userID, otherID)
	})
}

func (c *CachedRelationshipRepository) Block(ctx context.Context, blockerID, blockedID uint) error {
	return c.mutate(ctx, blockerID, blockedID, func() error {
		return c.next.Block(ctx, blockerID, blockedID)
	})
}

func (c *CachedRelationshipRepository) Unblock(ctx context.Context, blockerID, blockedID uint) error {
	return c.mutate(ctx, blockerID, blockedID, func() error {
		return c.next.Unblock(ctx, blockerID, blockedID)
	})
}

func (c *CachedRelationshipRepository) mutate(ctx context.Context, a, b uint, fn func() error) error {
	err := fn()
	_, cacheErr := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(a))
		pipe.Incr(ctx, generationKey(b))
		pipe.Del(ctx, graphKey(a), graphKey(b))
		return nil
	})
	if cacheErr != nil {
		logger.Log.Error("Relation cache invalidation failed",
			zap.Uint("user_a", a), zap.Uint("user_b", b), zap.Error(cacheErr))
	}
	return err
}
