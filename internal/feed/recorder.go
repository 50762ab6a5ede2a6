package feed

import (
	"context"
	"log/slog"

	"github.com/devmatch/devmatch-backend/internal/cache"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

// storeRecorder persists swipes through the interaction repository and
// keeps the Redis match counters warm. The cache is optional and its
// failures are ignored; the DB stays the source of truth.
type storeRecorder struct {
	interactions *repository.InteractionRepository
	cache        *cache.RedisCache
	log          *slog.Logger
}

// NewStoreRecorder builds a Recorder backed by the interaction store.
func NewStoreRecorder(interactions *repository.InteractionRepository, redisCache *cache.RedisCache, log *slog.Logger) Recorder {
	return &storeRecorder{interactions: interactions, cache: redisCache, log: log}
}

func (r *storeRecorder) RecordPass(ctx context.Context, userID, targetID uint64) bool {
	if _, err := r.interactions.RecordSwipe(ctx, userID, targetID, false); err != nil {
		r.log.Warn("recording pass failed", "user", userID, "target", targetID, "err", err)
		return false
	}
	return true
}

func (r *storeRecorder) CreateMatch(ctx context.Context, userID, targetID uint64) bool {
	matched, err := r.interactions.RecordSwipe(ctx, userID, targetID, true)
	if err != nil {
		r.log.Warn("recording like failed", "user", userID, "target", targetID, "err", err)
		return false
	}
	if matched && r.cache != nil {
		_ = r.cache.IncrMatchCount(ctx, userID)
		_ = r.cache.IncrMatchCount(ctx, targetID)
	}
	return true
}
