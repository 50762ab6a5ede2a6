package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devmatch/devmatch-backend/internal/cache"
	"github.com/devmatch/devmatch-backend/internal/config"
	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/feed"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

func setupRecorder(t *testing.T) (feed.Recorder, *gorm.DB, *cache.RedisCache) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&db.UserAction{}, &db.Match{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	redisCache := cache.NewRedisCache(cfg)

	interactions := repository.NewInteractionRepository(gdb)
	return feed.NewStoreRecorder(interactions, redisCache, discardLogger()), gdb, redisCache
}

func TestStoreRecorder_RecordPass(t *testing.T) {
	ctx := context.Background()
	recorder, gdb, _ := setupRecorder(t)

	assert.True(t, recorder.RecordPass(ctx, 1, 2))

	var action db.UserAction
	require.NoError(t, gdb.First(&action).Error)
	assert.Equal(t, db.ActionPass, action.Action)
}

func TestStoreRecorder_MutualLikeBumpsCounters(t *testing.T) {
	ctx := context.Background()
	recorder, gdb, redisCache := setupRecorder(t)

	assert.True(t, recorder.CreateMatch(ctx, 1, 2))
	assert.True(t, recorder.CreateMatch(ctx, 2, 1))

	var count int64
	require.NoError(t, gdb.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	for _, id := range []uint64{1, 2} {
		n, ok, err := redisCache.GetMatchCount(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), n)
	}
}
