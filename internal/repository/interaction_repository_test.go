package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

func TestRecordAction_Upsert(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	// pass first
	require.NoError(t, repo.RecordAction(ctx, 1, 2, db.ActionPass))
	// re-swipe as like overwrites the row
	require.NoError(t, repo.RecordAction(ctx, 1, 2, db.ActionLike))

	var actions []db.UserAction
	require.NoError(t, gdb.Find(&actions).Error)
	require.Len(t, actions, 1)
	assert.Equal(t, db.ActionLike, actions[0].Action)
}

func TestRecordSwipe_MutualLikeCreatesMatch(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	matched, err := repo.RecordSwipe(ctx, 1, 2, true)
	require.NoError(t, err)
	assert.False(t, matched, "one-sided like is not a match")

	matched, err = repo.RecordSwipe(ctx, 2, 1, true)
	require.NoError(t, err)
	assert.True(t, matched)

	var count int64
	require.NoError(t, gdb.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordSwipe_ReLikeDoesNotDuplicateMatch(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	_, err := repo.RecordSwipe(ctx, 1, 2, true)
	require.NoError(t, err)
	_, err = repo.RecordSwipe(ctx, 2, 1, true)
	require.NoError(t, err)

	// both sides swipe again
	matched, err := repo.RecordSwipe(ctx, 1, 2, true)
	require.NoError(t, err)
	assert.False(t, matched, "existing match must not be recreated")

	var count int64
	require.NoError(t, gdb.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordSwipe_PassNeverMatches(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	_, err := repo.RecordSwipe(ctx, 2, 1, true)
	require.NoError(t, err)

	matched, err := repo.RecordSwipe(ctx, 1, 2, false)
	require.NoError(t, err)
	assert.False(t, matched)

	var count int64
	require.NoError(t, gdb.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestActedTargetIDs_IncludesLikesAndPasses(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	require.NoError(t, repo.RecordAction(ctx, 1, 2, db.ActionLike))
	require.NoError(t, repo.RecordAction(ctx, 1, 3, db.ActionPass))
	require.NoError(t, repo.RecordAction(ctx, 9, 4, db.ActionLike)) // someone else

	ids, err := repo.ActedTargetIDs(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 3}, ids)
}

func TestMatchedCounterpartIDs_BothColumns(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	require.NoError(t, gdb.Create(&db.Match{UserID1: 1, UserID2: 2}).Error)
	require.NoError(t, gdb.Create(&db.Match{UserID1: 3, UserID2: 1}).Error)
	require.NoError(t, gdb.Create(&db.Match{UserID1: 4, UserID2: 5}).Error) // unrelated

	ids, err := repo.MatchedCounterpartIDs(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 3}, ids)

	// symmetric: the counterpart sees user 1
	ids, err = repo.MatchedCounterpartIDs(ctx, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1}, ids)
}

func TestListMatches_Pagination(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	base := time.Now().UTC().Truncate(time.Millisecond).Add(-time.Hour)
	for i := 0; i < 3; i++ {
		m := db.Match{UserID1: 1, UserID2: uint64(10 + i), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, gdb.Create(&m).Error)
	}

	// first page: newest two
	page1, token, err := repo.ListMatches(ctx, 1, nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, token)
	assert.Equal(t, uint64(12), page1[0].UserID2)
	assert.Equal(t, uint64(11), page1[1].UserID2)

	// second page: the remaining one, no further token
	page2, token2, err := repo.ListMatches(ctx, 1, token, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, uint64(10), page2[0].UserID2)
	assert.Nil(t, token2)
}

func TestCountMatches(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewInteractionRepository(gdb)

	require.NoError(t, gdb.Create(&db.Match{UserID1: 1, UserID2: 2}).Error)
	require.NoError(t, gdb.Create(&db.Match{UserID1: 3, UserID2: 1}).Error)
	require.NoError(t, gdb.Create(&db.Match{UserID1: 4, UserID2: 5}).Error)

	count, err := repo.CountMatches(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
