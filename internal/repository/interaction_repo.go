package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/utils/pagination"
)

// InteractionRepository provides data access for swipe actions and matches.
// It implements the exclusion-source queries consumed by the matchmaking
// filter and the write path for swipe recording.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new repository bound to the given DB connection.
func NewInteractionRepository(database *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// RecordAction inserts or updates the swipe made by userID on targetID.
//
// The composite PK (user_id, target_user_id) guarantees a single row per
// pair; a repeated swipe overwrites the action.
func (r *InteractionRepository) RecordAction(
	ctx context.Context,
	userID, targetID uint64,
	action string,
) error {
	row := db.UserAction{
		UserID:       userID,
		TargetUserID: targetID,
		Action:       action,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"action", "updated_at"}),
		}).
		Create(&row).Error
}

// RecordSwipe records a like or pass and, when the like is mutual, creates
// the match. Returns whether a match was produced by this swipe.
//
// Match creation is idempotent: an existing match for the pair is not
// duplicated even if both sides re-like.
func (r *InteractionRepository) RecordSwipe(
	ctx context.Context,
	actorID, targetID uint64,
	liked bool,
) (bool, error) {
	action := db.ActionPass
	if liked {
		action = db.ActionLike
	}
	if err := r.RecordAction(ctx, actorID, targetID, action); err != nil {
		return false, err
	}
	if !liked {
		return false, nil
	}

	reciprocal, err := r.HasLiked(ctx, targetID, actorID)
	if err != nil || !reciprocal {
		return false, err
	}

	exists, err := r.MatchExists(ctx, actorID, targetID)
	if err != nil || exists {
		return false, err
	}

	match := db.Match{UserID1: actorID, UserID2: targetID}
	if err := r.db.WithContext(ctx).Create(&match).Error; err != nil {
		return false, err
	}
	return true, nil
}

// HasLiked reports whether userID has liked targetID.
func (r *InteractionRepository) HasLiked(ctx context.Context, userID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.UserAction{}).
		Where("user_id = ? AND target_user_id = ? AND action = ?", userID, targetID, db.ActionLike).
		Count(&count).Error
	return count > 0, err
}

// ActedTargetIDs returns every target userID has swiped on, likes and
// passes alike. Both keep the target out of the user's feed.
func (r *InteractionRepository) ActedTargetIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.UserAction{}).
		Where("user_id = ?", userID).
		Pluck("target_user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MatchExists reports whether a match row exists for the pair, in either
// column order.
func (r *InteractionRepository) MatchExists(ctx context.Context, a, b uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// MatchedCounterpartIDs returns the other side of every match userID is
// part of, whichever column they occupy.
func (r *InteractionRepository) MatchedCounterpartIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("user_id_1 = ? OR user_id_2 = ?", userID, userID).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(matches))
	for _, m := range matches {
		if m.UserID1 == userID {
			ids = append(ids, m.UserID2)
		} else {
			ids = append(ids, m.UserID1)
		}
	}
	return ids, nil
}

// ListMatches returns a page of userID's matches, newest first.
//
// Behavior:
//   - Ordered by created_at DESC, id DESC.
//   - Supports cursor-based pagination via paginationToken: the repo fetches
//     limit+1 rows and emits a next token only when the extra row exists.
func (r *InteractionRepository) ListMatches(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Match, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("user_id_1 = ? OR user_id_2 = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if cursor.MatchID > 0 && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND id < ?))",
			ts, ts, cursor.MatchID,
		)
	}

	var matches []db.Match
	if err := query.Find(&matches).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(matches) > limit {
		last := matches[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			MatchID:     last.ID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		matches = matches[:limit]
	}

	return matches, nextToken, nil
}

// CountMatches returns how many matches userID is part of. Used in
// conjunction with the Redis counter cache (DB is fallback).
func (r *InteractionRepository) CountMatches(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("user_id_1 = ? OR user_id_2 = ?", userID, userID).
		Count(&count).Error
	return count, err
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
