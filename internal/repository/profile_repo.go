package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/matchmaking"
)

// ProfileRepository provides data access for developer profiles and their
// joined sub-records (skills, education, work experience).
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// FindByGoals returns candidate profiles for a feed sweep.
//
// Behavior:
//   - Only profiles whose goal is in goals and whose complete flag is set.
//   - The requester's own profile is always excluded.
//   - filters.Location applies a case-insensitive substring match.
//   - Bounded by limit; sub-records are preloaded for the transformer.
//
// TODO: push filters.ExperienceMin/Max and filters.Skills into the query;
// they are accepted through the API surface but not applied yet.
func (r *ProfileRepository) FindByGoals(
	ctx context.Context,
	requesterID uint64,
	goals []matchmaking.Goal,
	filters matchmaking.Filters,
	limit int,
) ([]db.Profile, error) {
	goalValues := make([]string, len(goals))
	for i, g := range goals {
		goalValues[i] = string(g)
	}

	query := r.db.WithContext(ctx).
		Preload("Skills").
		Preload("Education").
		Preload("WorkExperience").
		Where("goal IN ?", goalValues).
		Where("complete = ?", true).
		Where("user_id <> ?", requesterID)

	if filters.Location != "" {
		query = query.Where(
			"LOWER(location) LIKE ?",
			"%"+strings.ToLower(filters.Location)+"%",
		)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var profiles []db.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetByUserID loads a single profile with its sub-records.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uint64) (db.Profile, error) {
	var profile db.Profile
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Preload("Education").
		Preload("WorkExperience").
		Where("user_id = ?", userID).
		First(&profile).Error
	return profile, err
}
