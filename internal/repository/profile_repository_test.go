package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/matchmaking"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(
		&db.User{}, &db.Profile{}, &db.Skill{}, &db.Education{}, &db.WorkExperience{},
		&db.UserAction{}, &db.Match{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func createProfile(t *testing.T, gdb *gorm.DB, userID uint64, goal, location string, complete bool) {
	t.Helper()
	p := db.Profile{
		UserID:   userID,
		Name:     "dev",
		Goal:     goal,
		Location: location,
		Complete: complete,
	}
	require.NoError(t, gdb.Create(&p).Error)
}

func profileUserIDs(profiles []db.Profile) []uint64 {
	ids := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	return ids
}

func TestFindByGoals_FiltersGoalCompleteAndRequester(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	createProfile(t, gdb, 1, "searching", "London", true)  // requester, excluded
	createProfile(t, gdb, 2, "searching", "London", true)  // eligible
	createProfile(t, gdb, 3, "searching", "Berlin", false) // incomplete
	createProfile(t, gdb, 4, "recruiting", "London", true) // wrong goal
	createProfile(t, gdb, 5, "other", "Remote", true)      // eligible (second goal)

	got, err := repo.FindByGoals(ctx, 1, []matchmaking.Goal{matchmaking.GoalSearching, matchmaking.GoalOther}, matchmaking.Filters{}, 10)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 5}, profileUserIDs(got))
}

func TestFindByGoals_LocationFilterIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	createProfile(t, gdb, 2, "searching", "London, UK", true)
	createProfile(t, gdb, 3, "searching", "East London", true)
	createProfile(t, gdb, 4, "searching", "Berlin", true)

	got, err := repo.FindByGoals(ctx, 1, []matchmaking.Goal{matchmaking.GoalSearching}, matchmaking.Filters{Location: "LONDON"}, 10)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 3}, profileUserIDs(got))
}

func TestFindByGoals_RespectsLimit(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	for id := uint64(2); id <= 9; id++ {
		createProfile(t, gdb, id, "searching", "Remote", true)
	}

	got, err := repo.FindByGoals(ctx, 1, []matchmaking.Goal{matchmaking.GoalSearching}, matchmaking.Filters{}, 3)
	require.NoError(t, err)

	assert.Len(t, got, 3)
}

func TestFindByGoals_PreloadsSubRecords(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	p := db.Profile{
		UserID:   2,
		Name:     "dev",
		Goal:     "searching",
		Complete: true,
		Skills: []db.Skill{
			{Name: "Go", Level: "Expert"},
			{Name: "Redis"},
		},
		Education:      &db.Education{School: "State University", Degree: "BSc", Field: "CS"},
		WorkExperience: &db.WorkExperience{Company: "Acme", StartDate: &start, Current: true},
	}
	require.NoError(t, gdb.Create(&p).Error)

	got, err := repo.FindByGoals(ctx, 1, []matchmaking.Goal{matchmaking.GoalSearching}, matchmaking.Filters{}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Len(t, got[0].Skills, 2)
	require.NotNil(t, got[0].Education)
	assert.Equal(t, "State University", got[0].Education.School)
	require.NotNil(t, got[0].WorkExperience)
	assert.True(t, got[0].WorkExperience.Current)
}

func TestGetByUserID(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewProfileRepository(gdb)

	createProfile(t, gdb, 2, "recruiting", "Berlin", true)

	got, err := repo.GetByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "recruiting", got.Goal)

	_, err = repo.GetByUserID(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
