package matchmaking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/matchmaking"
)

//
// Fakes
//

type fetchCall struct {
	goals []matchmaking.Goal
	limit int
}

// fakeProfiles serves candidates from a per-goal map and can be told to
// fail a specific call (1-based) or every call.
type fakeProfiles struct {
	byGoal     map[matchmaking.Goal][]db.Profile
	failOnCall int
	failAlways bool
	calls      []fetchCall
}

func (f *fakeProfiles) FindByGoals(_ context.Context, _ uint64, goals []matchmaking.Goal, _ matchmaking.Filters, limit int) ([]db.Profile, error) {
	f.calls = append(f.calls, fetchCall{goals: goals, limit: limit})
	if f.failAlways || f.failOnCall == len(f.calls) {
		return nil, errors.New("store unavailable")
	}

	var out []db.Profile
	for _, g := range goals {
		out = append(out, f.byGoal[g]...)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeInteractions serves fixed exclusion sets, each independently failable.
type fakeInteractions struct {
	acted      []uint64
	matched    []uint64
	actedErr   error
	matchedErr error
}

func (f *fakeInteractions) ActedTargetIDs(context.Context, uint64) ([]uint64, error) {
	return f.acted, f.actedErr
}

func (f *fakeInteractions) MatchedCounterpartIDs(context.Context, uint64) ([]uint64, error) {
	return f.matched, f.matchedErr
}

//
// Helpers
//

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func candidates(goal matchmaking.Goal, ids ...uint64) []db.Profile {
	out := make([]db.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, db.Profile{UserID: id, Name: "dev", Goal: string(goal), Complete: true})
	}
	return out
}

func resultIDs(r matchmaking.Result) []uint64 {
	ids := make([]uint64, 0, len(r.Profiles))
	for _, d := range r.Profiles {
		ids = append(ids, d.ID)
	}
	return ids
}

//
// Tests
//

// Three eligible high-tier profiles against a limit of 50: all returned,
// hasMore stays false (3 != 50).
func TestGetMatchedProfiles_UnderLimit(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3, 4),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 50)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 3, 4}, resultIDs(res))
	assert.False(t, res.HasMore)
	assert.Equal(t, 3, res.TotalCount)
}

// A high tier landing exactly on the limit flips hasMore true.
func TestGetMatchedProfiles_ExactLimitSetsHasMore(t *testing.T) {
	var ids []uint64
	for i := uint64(2); i < 52; i++ {
		ids = append(ids, i)
	}
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalSearching: candidates(matchmaking.GoalSearching, ids...),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalRecruiting, matchmaking.Filters{}, 50)
	require.NoError(t, err)

	assert.Len(t, res.Profiles, 50)
	assert.True(t, res.HasMore)
}

// Lower tiers are only asked for the remainder, and never once the limit
// is satisfied.
func TestGetMatchedProfiles_TierTopUp(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3),
		matchmaking.GoalInvesting:  candidates(matchmaking.GoalInvesting, 4),
		matchmaking.GoalOther:      candidates(matchmaking.GoalOther, 5),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	// searching → high [recruiting], medium [investing, other], no low tier
	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 5)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 3, 4, 5}, resultIDs(res))
	require.Len(t, profiles.calls, 2)
	assert.Equal(t, 5, profiles.calls[0].limit)
	assert.Equal(t, 3, profiles.calls[1].limit, "medium tier asked only for the remainder")
}

func TestGetMatchedProfiles_StopsOnceLimitSatisfied(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3),
		matchmaking.GoalInvesting:  candidates(matchmaking.GoalInvesting, 4),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 2)
	require.NoError(t, err)

	assert.Len(t, res.Profiles, 2)
	assert.Len(t, profiles.calls, 1, "medium tier must not be queried once the limit is met")
}

// Candidates present in user_actions or matches never surface.
func TestGetMatchedProfiles_ExcludesInteracted(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3, 4, 5),
	}}
	interactions := &fakeInteractions{acted: []uint64{3}, matched: []uint64{5}}
	svc := matchmaking.NewService(profiles, interactions, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 50)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 4}, resultIDs(res))
}

// A failing exclusion source means "no exclusions from that source", not
// an aborted request.
func TestGetMatchedProfiles_ExclusionFailureDegrades(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3),
	}}
	interactions := &fakeInteractions{
		actedErr: errors.New("actions table down"),
		matched:  []uint64{3},
	}
	svc := matchmaking.NewService(profiles, interactions, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 50)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2}, resultIDs(res), "the healthy source still excludes")
}

func TestGetMatchedProfiles_NoDuplicateIDs(t *testing.T) {
	// The same profile served from two tiers must appear once, first
	// occurrence kept.
	shared := db.Profile{UserID: 7, Goal: "searching", Complete: true}
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalSearching: {shared, {UserID: 2, Goal: "searching", Complete: true}},
		matchmaking.GoalOther:     {shared},
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	// recruiting → high [searching], medium [other]; force the medium
	// sweep by asking for more than high can supply
	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalRecruiting, matchmaking.Filters{}, 10)
	require.NoError(t, err)

	seen := map[uint64]int{}
	for _, id := range resultIDs(res) {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %d appeared %d times", id, n)
	}
	assert.ElementsMatch(t, []uint64{7, 2}, resultIDs(res))
}

// The shuffle must be a permutation: same multiset of ids in and out.
func TestGetMatchedProfiles_ShuffleIsPermutation(t *testing.T) {
	var ids []uint64
	for i := uint64(2); i <= 21; i++ {
		ids = append(ids, i)
	}
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, ids...),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	for run := 0; run < 5; run++ {
		res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 50)
		require.NoError(t, err)
		assert.ElementsMatch(t, ids, resultIDs(res))
	}
}

// The first store call failing fails the whole invocation.
func TestGetMatchedProfiles_FirstFetchFailureIsHard(t *testing.T) {
	profiles := &fakeProfiles{failAlways: true}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	_, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 10)
	assert.Error(t, err)
}

// A later tier failing contributes zero candidates without failing the
// invocation.
func TestGetMatchedProfiles_LaterTierFailureDegrades(t *testing.T) {
	profiles := &fakeProfiles{
		byGoal: map[matchmaking.Goal][]db.Profile{
			matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2, 3),
		},
		failOnCall: 2,
	}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	res, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 10)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{2, 3}, resultIDs(res))
	assert.False(t, res.HasMore)
}

func TestGetMatchedProfiles_ZeroLimitUsesDefault(t *testing.T) {
	profiles := &fakeProfiles{byGoal: map[matchmaking.Goal][]db.Profile{
		matchmaking.GoalRecruiting: candidates(matchmaking.GoalRecruiting, 2),
	}}
	svc := matchmaking.NewService(profiles, &fakeInteractions{}, discardLogger())

	_, err := svc.GetMatchedProfiles(context.Background(), 1, matchmaking.GoalSearching, matchmaking.Filters{}, 0)
	require.NoError(t, err)

	require.NotEmpty(t, profiles.calls)
	assert.Equal(t, matchmaking.DefaultLimit, profiles.calls[0].limit)
}
