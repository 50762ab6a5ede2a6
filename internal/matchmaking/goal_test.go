package matchmaking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devmatch/devmatch-backend/internal/matchmaking"
)

func TestResolvePriorities_FixedTable(t *testing.T) {
	cases := []struct {
		goal matchmaking.Goal
		want matchmaking.Priorities
	}{
		{
			goal: matchmaking.GoalRecruiting,
			want: matchmaking.Priorities{
				High:   []matchmaking.Goal{matchmaking.GoalSearching},
				Medium: []matchmaking.Goal{matchmaking.GoalOther},
				Low:    []matchmaking.Goal{matchmaking.GoalInvesting},
			},
		},
		{
			goal: matchmaking.GoalSearching,
			want: matchmaking.Priorities{
				High:   []matchmaking.Goal{matchmaking.GoalRecruiting},
				Medium: []matchmaking.Goal{matchmaking.GoalInvesting, matchmaking.GoalOther},
			},
		},
		{
			goal: matchmaking.GoalInvesting,
			want: matchmaking.Priorities{
				High:   []matchmaking.Goal{matchmaking.GoalRecruiting, matchmaking.GoalSearching},
				Medium: []matchmaking.Goal{matchmaking.GoalOther},
			},
		},
		{
			goal: matchmaking.GoalOther,
			want: matchmaking.Priorities{
				High:   []matchmaking.Goal{matchmaking.GoalOther},
				Medium: []matchmaking.Goal{matchmaking.GoalSearching, matchmaking.GoalRecruiting, matchmaking.GoalInvesting},
			},
		},
	}

	for _, c := range cases {
		t.Run(string(c.goal), func(t *testing.T) {
			assert.Equal(t, c.want, matchmaking.ResolvePriorities(c.goal))
		})
	}
}

func TestResolvePriorities_UnknownGoalFallsThrough(t *testing.T) {
	want := matchmaking.Priorities{
		High: []matchmaking.Goal{
			matchmaking.GoalSearching,
			matchmaking.GoalRecruiting,
			matchmaking.GoalInvesting,
			matchmaking.GoalOther,
		},
	}

	// Unknown input must fall through to the all-goals row, never error.
	assert.Equal(t, want, matchmaking.ResolvePriorities("mentoring"))
	assert.Equal(t, want, matchmaking.ResolvePriorities(""))
}

func TestPriorities_TiersOrder(t *testing.T) {
	p := matchmaking.ResolvePriorities(matchmaking.GoalRecruiting)
	tiers := p.Tiers()

	assert.Equal(t, p.High, tiers[0])
	assert.Equal(t, p.Medium, tiers[1])
	assert.Equal(t, p.Low, tiers[2])
}
