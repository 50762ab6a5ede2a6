package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/devmatch/devmatch-backend/internal/db"
)

// DefaultLimit caps a feed page when the caller does not supply a limit.
const DefaultLimit = 50

// ProfileSource queries the store for candidate profiles whose goal is in
// goals, excluding the requester, complete profiles only, bounded by limit.
type ProfileSource interface {
	FindByGoals(ctx context.Context, requesterID uint64, goals []Goal, filters Filters, limit int) ([]db.Profile, error)
}

// Result is one page of matched profiles.
//
// HasMore is a heuristic: true iff the deduplicated candidate count landed
// exactly on the limit before truncation. A tier boundary on the limit gives
// a false positive and exhausting all tiers below it a false negative.
type Result struct {
	Profiles   []Developer
	HasMore    bool
	TotalCount int
}

// Service orchestrates candidate selection: resolve priority tiers, sweep
// them in order topping up to the limit, exclude prior interactions,
// normalize, deduplicate, shuffle.
type Service struct {
	profiles ProfileSource
	filter   *InteractionFilter
	log      *slog.Logger
}

// NewService builds the matchmaking service. All store access goes through
// the injected sources, so tests can substitute fakes.
func NewService(profiles ProfileSource, interactions InteractionSource, log *slog.Logger) *Service {
	return &Service{
		profiles: profiles,
		filter:   NewInteractionFilter(interactions, log),
		log:      log,
	}
}

// GetMatchedProfiles returns up to limit candidates for the requester.
//
// Tier sweeps run strictly in priority order and a lower tier is only
// queried while the limit is unsatisfied. The first store call failing
// fails the whole invocation; a later sweep failing contributes zero
// candidates and is logged. Each sweep loads its own exclusion sets, so an
// exclusion failure is likewise isolated to its sweep.
func (s *Service) GetMatchedProfiles(ctx context.Context, requesterID uint64, goal Goal, filters Filters, limit int) (Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var developers []Developer
	firstFetch := true

	for _, goals := range ResolvePriorities(goal).Tiers() {
		if len(goals) == 0 {
			continue
		}
		remaining := limit - len(developers)
		if remaining <= 0 {
			break
		}

		raw, err := s.profiles.FindByGoals(ctx, requesterID, goals, filters, remaining)
		if err != nil {
			if firstFetch {
				return Result{}, fmt.Errorf("fetch profiles: %w", err)
			}
			s.log.Warn("tier fetch failed, continuing with lower tiers",
				"requester", requesterID, "goals", goalStrings(goals), "err", err)
			continue
		}
		firstFetch = false

		for _, p := range s.filter.Exclude(ctx, requesterID, raw) {
			developers = append(developers, ToDeveloper(p))
		}
	}

	deduped := dedupeByID(developers)

	// Pre-truncation count against the limit is the hasMore heuristic.
	hasMore := len(deduped) == limit

	rand.Shuffle(len(deduped), func(i, j int) {
		deduped[i], deduped[j] = deduped[j], deduped[i]
	})

	if len(deduped) > limit {
		deduped = deduped[:limit]
	}

	s.log.Debug("matched profiles assembled",
		"requester", requesterID, "goal", string(goal), "count", len(deduped), "has_more", hasMore)

	return Result{Profiles: deduped, HasMore: hasMore, TotalCount: len(deduped)}, nil
}

// dedupeByID drops repeated developer ids, keeping the first occurrence.
func dedupeByID(devs []Developer) []Developer {
	seen := make(map[uint64]struct{}, len(devs))
	out := make([]Developer, 0, len(devs))
	for _, d := range devs {
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}
		out = append(out, d)
	}
	return out
}

func goalStrings(goals []Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = string(g)
	}
	return out
}
