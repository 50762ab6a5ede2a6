package matchmaking

import (
	"context"
	"log/slog"

	"github.com/devmatch/devmatch-backend/internal/db"
)

// InteractionSource loads the two exclusion sources for a user: targets
// they already swiped on (likes and passes both) and counterparts from
// existing matches.
type InteractionSource interface {
	ActedTargetIDs(ctx context.Context, userID uint64) ([]uint64, error)
	MatchedCounterpartIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

// InteractionFilter removes candidates the requester has already passed,
// liked, or matched with.
type InteractionFilter struct {
	source InteractionSource
	log    *slog.Logger
}

func NewInteractionFilter(source InteractionSource, log *slog.Logger) *InteractionFilter {
	return &InteractionFilter{source: source, log: log}
}

// Exclude filters candidates whose user id appears in either exclusion
// source. A failing source degrades to "no exclusions from that source":
// resurfacing an already-seen profile beats showing nothing.
func (f *InteractionFilter) Exclude(ctx context.Context, requesterID uint64, candidates []db.Profile) []db.Profile {
	excluded := make(map[uint64]struct{})

	acted, err := f.source.ActedTargetIDs(ctx, requesterID)
	if err != nil {
		f.log.Warn("loading swiped targets failed, skipping exclusion source", "requester", requesterID, "err", err)
	} else {
		for _, id := range acted {
			excluded[id] = struct{}{}
		}
	}

	matched, err := f.source.MatchedCounterpartIDs(ctx, requesterID)
	if err != nil {
		f.log.Warn("loading matched counterparts failed, skipping exclusion source", "requester", requesterID, "err", err)
	} else {
		for _, id := range matched {
			excluded[id] = struct{}{}
		}
	}

	if len(excluded) == 0 {
		return candidates
	}

	kept := make([]db.Profile, 0, len(candidates))
	for _, c := range candidates {
		if _, seen := excluded[c.UserID]; !seen {
			kept = append(kept, c)
		}
	}
	return kept
}
