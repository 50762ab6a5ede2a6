// Package feed holds the per-session cursor over matched profiles.
//
// State graph:
//
//	Idle ──► Loading ──► Ready(cursor)
//	              │  └──► Empty
//	              └─────► Error
//
// Swipes advance the cursor inside Ready; running off the end is a derived
// predicate (NoMoreDevelopers), not a separate state. Refresh re-enters
// Loading from anywhere.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/devmatch/devmatch-backend/internal/matchmaking"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Matcher produces a page of candidate profiles for the session user.
type Matcher interface {
	GetMatchedProfiles(ctx context.Context, requesterID uint64, goal matchmaking.Goal, filters matchmaking.Filters, limit int) (matchmaking.Result, error)
}

// Recorder persists swipe outcomes. Both calls report success as a bare
// bool; the feed never needs structured error detail.
type Recorder interface {
	RecordPass(ctx context.Context, userID, targetID uint64) bool
	CreateMatch(ctx context.Context, userID, targetID uint64) bool
}

// Feed owns one session's profile list and cursor. No other component
// mutates the index.
type Feed struct {
	matcher  Matcher
	recorder Recorder
	log      *slog.Logger
	limit    int

	mu       sync.Mutex
	state    State
	userID   uint64
	goal     matchmaking.Goal
	profiles []matchmaking.Developer
	index    int
	errMsg   string
	gen      uint64
}

// New creates a feed in Idle. It stays there until SetUser supplies both
// the requester id and goal.
func New(matcher Matcher, recorder Recorder, log *slog.Logger, limit int) *Feed {
	if limit <= 0 {
		limit = matchmaking.DefaultLimit
	}
	return &Feed{
		matcher:  matcher,
		recorder: recorder,
		log:      log,
		limit:    limit,
		state:    StateIdle,
	}
}

// SetUser binds the feed to a user identity and loads their first page.
// With an incomplete identity the feed remains Idle.
func (f *Feed) SetUser(ctx context.Context, userID uint64, goal matchmaking.Goal) {
	f.mu.Lock()
	f.userID = userID
	f.goal = goal
	if userID == 0 || goal == "" {
		f.state = StateIdle
		f.profiles = nil
		f.index = 0
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	f.Refresh(ctx, matchmaking.Filters{})
}

// Refresh re-enters Loading and replaces the cursor with a fresh page.
//
// Overlapping refreshes are not cancelled; each carries a generation and
// only the newest is allowed to publish its outcome (last-writer-wins at
// the state-update boundary).
func (f *Feed) Refresh(ctx context.Context, filters matchmaking.Filters) {
	f.mu.Lock()
	if f.userID == 0 || f.goal == "" {
		f.mu.Unlock()
		return
	}
	f.gen++
	gen := f.gen
	userID, goal, limit := f.userID, f.goal, f.limit
	f.state = StateLoading
	f.mu.Unlock()

	result, err := f.matcher.GetMatchedProfiles(ctx, userID, goal, filters, limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// a newer refresh owns the state now
		return
	}

	if err != nil {
		f.log.Error("feed refresh failed", "user", userID, "err", err)
		f.state = StateError
		f.errMsg = "failed to load profiles"
		f.profiles = nil
		f.index = 0
		return
	}

	f.profiles = result.Profiles
	f.index = 0
	f.errMsg = ""
	if len(result.Profiles) == 0 {
		f.state = StateEmpty
	} else {
		f.state = StateReady
	}
}

// SwipeRight likes the current candidate and advances the cursor.
func (f *Feed) SwipeRight(ctx context.Context) {
	f.swipe(ctx, true)
}

// SwipeLeft passes on the current candidate and advances the cursor.
func (f *Feed) SwipeLeft(ctx context.Context) {
	f.swipe(ctx, false)
}

// swipe advances the cursor synchronously, then records the action in a
// detached task. Recording is best-effort: a failure is logged and never
// moves the cursor back, and no two recording tasks are ordered relative
// to each other.
func (f *Feed) swipe(ctx context.Context, liked bool) {
	f.mu.Lock()
	if f.state != StateReady || f.index >= len(f.profiles) {
		f.mu.Unlock()
		return
	}
	target := f.profiles[f.index]
	f.index++
	userID := f.userID
	f.mu.Unlock()

	recordCtx := context.WithoutCancel(ctx)
	go func() {
		var ok bool
		if liked {
			ok = f.recorder.CreateMatch(recordCtx, userID, target.ID)
		} else {
			ok = f.recorder.RecordPass(recordCtx, userID, target.ID)
		}
		if !ok {
			f.log.Warn("swipe record failed", "user", userID, "target", target.ID, "liked", liked)
		}
	}()
}

// Current returns the candidate under the cursor, or false when the feed
// is not Ready or is exhausted.
func (f *Feed) Current() (matchmaking.Developer, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady || f.index >= len(f.profiles) {
		return matchmaking.Developer{}, false
	}
	return f.profiles[f.index], true
}

// NoMoreDevelopers reports whether a Ready feed has been swiped past its
// last candidate.
func (f *Feed) NoMoreDevelopers() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateReady && f.index >= len(f.profiles)
}

// State returns the current state tag.
func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the user-facing message for an Error state.
func (f *Feed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Remaining returns how many candidates are left under and after the cursor.
func (f *Feed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady || f.index >= len(f.profiles) {
		return 0
	}
	return len(f.profiles) - f.index
}
