package matchmaking

// Goal is a user's stated intent on the platform. It is read from the
// requester's stored profile and drives the priority tiers below.
type Goal string

const (
	GoalRecruiting Goal = "recruiting"
	GoalSearching  Goal = "searching"
	GoalInvesting  Goal = "investing"
	GoalOther      Goal = "other"
)

// Priorities buckets counterpart goals into fetch order. High is queried
// first, medium only if high came up short, low only after both.
type Priorities struct {
	High   []Goal
	Medium []Goal
	Low    []Goal
}

// Tiers returns the buckets in fetch order. Empty buckets are included;
// callers skip them.
func (p Priorities) Tiers() [][]Goal {
	return [][]Goal{p.High, p.Medium, p.Low}
}

// ResolvePriorities maps a goal to counterpart-goal tiers:
//
//	recruiting → high [searching], medium [other], low [investing]
//	searching  → high [recruiting], medium [investing, other]
//	investing  → high [recruiting, searching], medium [other]
//	other      → high [other], medium [searching, recruiting, investing]
//
// Anything else falls through to an all-goals high tier. Total over all
// inputs; never errors.
func ResolvePriorities(goal Goal) Priorities {
	switch goal {
	case GoalRecruiting:
		return Priorities{
			High:   []Goal{GoalSearching},
			Medium: []Goal{GoalOther},
			Low:    []Goal{GoalInvesting},
		}
	case GoalSearching:
		return Priorities{
			High:   []Goal{GoalRecruiting},
			Medium: []Goal{GoalInvesting, GoalOther},
		}
	case GoalInvesting:
		return Priorities{
			High:   []Goal{GoalRecruiting, GoalSearching},
			Medium: []Goal{GoalOther},
		}
	case GoalOther:
		return Priorities{
			High:   []Goal{GoalOther},
			Medium: []Goal{GoalSearching, GoalRecruiting, GoalInvesting},
		}
	default:
		return Priorities{
			High: []Goal{GoalSearching, GoalRecruiting, GoalInvesting, GoalOther},
		}
	}
}
