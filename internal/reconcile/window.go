package reconcile

import "time"

// windowSpan is how long after the first kickoff of a gameweek the
// live-score provider is still queried for that gameweek's matches.
// Fixtures of one round are spread across at most four days.
const windowSpan = 4 * 24 * time.Hour

// Window is the date range used to scope which live-score matches are
// candidates for one structured-provider gameweek. It is derived, never
// persisted.
type Window struct {
	From time.Time
	To   time.Time
}

// MatchWeekWindow derives the candidate window from the kickoff of the
// first structured match of the gameweek. The upper bound is passed
// verbatim to the live-score query.
func MatchWeekWindow(firstKickoff time.Time) Window {
	return Window{From: firstKickoff, To: firstKickoff.Add(windowSpan)}
}
