// Package seed persists reconciled records to Postgres.
package seed

import "fmt"

// SeedResult tracks counts and errors from a seeding operation.
type SeedResult struct {
	CompetitionsUpserted int
	TeamsUpserted        int
	MatchesUpserted      int
	PlayersUpserted      int
	Errors               []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.CompetitionsUpserted += other.CompetitionsUpserted
	r.TeamsUpserted += other.TeamsUpserted
	r.MatchesUpserted += other.MatchesUpserted
	r.PlayersUpserted += other.PlayersUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *SeedResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"competitions=%d teams=%d matches=%d players=%d errors=%d",
		r.CompetitionsUpserted, r.TeamsUpserted,
		r.MatchesUpserted, r.PlayersUpserted,
		len(r.Errors),
	)
}
