// Package leaderboard contains the ranking model of the gamification
// core. The leaderboard ranks students only; organizers and admins
// award points but never appear in standings.
package leaderboard

import (
	"fmt"
	"sort"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Rank is a position in the standings, starting at 1.
type Rank int

// IsValid checks that the rank is positive.
func (r Rank) IsValid() bool {
	return r > 0
}

// IsTop10 returns true for the first ten places.
func (r Rank) IsTop10() bool {
	return r >= 1 && r <= 10
}

// String returns a string representation of the rank.
func (r Rank) String() string {
	return fmt.Sprintf("#%d", r)
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTRY
// ══════════════════════════════════════════════════════════════════════════════

// NoRecentActivity is shown for students whose ledger is empty.
const NoRecentActivity = "No recent activity"

// Entry is one row of the standings.
type Entry struct {
	// Rank - position in the standings, 1-based.
	Rank Rank

	// Email - the student's email.
	Email string

	// Name - the student's display name.
	Name string

	// TotalPoints - the student's cached point total.
	TotalPoints int

	// BadgesCount - how many badges the student holds.
	BadgesCount int

	// RecentActivity - description of the latest award, or the
	// NoRecentActivity sentinel.
	RecentActivity string
}

// ══════════════════════════════════════════════════════════════════════════════
// RANKING
// ══════════════════════════════════════════════════════════════════════════════

// Ranking is an ordered set of standings entries.
type Ranking struct {
	entries []Entry
}

// NewRanking orders the given rows and assigns ranks.
// Ordering is points descending with email ascending as the
// tie-break, so equal scores still produce a stable, reproducible
// board. Ranks are positional: the entry at index i holds rank i+1
// even when scores tie.
func NewRanking(rows []Entry) *Ranking {
	entries := make([]Entry, len(rows))
	copy(entries, rows)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Email < entries[j].Email
	})

	for i := range entries {
		entries[i].Rank = Rank(i + 1)
	}

	return &Ranking{entries: entries}
}

// Len returns the number of ranked entries.
func (r *Ranking) Len() int {
	return len(r.entries)
}

// Top returns the first n entries. A non-positive or oversized n
// returns the whole board.
func (r *Ranking) Top(n int) []Entry {
	if n <= 0 || n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]Entry, n)
	copy(out, r.entries[:n])
	return out
}

// Find returns the entry of the given email, or false when the email
// is not ranked.
func (r *Ranking) Find(email string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Email == email {
			return e, true
		}
	}
	return Entry{}, false
}
