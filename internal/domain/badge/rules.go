package badge

import (
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
)

// Rule decides from a user's ledger history whether one badge was
// earned. Rules are pure and independent of each other; each award is
// checked against every rule after the ledger grows.
type Rule struct {
	// BadgeID - the catalog entry this rule grants.
	BadgeID string

	// Earned reports whether the history satisfies the rule.
	Earned func(history []points.Record) bool
}

// Rules is the active rule set, evaluated in order.
func Rules() []Rule {
	return []Rule{
		{
			// Event Explorer: took part in ten different events.
			BadgeID: IDEventExplorer,
			Earned: func(history []points.Record) bool {
				return distinctEvents(history) >= 10
			},
		},
		{
			// Early Bird: registered early three times.
			BadgeID: IDEarlyBird,
			Earned: func(history []points.Record) bool {
				return countByType(history, points.TypeEarlyBird) >= 3
			},
		},
	}
}

func distinctEvents(history []points.Record) int {
	seen := make(map[string]struct{}, len(history))
	for _, r := range history {
		if r.EventID == "" {
			continue
		}
		seen[r.EventID] = struct{}{}
	}
	return len(seen)
}

func countByType(history []points.Record, t points.Type) int {
	n := 0
	for _, r := range history {
		if r.Type == t {
			n++
		}
	}
	return n
}
