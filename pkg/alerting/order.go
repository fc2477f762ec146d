package alerting

import (
	"slices"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

func PriorityRank(p models.Priority) int {
	switch p {
	case models.PriorityCritical:
		return 3
	case models.PriorityHigh:
		return 2
	case models.PriorityMedium:
		return 1
	}
	return 0
}

// Sort orders alerts by priority, highest first, then newest first. Equal
// alerts keep their input order.
func Sort(alerts []Alert) {
	slices.SortStableFunc(alerts, func(a, b Alert) int {
		if ra, rb := PriorityRank(a.Priority), PriorityRank(b.Priority); ra != rb {
			return rb - ra
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Dedupe keeps the first alert seen for each key.
func Dedupe(alerts []Alert) []Alert {
	seen := make(map[Key]struct{}, len(alerts))
	out := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		k := a.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}
