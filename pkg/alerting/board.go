package alerting

import "sync"

// Board holds the current alert set of each recipient. Every pass replaces
// the whole set, so repeated passes never accumulate duplicates.
type Board struct {
	mu   sync.Mutex
	sets map[string][]Alert
}

func NewBoard() *Board {
	return &Board{sets: map[string][]Alert{}}
}

// Replace installs alerts as the recipient's set and returns the ones whose
// key was not in the previous set.
func (b *Board) Replace(recipientID string, alerts []Alert) []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := make(map[Key]struct{}, len(b.sets[recipientID]))
	for _, a := range b.sets[recipientID] {
		prev[a.Key()] = struct{}{}
	}

	var added []Alert
	for _, a := range alerts {
		if _, ok := prev[a.Key()]; !ok {
			added = append(added, a)
		}
	}

	b.sets[recipientID] = append([]Alert(nil), alerts...)
	return added
}

func (b *Board) List(recipientID string) []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Alert(nil), b.sets[recipientID]...)
}

func (b *Board) Forget(recipientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sets, recipientID)
}
