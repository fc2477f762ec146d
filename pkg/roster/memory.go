package roster

import (
	"context"
	"sync"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]Entry{}}
}

func (c *MemoryCache) Apply(_ context.Context, patientName string, r *models.VitalReading) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged, _ := Merge(c.entries[r.PatientID], patientName, r)
	c.entries[r.PatientID] = merged
	return merged, nil
}

func (c *MemoryCache) Get(_ context.Context, patientID string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[patientID]
	return e, ok, nil
}

func (c *MemoryCache) Delete(_ context.Context, patientID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, patientID)
	return nil
}
