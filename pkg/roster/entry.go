// Package roster keeps the latest classified vitals of each patient. Entries
// are keyed by recording time, so a late delivery of an older reading never
// replaces a newer one.
package roster

import (
	"context"
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

type LatestVital struct {
	Measurement vitals.Measurement `json:"measurement"`
	Status      models.Status      `json:"status"`
	RecordedAt  time.Time          `json:"recorded_at"`
	Trend       vitals.Trend       `json:"trend"`
}

type Entry struct {
	PatientID     string                           `json:"patient_id"`
	PatientName   string                           `json:"patient_name"`
	Latest        map[models.VitalType]LatestVital `json:"latest"`
	LastReadingAt *time.Time                       `json:"last_reading_at,omitempty"`
}

// Cache is the shared latest-status map. Apply is the only writer.
type Cache interface {
	Apply(ctx context.Context, patientName string, r *models.VitalReading) (Entry, error)
	Get(ctx context.Context, patientID string) (Entry, bool, error)
	Delete(ctx context.Context, patientID string) error
}

// Status is the most severe status among the latest vitals.
func (e Entry) Status() models.Status {
	statuses := make([]models.Status, 0, len(e.Latest))
	for _, v := range e.Latest {
		statuses = append(statuses, v.Status)
	}
	return vitals.MaxStatus(statuses...)
}

func (e Entry) Facts() alerting.PatientFacts {
	f := alerting.PatientFacts{
		PatientID:     e.PatientID,
		PatientName:   e.PatientName,
		Status:        e.Status(),
		LatestVitals:  make(map[models.VitalType]vitals.Measurement, len(e.Latest)),
		Trends:        make(map[models.VitalType]vitals.Trend, len(e.Latest)),
		LastReadingAt: e.LastReadingAt,
	}
	for t, v := range e.Latest {
		f.LatestVitals[t] = v.Measurement
		f.Trends[t] = v.Trend
	}
	return f
}

// Merge folds a reading into a copy of e. The reading replaces the current
// value of its type only when it was recorded later; changed reports whether
// it did.
func Merge(e Entry, patientName string, r *models.VitalReading) (out Entry, changed bool) {
	out = Entry{
		PatientID:     e.PatientID,
		PatientName:   e.PatientName,
		Latest:        make(map[models.VitalType]LatestVital, len(e.Latest)+1),
		LastReadingAt: e.LastReadingAt,
	}
	for t, v := range e.Latest {
		out.Latest[t] = v
	}
	if out.PatientID == "" {
		out.PatientID = r.PatientID
	}
	if patientName != "" {
		out.PatientName = patientName
	}

	if out.LastReadingAt == nil || r.RecordedAt.After(*out.LastReadingAt) {
		at := r.RecordedAt
		out.LastReadingAt = &at
	}

	m := vitals.FromReading(r)
	prev, ok := out.Latest[r.Type]
	if ok && !r.RecordedAt.After(prev.RecordedAt) {
		return out, false
	}

	trend := vitals.TrendStable
	if ok {
		trend = vitals.CompareTrend(prev.Measurement, m)
	}
	out.Latest[r.Type] = LatestVital{
		Measurement: m,
		Status:      vitals.Classify(m),
		RecordedAt:  r.RecordedAt,
		Trend:       trend,
	}
	return out, true
}
