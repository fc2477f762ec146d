package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

type Generator struct {
	now func() time.Time
}

// NewGenerator takes the clock used for the stale check and for alerts that
// have no reading to date them. A nil clock means time.Now.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// ForPatient evaluates every rule against one patient. Rules are independent;
// a patient may yield any number of alerts.
func (g *Generator) ForPatient(f PatientFacts) []Alert {
	now := g.now()
	readingAt := now
	if f.LastReadingAt != nil {
		readingAt = *f.LastReadingAt
	}

	var alerts []Alert

	switch f.Status {
	case models.StatusCritical:
		a := newAlert(f, RuleCriticalStatus, "", readingAt)
		a.Kind = models.NotificationKindCritical
		a.Priority = models.PriorityCritical
		a.ActionRequired = true
		a.Title = "Critical patient status"
		a.Message = fmt.Sprintf("%s has vitals in the critical range and needs immediate attention", f.PatientName)
		alerts = append(alerts, a)
	case models.StatusWarning:
		a := newAlert(f, RuleWarningStatus, "", readingAt)
		a.Kind = models.NotificationKindWarning
		a.Priority = models.PriorityHigh
		a.ActionRequired = true
		a.Title = "Patient needs review"
		a.Message = fmt.Sprintf("%s has vitals outside the normal range", f.PatientName)
		alerts = append(alerts, a)
	}

	if f.LastReadingAt == nil || now.Sub(*f.LastReadingAt) > StaleAfter {
		a := newAlert(f, RuleNoRecentVitals, "", now)
		a.Kind = models.NotificationKindInfo
		a.Priority = models.PriorityLow
		a.Title = "No recent vitals"
		if f.LastReadingAt == nil {
			a.Message = fmt.Sprintf("%s has not recorded any vitals yet", f.PatientName)
		} else {
			a.Message = fmt.Sprintf("%s has not recorded vitals in the last 24 hours", f.PatientName)
		}
		alerts = append(alerts, a)
	}

	for _, t := range models.VitalTypes {
		m, ok := f.LatestVitals[t]
		if !ok {
			continue
		}
		if a, ok := vitalAlert(f, m, readingAt); ok {
			alerts = append(alerts, a)
		}
	}

	return alerts
}

func vitalAlert(f PatientFacts, m vitals.Measurement, at time.Time) (Alert, bool) {
	status := vitals.Classify(m)
	if status == models.StatusNormal {
		return Alert{}, false
	}

	a := newAlert(f, RuleVitalOutOfRange, m.Type, at)
	a.VitalValue = m.Display()
	low := vitals.BelowNormal(m)

	switch {
	case status == models.StatusCritical:
		a.Kind = models.NotificationKindCritical
		a.Priority = models.PriorityHigh
		a.ActionRequired = true
	case m.Type == models.VitalTypeHeartRate && low:
		a.Kind = models.NotificationKindInfo
		a.Priority = models.PriorityLow
	default:
		a.Kind = models.NotificationKindWarning
		a.Priority = models.PriorityMedium
	}

	direction := "High"
	if low {
		direction = "Low"
	}
	a.Title = direction + " " + strings.ToLower(vitals.Label(m.Type))
	a.Message = fmt.Sprintf("%s: %s %s (%s)", f.PatientName, strings.ToLower(vitals.Label(m.Type)), describe(m), status)
	if trend := f.Trends[m.Type]; trend != "" && trend != vitals.TrendStable {
		a.Message += ", " + string(trend)
	}
	return a, true
}

// ForRoster runs ForPatient over a roster and returns one deduplicated, sorted
// set. The same input always yields the same set.
func (g *Generator) ForRoster(roster []PatientFacts) []Alert {
	var alerts []Alert
	for _, f := range roster {
		alerts = append(alerts, g.ForPatient(f)...)
	}
	alerts = Dedupe(alerts)
	Sort(alerts)
	return alerts
}
