// Package alerting derives alerts from patient facts. Everything here is pure:
// no storage, no delivery. Callers decide what to persist and what to show.
package alerting

import (
	"fmt"
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

// Rule names the condition that produced an alert.
type Rule string

const (
	RuleCriticalStatus   Rule = "critical_status"
	RuleWarningStatus    Rule = "warning_status"
	RuleNoRecentVitals   Rule = "no_recent_vitals"
	RuleVitalOutOfRange  Rule = "vital_out_of_range"
	RuleReadingSubmitted Rule = "reading_submitted"
	RuleReminderDue      Rule = "reminder_due"
)

// StaleAfter is how old the last reading may get before a patient is flagged.
const StaleAfter = 24 * time.Hour

// Alert is ephemeral: it is recomputed on every pass and never stored.
type Alert struct {
	ID             string                  `json:"id"`
	PatientID      string                  `json:"patient_id"`
	PatientName    string                  `json:"patient_name"`
	Rule           Rule                    `json:"rule"`
	Kind           models.NotificationKind `json:"kind"`
	Priority       models.Priority         `json:"priority"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	ActionRequired bool                    `json:"action_required"`
	VitalType      models.VitalType        `json:"vital_type,omitempty"`
	VitalValue     string                  `json:"vital_value,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// Key identifies an alert across passes.
type Key struct {
	PatientID string
	Rule      Rule
	VitalType models.VitalType
}

func (k Key) String() string {
	if k.VitalType == "" {
		return k.PatientID + ":" + string(k.Rule)
	}
	return k.PatientID + ":" + string(k.Rule) + ":" + string(k.VitalType)
}

func (a Alert) Key() Key {
	return Key{PatientID: a.PatientID, Rule: a.Rule, VitalType: a.VitalType}
}

// Urgent reports whether the alert should interrupt the recipient with a toast.
func (a Alert) Urgent() bool {
	return a.Kind == models.NotificationKindCritical || a.Kind == models.NotificationKindWarning
}

// PatientFacts is everything the generator needs to know about one patient.
type PatientFacts struct {
	PatientID     string
	PatientName   string
	Status        models.Status
	LatestVitals  map[models.VitalType]vitals.Measurement
	LastReadingAt *time.Time
	Trends        map[models.VitalType]vitals.Trend
}

func newAlert(f PatientFacts, rule Rule, vitalType models.VitalType, at time.Time) Alert {
	a := Alert{
		PatientID:   f.PatientID,
		PatientName: f.PatientName,
		Rule:        rule,
		VitalType:   vitalType,
		CreatedAt:   at,
	}
	a.ID = a.Key().String()
	return a
}

func describe(m vitals.Measurement) string {
	unit := vitals.Unit(m.Type)
	if unit == "" {
		return m.Display()
	}
	return fmt.Sprintf("%s %s", m.Display(), unit)
}
