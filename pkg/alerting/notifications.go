package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

func readingLevel(status models.Status) (models.NotificationKind, models.Priority, bool) {
	switch status {
	case models.StatusCritical:
		return models.NotificationKindCritical, models.PriorityCritical, true
	case models.StatusWarning:
		return models.NotificationKindWarning, models.PriorityHigh, true
	}
	return "", "", false
}

func readingMessage(r *models.VitalReading, patientName string) (string, string) {
	m := vitals.FromReading(r)
	label := strings.ToLower(vitals.Label(r.Type))
	if r.Status == models.StatusCritical {
		return "Critical vital alert", fmt.Sprintf("%s recorded a critical %s of %s", patientName, label, describe(m))
	}
	return "Vital warning", fmt.Sprintf("%s recorded an abnormal %s of %s", patientName, label, describe(m))
}

// ReadingAlert is the toast raised for a freshly stored reading. Normal
// readings raise nothing.
func ReadingAlert(r *models.VitalReading, patientName string) (Alert, bool) {
	kind, priority, ok := readingLevel(r.Status)
	if !ok {
		return Alert{}, false
	}

	a := newAlert(PatientFacts{PatientID: r.PatientID, PatientName: patientName}, RuleReadingSubmitted, r.Type, r.RecordedAt)
	a.ID = r.ID
	a.Kind = kind
	a.Priority = priority
	a.ActionRequired = r.Status == models.StatusCritical
	a.VitalValue = r.Display
	a.Title, a.Message = readingMessage(r, patientName)
	return a, true
}

// ReadingNotifications builds one unsaved notification per distinct doctor for
// a critical or warning reading.
func ReadingNotifications(r *models.VitalReading, patientName string, doctorIDs []string, now time.Time) ([]models.Notification, error) {
	kind, priority, ok := readingLevel(r.Status)
	if !ok {
		return nil, nil
	}

	title, message := readingMessage(r, patientName)
	detail := models.VitalDetail{
		ReadingID:  r.ID,
		VitalType:  r.Type,
		VitalValue: r.Display,
		Status:     r.Status,
	}

	doctors := common.Unique(doctorIDs)
	out := make([]models.Notification, 0, len(doctors))
	for _, doctorID := range doctors {
		n := models.Notification{
			RecipientID:        doctorID,
			Kind:               kind,
			Priority:           priority,
			SubjectPatientID:   r.PatientID,
			SubjectPatientName: patientName,
			Title:              title,
			Message:            message,
			CreatedAt:          now,
		}
		if err := n.SetDetail(detail); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// FromNotification is the toast shown when a stored notification arrives, e.g.
// a reminder coming due.
func FromNotification(n models.Notification, rule Rule) Alert {
	a := Alert{
		ID:          n.ID,
		PatientID:   n.SubjectPatientID,
		PatientName: n.SubjectPatientName,
		Rule:        rule,
		Kind:        n.Kind,
		Priority:    n.Priority,
		Title:       n.Title,
		Message:     n.Message,
		CreatedAt:   n.CreatedAt,
	}
	if d, ok := n.VitalDetail(); ok {
		a.VitalType = d.VitalType
		a.VitalValue = d.VitalValue
	}
	return a
}
