package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Detail is the kind-specific payload of a Notification or Reminder. The set of
// implementations is closed: each one declares which notification kinds it may
// be attached to.
type Detail interface {
	accepts(kind NotificationKind) bool
}

// VitalDetail is attached to notifications raised by a classified reading.
type VitalDetail struct {
	ReadingID  string    `json:"reading_id"`
	VitalType  VitalType `json:"vital_type"`
	VitalValue string    `json:"vital_value"`
	Status     Status    `json:"status"`
}

func (VitalDetail) accepts(kind NotificationKind) bool {
	return kind == NotificationKindCritical || kind == NotificationKindWarning || kind == NotificationKindInfo
}

type AppointmentDetail struct {
	AppointmentID string    `json:"appointment_id"`
	ScheduledFor  time.Time `json:"scheduled_for"`
}

func (AppointmentDetail) accepts(kind NotificationKind) bool {
	return kind == NotificationKindAppointment
}

type MedicationDetail struct {
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
}

func (MedicationDetail) accepts(kind NotificationKind) bool {
	return kind == NotificationKindMedication
}

func encodeDetail(kind NotificationKind, d Detail) (datatypes.JSON, error) {
	if d == nil {
		return nil, nil
	}
	if !d.accepts(kind) {
		return nil, fmt.Errorf("detail %T can not be attached to %q notifications", d, kind)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func decodeDetail[T Detail](kind NotificationKind, raw datatypes.JSON) (T, bool) {
	var d T
	if len(raw) == 0 || !d.accepts(kind) {
		return d, false
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, false
	}
	return d, true
}

func (n *Notification) SetDetail(d Detail) error {
	raw, err := encodeDetail(n.Kind, d)
	if err != nil {
		return err
	}
	n.Detail = raw
	return nil
}

func (n Notification) VitalDetail() (VitalDetail, bool) {
	return decodeDetail[VitalDetail](n.Kind, n.Detail)
}

func (n Notification) AppointmentDetail() (AppointmentDetail, bool) {
	return decodeDetail[AppointmentDetail](n.Kind, n.Detail)
}

func (n Notification) MedicationDetail() (MedicationDetail, bool) {
	return decodeDetail[MedicationDetail](n.Kind, n.Detail)
}

// Expired reports whether the notification should be hidden from its recipient.
func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}

func (r *Reminder) SetDetail(d Detail) error {
	raw, err := encodeDetail(r.Kind, d)
	if err != nil {
		return err
	}
	r.Detail = raw
	return nil
}
