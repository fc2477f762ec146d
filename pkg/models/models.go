package models

import (
	"time"

	"gorm.io/datatypes"
)

type VitalType string

const (
	VitalTypeBloodPressure VitalType = "blood_pressure"
	VitalTypeBloodSugar    VitalType = "blood_sugar"
	VitalTypeHeartRate     VitalType = "heart_rate"
	VitalTypeTemperature   VitalType = "temperature"
)

// VitalTypes lists every vital type in the order alerts are generated and displayed.
var VitalTypes = []VitalType{
	VitalTypeBloodPressure,
	VitalTypeBloodSugar,
	VitalTypeHeartRate,
	VitalTypeTemperature,
}

type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

type LinkStatus string

const (
	LinkStatusActive   LinkStatus = "active"
	LinkStatusInactive LinkStatus = "inactive"
)

type NotificationKind string

const (
	NotificationKindCritical    NotificationKind = "critical"
	NotificationKindWarning     NotificationKind = "warning"
	NotificationKindInfo        NotificationKind = "info"
	NotificationKindAppointment NotificationKind = "appointment"
	NotificationKindMedication  NotificationKind = "medication"
	NotificationKindSystem      NotificationKind = "system"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Patient struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Readings []VitalReading      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Links    []DoctorPatientLink `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

// VitalReading is immutable once stored. Status is always derived from Type and
// the value fields, never taken from the submitter.
type VitalReading struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PatientID string    `gorm:"index:idx_reading_patient_recorded,priority:1" json:"patient_id"`
	Type      VitalType `gorm:"type:varchar(20);check:type IN ('blood_pressure','blood_sugar','heart_rate','temperature')" json:"type"`

	// blood_pressure only
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
	// blood_sugar, heart_rate and temperature
	Value float64 `json:"value"`

	Display    string    `json:"display"`
	Unit       string    `json:"unit"`
	Status     Status    `gorm:"type:varchar(10)" json:"status"`
	RecordedAt time.Time `gorm:"index:idx_reading_patient_recorded,priority:2" json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type DoctorPatientLink struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	DoctorID  string     `gorm:"uniqueIndex:idx_link_doctor_patient;not null" json:"doctor_id"`
	PatientID string     `gorm:"uniqueIndex:idx_link_doctor_patient;index;not null" json:"patient_id"`
	Status    LinkStatus `gorm:"type:varchar(10);check:status IN ('active','inactive')" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Notification is the durable, recipient-addressed record. Detail carries the
// kind-specific payload, see VitalDetail, AppointmentDetail and MedicationDetail.
type Notification struct {
	ID                 string           `gorm:"primaryKey" json:"id"`
	RecipientID        string           `gorm:"index;not null" json:"recipient_id"`
	Kind               NotificationKind `gorm:"type:varchar(20)" json:"kind"`
	Priority           Priority         `gorm:"type:varchar(10)" json:"priority"`
	SubjectPatientID   string           `gorm:"index" json:"subject_patient_id"`
	SubjectPatientName string           `json:"subject_patient_name"`
	Title              string           `json:"title"`
	Message            string           `json:"message"`
	Read               bool             `gorm:"column:is_read;index" json:"read"`
	Detail             datatypes.JSON   `json:"detail"`
	CreatedAt          time.Time        `json:"created_at"`
	ExpiresAt          *time.Time       `json:"expires_at,omitempty"`
}

// Reminder is a durable scheduled job: it becomes a notification once DueAt has
// passed and a poller picks it up.
type Reminder struct {
	ID                 string           `gorm:"primaryKey" json:"id"`
	RecipientID        string           `gorm:"index;not null" json:"recipient_id"`
	Kind               NotificationKind `gorm:"type:varchar(20)" json:"kind"`
	SubjectPatientID   string           `json:"subject_patient_id"`
	SubjectPatientName string           `json:"subject_patient_name"`
	Message            string           `json:"message"`
	Detail             datatypes.JSON   `json:"detail"`
	DueAt              time.Time        `gorm:"index" json:"due_at"`
	DispatchedAt       *time.Time       `json:"dispatched_at,omitempty"`
	NotificationID     string           `json:"notification_id"`
	CreatedAt          time.Time        `json:"created_at"`
}
