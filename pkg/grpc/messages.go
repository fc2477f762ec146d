package grpc

import (
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
)

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubmitReadingRequest struct {
	PatientId  string    `json:"patient_id"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (x *SubmitReadingRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type SubmitReadingResponse struct {
	Status         *StatusResponse       `json:"status"`
	Reading        *models.VitalReading  `json:"reading,omitempty"`
	Notifications  []models.Notification `json:"notifications,omitempty"`
	DeliveryErrors []string              `json:"delivery_errors,omitempty"`
}

type DoctorRequest struct {
	DoctorId string `json:"doctor_id"`
}

type GetAlertsResponse struct {
	Status *StatusResponse  `json:"status"`
	Alerts []alerting.Alert `json:"alerts,omitempty"`
}

type ListNotificationsRequest struct {
	RecipientId string `json:"recipient_id"`
	UnreadOnly  bool   `json:"unread_only"`
}

type ListNotificationsResponse struct {
	Status        *StatusResponse       `json:"status"`
	Notifications []models.Notification `json:"notifications,omitempty"`
	Unread        int64                 `json:"unread"`
}

type MarkNotificationReadRequest struct {
	RecipientId    string `json:"recipient_id"`
	NotificationId string `json:"notification_id"`
}

type MarkNotificationReadResponse struct {
	Status *StatusResponse `json:"status"`
}

type LinkDoctorRequest struct {
	DoctorId  string `json:"doctor_id"`
	PatientId string `json:"patient_id"`
}

type LinkDoctorResponse struct {
	Status *StatusResponse           `json:"status"`
	Link   *models.DoctorPatientLink `json:"link,omitempty"`
}

type PostLimiterRequest struct {
	PatientId    string  `json:"patient_id"`
	PatientRate  float64 `json:"patient_rate"`
	PatientBurst int32   `json:"patient_burst"`
}

func (x *PostLimiterRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

type PostLimiterResponse struct {
	Status *StatusResponse `json:"status"`
}

type SubscribeNotificationsRequest struct {
	RecipientId string `json:"recipient_id"`
}

// NotificationEvent carries exactly one of Change or Toast.
type NotificationEvent struct {
	Change *realtime.NotificationChange `json:"change,omitempty"`
	Toast  *alerting.Alert              `json:"toast,omitempty"`
}

func ok() *StatusResponse {
	return &StatusResponse{Success: true, Message: "OK"}
}

func failed(message string) *StatusResponse {
	return &StatusResponse{Success: false, Message: message}
}
