package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

var vitalTypeNames = []string{
	string(models.VitalTypeBloodPressure),
	string(models.VitalTypeBloodSugar),
	string(models.VitalTypeHeartRate),
	string(models.VitalTypeTemperature),
}

type PatientRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var patientRequestSchema = z.Struct(z.Shape{
	"id":   z.String().Optional(),
	"name": z.String().Required(),
})

func (rs *RestfulServer) PostPatient(c *gin.Context) {
	var req PatientRequest
	if err := patientRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	patient := models.Patient{ID: req.ID, Name: req.Name}
	if err := rs.Monitor.Link.UpsertPatient(c.Request.Context(), &patient); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

type ReadingRequest struct {
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at" zog:"recorded_at"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"type":       z.String().Required().OneOf(vitalTypeNames),
	"value":      z.String().Required(),
	"recordedAt": z.Time().Optional(),
})

type ReadingResponse struct {
	Reading        *models.VitalReading  `json:"reading"`
	Notifications  []models.Notification `json:"notifications"`
	DeliveryErrors []string              `json:"delivery_errors,omitempty"`
}

func (rs *RestfulServer) PostReading(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reading, notifications, err := rs.Monitor.Reading.SubmitReading(
		c.Request.Context(),
		session(c),
		patientID,
		models.VitalType(req.Type),
		req.Value,
		req.RecordedAt,
	)
	if reading == nil {
		writeError(c, err)
		return
	}

	// the reading is stored; anything that failed after that is reported, not fatal
	c.JSON(http.StatusCreated, ReadingResponse{
		Reading:        reading,
		Notifications:  notifications,
		DeliveryErrors: deliveryErrors(err),
	})
}

type ReadingsQuery struct {
	Limit int `json:"limit"`
}

var readingsQuerySchema = z.Struct(z.Shape{
	"limit": z.Int().Optional().GTE(0),
})

func (rs *RestfulServer) GetReadings(c *gin.Context) {
	patientID := c.Param("patient_id")

	var query ReadingsQuery
	if err := readingsQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	readings, err := rs.Monitor.Reading.GetPatientReadings(c.Request.Context(), patientID, query.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetPatientAlerts(c *gin.Context) {
	alerts, err := rs.Monitor.Alert.PatientAlerts(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	patientID := c.Param("patient_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(patientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetLimiterSettings(c *gin.Context) {
	if rs.RateLimiterStore == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rate limiting is not enabled"})
		return
	}

	c.JSON(http.StatusOK, rs.RateLimiterStore.Settings(c.Param("patient_id")))
}

// DeleteLimiter puts the patient back on the default budget.
func (rs *RestfulServer) DeleteLimiter(c *gin.Context) {
	if rs.RateLimiterStore != nil {
		rs.RateLimiterStore.ResetLimiter(c.Param("patient_id"))
	}

	c.Status(http.StatusNoContent)
}

type LinkRequest struct {
	DoctorID  string `json:"doctor_id" zog:"doctor_id"`
	PatientID string `json:"patient_id" zog:"patient_id"`
}

var linkRequestSchema = z.Struct(z.Shape{
	"doctorID":  z.String().Required(),
	"patientID": z.String().Required(),
})

func (rs *RestfulServer) PostLink(c *gin.Context) {
	var req LinkRequest
	if err := linkRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	link, err := rs.Monitor.Link.LinkDoctor(c.Request.Context(), req.DoctorID, req.PatientID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (rs *RestfulServer) DeleteLink(c *gin.Context) {
	var req LinkRequest
	if err := linkRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Monitor.Link.UnlinkDoctor(c.Request.Context(), req.DoctorID, req.PatientID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) GetDoctorPatients(c *gin.Context) {
	patients, err := rs.Monitor.Link.GetDoctorPatients(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (rs *RestfulServer) GetDoctorAlerts(c *gin.Context) {
	alerts, err := rs.Monitor.Alert.DoctorAlerts(c.Request.Context(), c.Param("doctor_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type ReminderRequest struct {
	RecipientID        string    `json:"recipient_id" zog:"recipient_id"`
	Kind               string    `json:"kind"`
	Message            string    `json:"message"`
	DueAt              time.Time `json:"due_at" zog:"due_at"`
	SubjectPatientID   string    `json:"subject_patient_id" zog:"subject_patient_id"`
	SubjectPatientName string    `json:"subject_patient_name" zog:"subject_patient_name"`

	AppointmentID  string    `json:"appointment_id" zog:"appointment_id"`
	ScheduledFor   time.Time `json:"scheduled_for" zog:"scheduled_for"`
	MedicationID   string    `json:"medication_id" zog:"medication_id"`
	MedicationName string    `json:"medication_name" zog:"medication_name"`
	Dosage         string    `json:"dosage"`
}

var reminderRequestSchema = z.Struct(z.Shape{
	"recipientID": z.String().Required(),
	"kind": z.String().Required().OneOf([]string{
		string(models.NotificationKindAppointment),
		string(models.NotificationKindMedication),
		string(models.NotificationKindSystem),
	}),
	"message":            z.String().Required(),
	"dueAt":              z.Time().Required(),
	"subjectPatientID":   z.String().Optional(),
	"subjectPatientName": z.String().Optional(),
	"appointmentID":      z.String().Optional(),
	"scheduledFor":       z.Time().Optional(),
	"medicationID":       z.String().Optional(),
	"medicationName":     z.String().Optional(),
	"dosage":             z.String().Optional(),
})

func (req ReminderRequest) detail() models.Detail {
	switch models.NotificationKind(req.Kind) {
	case models.NotificationKindAppointment:
		return models.AppointmentDetail{AppointmentID: req.AppointmentID, ScheduledFor: req.ScheduledFor}
	case models.NotificationKindMedication:
		return models.MedicationDetail{MedicationID: req.MedicationID, Name: req.MedicationName, Dosage: req.Dosage}
	}
	return nil
}

func (rs *RestfulServer) PostReminder(c *gin.Context) {
	var req ReminderRequest
	if err := reminderRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reminder := models.Reminder{
		RecipientID:        req.RecipientID,
		Kind:               models.NotificationKind(req.Kind),
		Message:            req.Message,
		DueAt:              req.DueAt,
		SubjectPatientID:   req.SubjectPatientID,
		SubjectPatientName: req.SubjectPatientName,
	}
	if err := reminder.SetDetail(req.detail()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := rs.Monitor.Reminder.ScheduleReminder(c.Request.Context(), &reminder); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
