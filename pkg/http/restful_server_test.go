package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sinon1310/CareSync-sub000/pkg/monitor/mocks"
	_ "github.com/Sinon1310/CareSync-sub000/pkg/testing"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
)

func setupTestServer(t *testing.T) *RestfulServer {
	return setupTestServerWithLimiter(t, nil)
}

func setupTestServerWithLimiter(t *testing.T, limiter *monitor.RateLimiterStore) *RestfulServer {
	hub := realtime.NewHub()
	t.Cleanup(hub.Close)

	rs := &RestfulServer{
		Server:           gin.New(),
		Monitor:          monitor.New(*db.GetInstance(db.UseMemorySqliteDialector()), hub, roster.NewMemoryCache()),
		RateLimiterStore: limiter,
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path string, body any, sess models.Session) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		payload = b
	default:
		payload, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !sess.IsZero() {
		req.Header.Set(headerUserID, sess.UserID)
		req.Header.Set(headerUserRole, string(sess.Role))
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func createPatient(t *testing.T, rs *RestfulServer, name string) models.Patient {
	t.Helper()
	w := doJSON(rs, http.MethodPost, "/patients", PatientRequest{Name: name}, models.Session{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var patient models.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patient))
	require.NotEmpty(t, patient.ID)
	return patient
}

func linkDoctor(t *testing.T, rs *RestfulServer, doctorID, patientID string) {
	t.Helper()
	w := doJSON(rs, http.MethodPost, "/links", LinkRequest{DoctorID: doctorID, PatientID: patientID}, models.Session{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func asPatient(id string) models.Session {
	return models.Session{UserID: id, Role: models.RolePatient}
}

func asDoctor(id string) models.Session {
	return models.Session{UserID: id, Role: models.RoleDoctor}
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostReadingAndGetAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	patient := createPatient(t, rs, "Ana Ruiz")
	doctorID := uuid.NewString()
	linkDoctor(t, rs, doctorID, patient.ID)

	w := doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/readings",
		ReadingRequest{Type: "blood_pressure", Value: "190/100"}, asPatient(patient.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCritical, resp.Reading.Status)
	assert.Empty(t, resp.DeliveryErrors)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, doctorID, resp.Notifications[0].RecipientID)

	alertW := doJSON(rs, http.MethodGet, "/doctors/"+doctorID+"/alerts", nil, models.Session{})
	assert.Equal(t, http.StatusOK, alertW.Code)

	var alerts []alerting.Alert
	require.NoError(t, json.Unmarshal(alertW.Body.Bytes(), &alerts))
	require.Len(t, alerts, 2)
	assert.Equal(t, alerting.RuleCriticalStatus, alerts[0].Rule)
	assert.Equal(t, alerting.RuleVitalOutOfRange, alerts[1].Rule)

	patientAlertW := doJSON(rs, http.MethodGet, "/patients/"+patient.ID+"/alerts", nil, models.Session{})
	assert.Equal(t, http.StatusOK, patientAlertW.Code)
	assert.JSONEq(t, alertW.Body.String(), patientAlertW.Body.String())

	readingsW := doJSON(rs, http.MethodGet, "/patients/"+patient.ID+"/readings?limit=10", nil, models.Session{})
	assert.Equal(t, http.StatusOK, readingsW.Code)
	var readings []models.VitalReading
	require.NoError(t, json.Unmarshal(readingsW.Body.Bytes(), &readings))
	require.Len(t, readings, 1)
	assert.Equal(t, "190/100", readings[0].Display)
}

func TestPostReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	patient := createPatient(t, rs, "Ana Ruiz")
	path := "/patients/" + patient.ID + "/readings"

	tests := []struct {
		name string
		body any
		sess models.Session
		code int
	}{
		{"empty payload", []byte("{}"), asPatient(patient.ID), http.StatusBadRequest},
		{"unknown vital type", ReadingRequest{Type: "weight", Value: "80"}, asPatient(patient.ID), http.StatusBadRequest},
		{"half a blood pressure", ReadingRequest{Type: "blood_pressure", Value: "120"}, asPatient(patient.ID), http.StatusBadRequest},
		{"not a number", ReadingRequest{Type: "heart_rate", Value: "fast"}, asPatient(patient.ID), http.StatusBadRequest},
		{"recorded in the future", ReadingRequest{Type: "heart_rate", Value: "130", RecordedAt: time.Now().AddDate(1, 0, 0)}, asPatient(patient.ID), http.StatusBadRequest},
		{"too many decimals", ReadingRequest{Type: "temperature", Value: "100.36"}, asPatient(patient.ID), http.StatusBadRequest},
		{"no session", ReadingRequest{Type: "heart_rate", Value: "72"}, models.Session{}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(rs, http.MethodPost, path, tt.body, tt.sess)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	unknown := uuid.NewString()
	w := doJSON(rs, http.MethodPost, "/patients/"+unknown+"/readings", ReadingRequest{Type: "heart_rate", Value: "72"}, asPatient(unknown))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostReading_DeliveryErrorsAreReported(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	patient := createPatient(t, rs, "Ana Ruiz")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockILink := mocks.NewMockILink(ctrl)
	rs.Monitor.Link = mockILink
	mockILink.EXPECT().
		FetchActiveLinks(gomock.Any(), gomock.Eq(patient.ID)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/readings",
		ReadingRequest{Type: "heart_rate", Value: "130"}, asPatient(patient.ID))
	require.Equal(t, http.StatusCreated, w.Code, "a stored reading is never reported as failed")

	var resp ReadingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCritical, resp.Reading.Status)
	require.Len(t, resp.DeliveryErrors, 1)
	assert.Contains(t, resp.DeliveryErrors[0], "just causing error")
}

func TestGetDoctorAlerts_Error(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	doctorID := uuid.NewString()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIAlert := mocks.NewMockIAlert(ctrl)
	rs.Monitor.Alert = mockIAlert
	mockIAlert.EXPECT().
		DoctorAlerts(gomock.Any(), gomock.Eq(doctorID)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, http.MethodGet, "/doctors/"+doctorID+"/alerts", nil, models.Session{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLinks(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	patient := createPatient(t, rs, "Ana Ruiz")
	doctorID := uuid.NewString()
	linkDoctor(t, rs, doctorID, patient.ID)

	w := doJSON(rs, http.MethodGet, "/doctors/"+doctorID+"/patients", nil, models.Session{})
	require.Equal(t, http.StatusOK, w.Code)
	var patients []models.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	require.Len(t, patients, 1)
	assert.Equal(t, patient.ID, patients[0].ID)

	w = doJSON(rs, http.MethodDelete, "/links", LinkRequest{DoctorID: doctorID, PatientID: patient.ID}, models.Session{})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(rs, http.MethodDelete, "/links", LinkRequest{DoctorID: uuid.NewString(), PatientID: patient.ID}, models.Session{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, http.MethodPost, "/links", LinkRequest{DoctorID: doctorID, PatientID: uuid.NewString()}, models.Session{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, http.MethodPost, "/links", []byte("{}"), models.Session{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifications(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	patient := createPatient(t, rs, "Ana Ruiz")
	doctorID := uuid.NewString()
	linkDoctor(t, rs, doctorID, patient.ID)
	base := "/recipients/" + doctorID + "/notifications"

	for _, value := range []string{"130", "135"} {
		w := doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/readings",
			ReadingRequest{Type: "heart_rate", Value: value}, asPatient(patient.ID))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(rs, http.MethodGet, base, nil, models.Session{})
	require.Equal(t, http.StatusOK, w.Code)
	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 2)

	w = doJSON(rs, http.MethodGet, base+"/count", nil, models.Session{})
	assert.JSONEq(t, `{"unread":2}`, w.Body.String())

	w = doJSON(rs, http.MethodPost, base+"/"+notifications[0].ID+"/read", nil, models.Session{})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, http.MethodGet, base+"?unread=true", nil, models.Session{})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	assert.Len(t, notifications, 1)

	w = doJSON(rs, http.MethodPost, base+"/read-all", nil, models.Session{})
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = doJSON(rs, http.MethodDelete, base+"/"+notifications[0].ID, nil, models.Session{})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(rs, http.MethodPost, base+"/"+notifications[0].ID+"/read", nil, models.Session{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, http.MethodDelete, base, nil, models.Session{})
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())
}

func TestPostReminder(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	recipientID := uuid.NewString()

	w := doJSON(rs, http.MethodPost, "/reminders", ReminderRequest{
		RecipientID:    recipientID,
		Kind:           string(models.NotificationKindMedication),
		Message:        "Take your evening dose",
		DueAt:          time.Now().Add(time.Hour),
		MedicationID:   "med-1",
		MedicationName: "Metformin",
		Dosage:         "500mg",
	}, models.Session{})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reminder models.Reminder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reminder))
	assert.NotEmpty(t, reminder.ID)
	assert.Nil(t, reminder.DispatchedAt)
	assert.JSONEq(t, `{"medication_id":"med-1","name":"Metformin","dosage":"500mg"}`, string(reminder.Detail))

	w = doJSON(rs, http.MethodPost, "/reminders", ReminderRequest{
		RecipientID: recipientID,
		Kind:        string(models.NotificationKindCritical),
		Message:     "not schedulable",
		DueAt:       time.Now(),
	}, models.Session{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, monitor.NewRateLimiterStore(2, 2))
	patient := createPatient(t, rs, "Ana Ruiz")
	path := "/patients/" + patient.ID + "/readings"
	body := ReadingRequest{Type: "heart_rate", Value: "72"}

	for i := range 3 {
		w := doJSON(rs, http.MethodPost, path, body, asPatient(patient.ID))
		if i < 2 {
			require.Equal(t, http.StatusCreated, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	w := doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/limiter", LimiterRequest{Rate: 2, Burst: 2}, models.Session{})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, http.MethodPost, path, body, asPatient(patient.ID))
	require.Equal(t, http.StatusCreated, w.Code, "a fresh limiter has its burst available")

	w = doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/limiter", []byte("{}"), models.Session{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiterSettings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, monitor.NewRateLimiterStore(2, 4))
	path := "/patients/" + uuid.NewString() + "/limiter"

	settingsOf := func() monitor.LimiterSettings {
		w := doJSON(rs, http.MethodGet, path, nil, models.Session{})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var settings monitor.LimiterSettings
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
		return settings
	}

	assert.Equal(t, monitor.LimiterSettings{Rate: 2, Burst: 4}, settingsOf())

	w := doJSON(rs, http.MethodPost, path, LimiterRequest{Rate: 0.5, Burst: 1}, models.Session{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, monitor.LimiterSettings{Rate: 0.5, Burst: 1, Custom: true}, settingsOf())

	w = doJSON(rs, http.MethodDelete, path, nil, models.Session{})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, monitor.LimiterSettings{Rate: 2, Burst: 4}, settingsOf())

	w = doJSON(setupTestServer(t), http.MethodGet, path, nil, models.Session{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	patient := createPatient(t, rs, "Ana Ruiz")
	w := doJSON(rs, http.MethodPost, "/patients/"+patient.ID+"/readings",
		ReadingRequest{Type: "temperature", Value: "98.6"}, asPatient(patient.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(rs, http.MethodGet, "/metrics", nil, models.Session{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rpm_readings_classified_total{status="normal",type="temperature"}`)
}
