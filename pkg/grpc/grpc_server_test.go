package grpc

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
	_ "github.com/Sinon1310/CareSync-sub000/pkg/testing"

	"github.com/Sinon1310/CareSync-sub000/pkg/monitor/mocks"
)

const bufSize = 1024 * 1024

type testServer struct {
	client  MonitorServiceClient
	monitor *monitor.Monitor
}

func startTestServer(t *testing.T) testServer {
	return startTestServerWithLimiter(t, nil)
}

func startTestServerWithLimiter(t *testing.T, limiterStore *monitor.RateLimiterStore) testServer {
	listener := bufconn.Listen(bufSize)

	hub := realtime.NewHub()
	t.Cleanup(hub.Close)
	core := monitor.New(*db.GetInstance(db.UseMemorySqliteDialector()), hub, roster.NewMemoryCache())

	monitorServer := MonitorServer{Monitor: core, RateLimiterStore: limiterStore}
	interceptor := grpc.UnaryInterceptor(monitorServer.CreateRateLimitInterceptor([]any{
		&SubmitReadingRequest{},
	}))
	server := grpc.NewServer(interceptor)
	RegisterMonitorServiceServer(server, &monitorServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return testServer{client: NewMonitorServiceClient(conn), monitor: core}
}

func seedPatient(t *testing.T, m *monitor.Monitor) models.Patient {
	t.Helper()
	p := models.Patient{ID: uuid.NewString(), Name: "Ana Ruiz"}
	require.NoError(t, m.Link.UpsertPatient(context.Background(), &p))
	return p
}

func patientCtx(patientID string) context.Context {
	return WithSession(context.Background(), models.Session{UserID: patientID, Role: models.RolePatient})
}

func TestSubmitReadingAndGetDoctorAlerts(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)

	patient := seedPatient(t, ts.monitor)
	doctorID := uuid.NewString()

	linkResp, err := ts.client.LinkDoctor(context.Background(), &LinkDoctorRequest{DoctorId: doctorID, PatientId: patient.ID})
	require.NoError(t, err)
	require.True(t, linkResp.Status.Success, linkResp.Status.Message)
	assert.Equal(t, models.LinkStatusActive, linkResp.Link.Status)

	resp, err := ts.client.SubmitReading(patientCtx(patient.ID), &SubmitReadingRequest{
		PatientId: patient.ID,
		Type:      string(models.VitalTypeHeartRate),
		Value:     "45",
	})
	require.NoError(t, err)
	require.True(t, resp.Status.Success, resp.Status.Message)
	assert.Equal(t, models.StatusCritical, resp.Reading.Status)
	require.Len(t, resp.Notifications, 1)
	assert.Empty(t, resp.DeliveryErrors)

	alerts, err := ts.client.GetDoctorAlerts(context.Background(), &DoctorRequest{DoctorId: doctorID})
	require.NoError(t, err)
	require.True(t, alerts.Status.Success)
	require.Len(t, alerts.Alerts, 2)
	assert.Equal(t, alerting.RuleCriticalStatus, alerts.Alerts[0].Rule)

	list, err := ts.client.ListNotifications(context.Background(), &ListNotificationsRequest{RecipientId: doctorID})
	require.NoError(t, err)
	require.True(t, list.Status.Success)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.Unread)

	read, err := ts.client.MarkNotificationRead(context.Background(), &MarkNotificationReadRequest{
		RecipientId:    doctorID,
		NotificationId: list.Notifications[0].ID,
	})
	require.NoError(t, err)
	assert.True(t, read.Status.Success)

	list, err = ts.client.ListNotifications(context.Background(), &ListNotificationsRequest{RecipientId: doctorID, UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
	assert.Zero(t, list.Unread)
}

func TestSubmitReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)
	patient := seedPatient(t, ts.monitor)

	tests := []struct {
		name    string
		ctx     context.Context
		req     *SubmitReadingRequest
		message string
	}{
		{"empty patient id", patientCtx(patient.ID), &SubmitReadingRequest{Type: "heart_rate", Value: "72"}, "validation error"},
		{"unknown type", patientCtx(patient.ID), &SubmitReadingRequest{PatientId: patient.ID, Type: "weight", Value: "72"}, "validation error"},
		{"empty value", patientCtx(patient.ID), &SubmitReadingRequest{PatientId: patient.ID, Type: "heart_rate"}, "validation error"},
		{"not positive", patientCtx(patient.ID), &SubmitReadingRequest{PatientId: patient.ID, Type: "heart_rate", Value: "-5"}, "invalid heart_rate reading"},
		{"recorded in the future", patientCtx(patient.ID), &SubmitReadingRequest{PatientId: patient.ID, Type: "heart_rate", Value: "130", RecordedAt: time.Now().AddDate(1, 0, 0)}, "recorded time is in the future"},
		{"too many decimals", patientCtx(patient.ID), &SubmitReadingRequest{PatientId: patient.ID, Type: "temperature", Value: "100.36"}, "one decimal place"},
		{"no session", context.Background(), &SubmitReadingRequest{PatientId: patient.ID, Type: "heart_rate", Value: "72"}, monitor.ErrMissingSession.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ts.client.SubmitReading(tt.ctx, tt.req)
			assert.NoError(t, err)
			assert.False(t, r.Status.Success, "expected SubmitReading to fail")
			assert.True(t, strings.Contains(r.Status.Message, tt.message), "unexpected message %q", r.Status.Message)
		})
	}
}

func TestRateLimitInterceptor_SubmitReading(t *testing.T) {
	common.SetTestLoggerNop()

	limiterStore := monitor.NewRateLimiterStore(2, 2)
	ts := startTestServerWithLimiter(t, limiterStore)
	patient := seedPatient(t, ts.monitor)
	ctx := patientCtx(patient.ID)

	req := &SubmitReadingRequest{PatientId: patient.ID, Type: "temperature", Value: "98.4"}

	// First 2 requests should pass
	for i := range 2 {
		_, err := ts.client.SubmitReading(ctx, req)
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	// 3rd request should fail immediately
	_, err := ts.client.SubmitReading(ctx, req)
	require.Error(t, err, "expected third request to be rate limited")

	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, codes.ResourceExhausted, st.Code(), "expected ResourceExhausted code")

	limiterResp, err := ts.client.PostLimiter(ctx, &PostLimiterRequest{
		PatientId:    patient.ID,
		PatientRate:  3,
		PatientBurst: 2,
	})
	require.NoError(t, err)
	require.True(t, limiterResp.Status.Success)

	_, err = ts.client.SubmitReading(ctx, req)
	require.NoError(t, err, "expected request with a fresh limiter to pass")
}

func TestPostLimiter_WithoutStore(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)

	r, err := ts.client.PostLimiter(context.Background(), &PostLimiterRequest{PatientId: uuid.NewString(), PatientRate: 1, PatientBurst: 1})
	require.NoError(t, err)
	assert.False(t, r.Status.Success)
	assert.Contains(t, r.Status.Message, "No effect")

	r, err = ts.client.PostLimiter(context.Background(), &PostLimiterRequest{})
	require.NoError(t, err)
	assert.Contains(t, r.Status.Message, "validation error")
}

func TestGetDoctorAlerts_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		ts := startTestServer(t)
		r, err := ts.client.GetDoctorAlerts(context.Background(), &DoctorRequest{DoctorId: ""})
		assert.NoError(t, err)
		assert.False(t, r.Status.Success, "expected GetDoctorAlerts to fail")
		assert.True(t, strings.Contains(r.Status.Message, "validation error"), "expected GetDoctorAlerts to fail with validation error")
	}

	{
		ts := startTestServer(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockIAlert := mocks.NewMockIAlert(ctrl)
		ts.monitor.Alert = mockIAlert

		doctorID := uuid.NewString()
		mockIAlert.EXPECT().
			DoctorAlerts(gomock.Any(), gomock.Eq(doctorID)).
			Return(nil, fmt.Errorf("test error")).
			Times(1)

		r, err := ts.client.GetDoctorAlerts(context.Background(), &DoctorRequest{DoctorId: doctorID})
		assert.NoError(t, err)
		assert.False(t, r.Status.Success, "expected GetDoctorAlerts to fail")
		assert.True(t, strings.Contains(r.Status.Message, "test error"), "expected GetDoctorAlerts to fail with test error")
	}
}

func TestMarkNotificationRead_Unknown(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)

	r, err := ts.client.MarkNotificationRead(context.Background(), &MarkNotificationReadRequest{
		RecipientId:    uuid.NewString(),
		NotificationId: uuid.NewString(),
	})
	require.NoError(t, err)
	assert.False(t, r.Status.Success)
	assert.Equal(t, monitor.ErrNotificationNotFound.Error(), r.Status.Message)
}

func TestSubscribeNotifications(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)

	patient := seedPatient(t, ts.monitor)
	doctorID := uuid.NewString()
	_, err := ts.monitor.Link.LinkDoctor(context.Background(), doctorID, patient.ID)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(WithSession(context.Background(), models.Session{UserID: patient.ID, Role: models.RolePatient}))
	defer cancel()

	stream, err := ts.client.SubscribeNotifications(ctx, &SubscribeNotificationsRequest{RecipientId: patient.ID})
	require.NoError(t, err)
	header, err := stream.Header()
	require.NoError(t, err)
	require.Equal(t, []string{"true"}, header.Get("x-subscribed"))

	_, err = ts.client.SubmitReading(patientCtx(patient.ID), &SubmitReadingRequest{
		PatientId: patient.ID,
		Type:      string(models.VitalTypeBloodPressure),
		Value:     "150/95",
	})
	require.NoError(t, err)

	event, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, event.Toast, "the submitter sees a toast for an abnormal reading")
	assert.Equal(t, models.PriorityHigh, event.Toast.Priority)

	reminder := models.Reminder{
		RecipientID: patient.ID,
		Kind:        models.NotificationKindSystem,
		Message:     "Please recharge your cuff",
		DueAt:       time.Now().Add(-time.Second),
	}
	require.NoError(t, ts.monitor.Reminder.ScheduleReminder(context.Background(), &reminder))
	_, err = ts.monitor.Reminder.DispatchDueReminders(context.Background(), time.Now())
	require.NoError(t, err)

	event, err = stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, event.Change)
	assert.Equal(t, realtime.ChangeInsert, event.Change.Op)
	assert.Equal(t, "Please recharge your cuff", event.Change.Notification.Message)
}

func TestSubscribeNotifications_Rejections(t *testing.T) {
	common.SetTestLoggerNop()
	ts := startTestServer(t)
	recipientID := uuid.NewString()

	tests := []struct {
		name string
		ctx  context.Context
		code codes.Code
	}{
		{"no session", context.Background(), codes.Unauthenticated},
		{"someone else", patientCtx(uuid.NewString()), codes.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := ts.client.SubscribeNotifications(tt.ctx, &SubscribeNotificationsRequest{RecipientId: recipientID})
			require.NoError(t, err)
			_, err = stream.Recv()
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}
