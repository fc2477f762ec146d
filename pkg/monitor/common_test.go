package monitor

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor/mocks"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
)

type mockSet struct {
	Link         *mocks.MockILink
	Notification *mocks.MockINotification
	Alert        *mocks.MockIAlert
	Reminder     *mocks.MockIReminder
}

type useMocks struct {
	link         bool
	notification bool
	alert        bool
	reminder     bool
}

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, use useMocks) (*gomock.Controller, *Monitor, mockSet) {
	ctrl := gomock.NewController(t)

	set := mockSet{
		Link:         mocks.NewMockILink(ctrl),
		Notification: mocks.NewMockINotification(ctrl),
		Alert:        mocks.NewMockIAlert(ctrl),
		Reminder:     mocks.NewMockIReminder(ctrl),
	}

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	hub := realtime.NewHub()
	t.Cleanup(hub.Close)

	m := New(*dbInstance, hub, roster.NewMemoryCache())

	opts := ServiceOpts{}
	if use.link {
		opts.Link = set.Link
	}
	if use.notification {
		opts.Notification = set.Notification
	}
	if use.alert {
		opts.Alert = set.Alert
	}
	if use.reminder {
		opts.Reminder = set.Reminder
	}
	m.WithServices(opts)

	return ctrl, m, set
}

func seedPatient(t *testing.T, m *Monitor, name string) models.Patient {
	t.Helper()
	p := models.Patient{ID: uuid.NewString(), Name: name}
	require.NoError(t, m.GetILink().UpsertPatient(context.Background(), &p))
	return p
}

func seedLinkedDoctors(t *testing.T, m *Monitor, patientID string, count int) []string {
	t.Helper()
	doctorIDs := make([]string, count)
	for i := range doctorIDs {
		doctorIDs[i] = uuid.NewString()
		_, err := m.GetILink().LinkDoctor(context.Background(), doctorIDs[i], patientID)
		require.NoError(t, err)
	}
	return doctorIDs
}

func patientSession(patientID string) models.Session {
	return models.Session{UserID: patientID, Role: models.RolePatient}
}

func doctorSession(doctorID string) models.Session {
	return models.Session{UserID: doctorID, Role: models.RoleDoctor}
}

// toastRecorder collects toasts shown to one recipient.
type toastRecorder struct {
	mu     sync.Mutex
	toasts []alerting.Alert
}

func recordToasts(t *testing.T, hub *realtime.Hub, recipientID string) *toastRecorder {
	t.Helper()
	rec := &toastRecorder{}
	unsubscribe, err := hub.SubscribeToToasts(recipientID, func(a alerting.Alert) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.toasts = append(rec.toasts, a)
	})
	require.NoError(t, err)
	t.Cleanup(unsubscribe)
	return rec
}

func (r *toastRecorder) all() []alerting.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]alerting.Alert(nil), r.toasts...)
}
