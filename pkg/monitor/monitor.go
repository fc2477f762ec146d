package monitor

import (
	"context"
	"time"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
)

type IReading interface {
	SubmitReading(ctx context.Context, sess models.Session, patientID string, vitalType models.VitalType, raw string, recordedAt time.Time) (*models.VitalReading, []models.Notification, error)
	GetPatientReadings(ctx context.Context, patientID string, limit int) ([]models.VitalReading, error)
}

type ILink interface {
	UpsertPatient(ctx context.Context, patient *models.Patient) error
	LinkDoctor(ctx context.Context, doctorID string, patientID string) (*models.DoctorPatientLink, error)
	UnlinkDoctor(ctx context.Context, doctorID string, patientID string) error
	FetchActiveLinks(ctx context.Context, patientID string) ([]string, error)
	GetDoctorPatients(ctx context.Context, doctorID string) ([]models.Patient, error)
}

type INotification interface {
	PersistNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]models.Notification, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID string, notificationID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	ClearNotification(ctx context.Context, recipientID string, notificationID string) error
	ClearAll(ctx context.Context, recipientID string) (int64, error)
}

type IAlert interface {
	DoctorAlerts(ctx context.Context, doctorID string) ([]alerting.Alert, error)
	PatientAlerts(ctx context.Context, patientID string) ([]alerting.Alert, error)
}

type IReminder interface {
	ScheduleReminder(ctx context.Context, reminder *models.Reminder) error
	DispatchDueReminders(ctx context.Context, now time.Time) (int, error)
}

// Display is where toasts end up. It never fails: a toast nobody is watching
// is simply dropped.
type Display interface {
	ShowToast(recipientID string, alert alerting.Alert)
}

type Monitor struct {
	Db        db.DB
	Hub       *realtime.Hub
	Cache     roster.Cache
	Board     *alerting.Board
	Generator *alerting.Generator
	Display   Display
	Now       func() time.Time

	Reading      IReading
	Link         ILink
	Notification INotification
	Alert        IAlert
	Reminder     IReminder
}

type ServiceOpts struct {
	Reading      IReading
	Link         ILink
	Notification INotification
	Alert        IAlert
	Reminder     IReminder
}

// New wires a monitor with its own service implementations. The hub doubles as
// the toast display.
func New(database db.DB, hub *realtime.Hub, cache roster.Cache) *Monitor {
	m := &Monitor{
		Db:    database,
		Hub:   hub,
		Cache: cache,
		Board: alerting.NewBoard(),
	}
	if hub != nil {
		m.Display = hub
	}
	m.Generator = alerting.NewGenerator(m.now)

	return m.WithServices(ServiceOpts{
		Reading:      m.GetIReading(),
		Link:         m.GetILink(),
		Notification: m.GetINotification(),
		Alert:        m.GetIAlert(),
		Reminder:     m.GetIReminder(),
	})
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	if opts.Link != nil {
		m.Link = opts.Link
	}
	if opts.Notification != nil {
		m.Notification = opts.Notification
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Reminder != nil {
		m.Reminder = opts.Reminder
	}
	return m
}

func (m *Monitor) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
