package realtime

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	_ "github.com/Sinon1310/CareSync-sub000/pkg/testing"
)

func TestSubscribeToNewReadings(t *testing.T) {
	common.SetTestLoggerNop()
	hub := NewHub()

	var got []string
	unsubscribe, err := hub.SubscribeToNewReadings([]string{"p1", "p2"}, func(r models.VitalReading) {
		got = append(got, r.ID)
	})
	require.NoError(t, err)

	hub.PublishReading(models.VitalReading{ID: "r1", PatientID: "p1"})
	hub.PublishReading(models.VitalReading{ID: "r2", PatientID: "p3"})
	hub.PublishReading(models.VitalReading{ID: "r3", PatientID: "p2"})
	hub.PublishReading(models.VitalReading{ID: "r4", PatientID: "p1"})

	assert.Equal(t, []string{"r1", "r3", "r4"}, got)

	unsubscribe()
	unsubscribe()
	hub.PublishReading(models.VitalReading{ID: "r5", PatientID: "p1"})
	assert.Len(t, got, 3)
}

func TestSubscribe_DuplicatePatientDeliversOnce(t *testing.T) {
	hub := NewHub()
	count := 0
	_, err := hub.SubscribeToNewReadings([]string{"p1", "p1"}, func(models.VitalReading) { count++ })
	require.NoError(t, err)

	hub.PublishReading(models.VitalReading{PatientID: "p1"})
	assert.Equal(t, 1, count)
}

func TestSubscribeToNotifications(t *testing.T) {
	hub := NewHub()

	var changes []NotificationChange
	_, err := hub.SubscribeToNotifications("d1", func(c NotificationChange) { changes = append(changes, c) })
	require.NoError(t, err)

	hub.PublishNotificationChange(ChangeInsert, models.Notification{ID: "n1", RecipientID: "d1"})
	hub.PublishNotificationChange(ChangeInsert, models.Notification{ID: "n2", RecipientID: "d2"})
	hub.PublishNotificationChange(ChangeUpdate, models.Notification{ID: "n1", RecipientID: "d1", Read: true})
	hub.PublishNotificationChange(ChangeDelete, models.Notification{ID: "n1", RecipientID: "d1"})

	require.Len(t, changes, 3)
	assert.Equal(t, ChangeInsert, changes[0].Op)
	assert.True(t, changes[1].Notification.Read)
	assert.Equal(t, ChangeDelete, changes[2].Op)
}

func TestShowToast(t *testing.T) {
	hub := NewHub()

	var toasts []alerting.Alert
	unsubscribe, err := hub.SubscribeToToasts("p1", func(a alerting.Alert) { toasts = append(toasts, a) })
	require.NoError(t, err)
	defer unsubscribe()

	hub.ShowToast("p1", alerting.Alert{ID: "a1"})
	hub.ShowToast("d1", alerting.Alert{ID: "a2"})

	require.Len(t, toasts, 1)
	assert.Equal(t, "a1", toasts[0].ID)
}

func TestPanickingSubscriberIsIsolated(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.ErrorLevel)
	defer common.SetTestLoggerNop()

	hub := NewHub()
	_, err := hub.SubscribeToNewReadings([]string{"p1"}, func(models.VitalReading) { panic("boom") })
	require.NoError(t, err)

	delivered := false
	_, err = hub.SubscribeToNewReadings([]string{"p1"}, func(models.VitalReading) { delivered = true })
	require.NoError(t, err)

	assert.NotPanics(t, func() { hub.PublishReading(models.VitalReading{PatientID: "p1"}) })
	assert.True(t, delivered)

	logs := common.ParseLogs(&buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "Subscriber panicked", logs[0]["msg"])
	assert.Equal(t, "readings", logs[0]["topic"])
}

func TestUnsubscribeInsideCallback(t *testing.T) {
	hub := NewHub()

	count := 0
	var unsubscribe Unsubscribe
	unsubscribe, err := hub.SubscribeToNewReadings([]string{"p1"}, func(models.VitalReading) {
		count++
		unsubscribe()
	})
	require.NoError(t, err)

	hub.PublishReading(models.VitalReading{PatientID: "p1"})
	hub.PublishReading(models.VitalReading{PatientID: "p1"})
	assert.Equal(t, 1, count)
}

func TestClose(t *testing.T) {
	hub := NewHub()

	count := 0
	unsubscribe, err := hub.SubscribeToNewReadings([]string{"p1"}, func(models.VitalReading) { count++ })
	require.NoError(t, err)

	hub.Close()
	hub.Close()

	select {
	case <-hub.Done():
	default:
		t.Fatal("Done must be closed after Close")
	}

	hub.PublishReading(models.VitalReading{PatientID: "p1"})
	assert.Zero(t, count)
	unsubscribe()

	_, err = hub.SubscribeToNotifications("d1", func(NotificationChange) {})
	var subErr *SubscriptionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "notifications", subErr.Topic)
	assert.ErrorIs(t, err, ErrHubClosed)
}
