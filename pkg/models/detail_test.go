package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDetail(t *testing.T) {
	n := Notification{Kind: NotificationKindCritical}
	require.NoError(t, n.SetDetail(VitalDetail{
		ReadingID:  "r-1",
		VitalType:  VitalTypeBloodPressure,
		VitalValue: "185/95",
		Status:     StatusCritical,
	}))

	vital, ok := n.VitalDetail()
	assert.True(t, ok)
	assert.Equal(t, "185/95", vital.VitalValue)
	assert.Equal(t, VitalTypeBloodPressure, vital.VitalType)

	_, ok = n.AppointmentDetail()
	assert.False(t, ok, "critical notification must not expose an appointment detail")
}

func TestNotificationDetail_WrongKind(t *testing.T) {
	n := Notification{Kind: NotificationKindAppointment}
	err := n.SetDetail(VitalDetail{VitalType: VitalTypeHeartRate})
	assert.Error(t, err)
	assert.Nil(t, n.Detail)

	scheduled := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, n.SetDetail(AppointmentDetail{AppointmentID: "apt-1", ScheduledFor: scheduled}))

	apt, ok := n.AppointmentDetail()
	assert.True(t, ok)
	assert.Equal(t, "apt-1", apt.AppointmentID)
	assert.True(t, scheduled.Equal(apt.ScheduledFor))
}

func TestReminderDetail(t *testing.T) {
	r := Reminder{Kind: NotificationKindMedication}
	require.NoError(t, r.SetDetail(MedicationDetail{MedicationID: "m-1", Name: "Metformin", Dosage: "500mg"}))
	assert.Contains(t, string(r.Detail), "Metformin")

	assert.Error(t, r.SetDetail(AppointmentDetail{AppointmentID: "apt-1"}))
}

func TestNotificationExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, Notification{}.Expired(now))
	assert.True(t, Notification{ExpiresAt: &past}.Expired(now))
	assert.True(t, Notification{ExpiresAt: &now}.Expired(now))
	assert.False(t, Notification{ExpiresAt: &future}.Expired(now))
}
