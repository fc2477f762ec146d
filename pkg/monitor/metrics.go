package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stageCache       = "cache"
	stageRecipients  = "recipients"
	stagePersistence = "persistence"
	stageReminder    = "reminder"
)

var (
	readingsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpm_readings_classified_total",
		Help: "Stored vital readings by type and status",
	}, []string{"type", "status"})

	readingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpm_readings_rejected_total",
		Help: "Readings rejected before classification",
	}, []string{"type"})

	alertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpm_alerts_raised_total",
		Help: "Alerts that were new to a recipient's board",
	}, []string{"kind", "priority"})

	notificationsPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpm_notifications_persisted_total",
		Help: "Notifications written to the store",
	}, []string{"kind"})

	deliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpm_delivery_failures_total",
		Help: "Side effects that failed after a reading was stored",
	}, []string{"stage"})

	remindersDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpm_reminders_dispatched_total",
		Help: "Reminders turned into notifications",
	})
)
