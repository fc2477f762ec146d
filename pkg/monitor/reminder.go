package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

// appointmentGrace keeps an appointment reminder visible for a while after the
// appointment was due to start.
const appointmentGrace = time.Hour

func (m *Monitor) scheduleReminder(ctx context.Context, r *models.Reminder) error {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReminder)

	switch r.Kind {
	case models.NotificationKindAppointment, models.NotificationKindMedication, models.NotificationKindSystem:
	default:
		return fmt.Errorf("%w: kind %q can not be scheduled", ErrInvalidReminder, r.Kind)
	}
	if r.RecipientID == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidReminder)
	}
	if r.DueAt.IsZero() {
		return fmt.Errorf("%w: due time is required", ErrInvalidReminder)
	}
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidReminder)
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.DispatchedAt = nil
	r.NotificationID = ""

	if err := m.Db.Conn.WithContext(ctx).Create(r).Error; err != nil {
		return err
	}

	logger.Info("Reminder scheduled", zap.Reflect("reminder", r))
	return nil
}

func reminderNotification(r models.Reminder, now time.Time) models.Notification {
	n := models.Notification{
		RecipientID:        r.RecipientID,
		Kind:               r.Kind,
		Priority:           models.PriorityMedium,
		SubjectPatientID:   r.SubjectPatientID,
		SubjectPatientName: r.SubjectPatientName,
		Message:            r.Message,
		Detail:             r.Detail,
		CreatedAt:          now,
	}

	switch r.Kind {
	case models.NotificationKindAppointment:
		n.Title = "Appointment reminder"
		if apt, ok := n.AppointmentDetail(); ok && !apt.ScheduledFor.IsZero() {
			expires := apt.ScheduledFor.Add(appointmentGrace)
			n.ExpiresAt = &expires
		}
	case models.NotificationKindMedication:
		n.Title = "Medication reminder"
	default:
		n.Title = "Reminder"
		n.Priority = models.PriorityLow
	}
	return n
}

// dispatchDueReminders turns every due reminder into a notification. A
// reminder is claimed before its notification is written, so concurrent
// pollers never both deliver it; a failed write releases the claim for the
// next poll.
func (m *Monitor) dispatchDueReminders(ctx context.Context, now time.Time) (int, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReminder)

	if m.Notification == nil {
		return 0, fmt.Errorf("notification service not available")
	}

	var due []models.Reminder
	if err := m.Db.Conn.WithContext(ctx).
		Where("dispatched_at IS NULL AND due_at <= ?", now).
		Order("due_at, id").
		Find(&due).Error; err != nil {
		return 0, err
	}

	var errs error
	dispatched := 0

	for _, r := range due {
		claim := m.Db.Conn.WithContext(ctx).
			Model(&models.Reminder{}).
			Where("id = ? AND dispatched_at IS NULL", r.ID).
			Update("dispatched_at", now)
		if claim.Error != nil {
			errs = multierr.Append(errs, fmt.Errorf("claim reminder %s: %w", r.ID, claim.Error))
			continue
		}
		if claim.RowsAffected == 0 {
			continue
		}

		n := reminderNotification(r, now)
		if err := m.Notification.PersistNotification(ctx, &n); err != nil {
			deliveryFailures.WithLabelValues(stageReminder).Inc()
			logger.Error("Reminder not delivered", zap.String("reminder_id", r.ID), zap.Error(err))
			errs = multierr.Append(errs, &PersistenceError{RecipientID: r.RecipientID, Err: err})

			// released even when ctx is already done, or the reminder is lost
			release := m.Db.Conn.WithContext(context.WithoutCancel(ctx)).
				Model(&models.Reminder{}).
				Where("id = ?", r.ID).
				Update("dispatched_at", nil)
			if release.Error != nil {
				logger.Error("Reminder claim not released, requeue it by clearing dispatched_at",
					zap.String("reminder_id", r.ID),
					zap.String("recipient_id", r.RecipientID),
					zap.Error(release.Error))
				errs = multierr.Append(errs, fmt.Errorf("release reminder %s: %w", r.ID, release.Error))
			}
			continue
		}

		if err := m.Db.Conn.WithContext(ctx).
			Model(&models.Reminder{}).
			Where("id = ?", r.ID).
			Update("notification_id", n.ID).Error; err != nil {
			errs = multierr.Append(errs, err)
		}

		remindersDispatched.Inc()
		dispatched++
		logger.Info("Reminder dispatched", zap.String("reminder_id", r.ID), zap.String("notification_id", n.ID))

		if m.Display != nil {
			m.Display.ShowToast(r.RecipientID, alerting.FromNotification(n, alerting.RuleReminderDue))
		}
	}

	return dispatched, errs
}

// RunReminderPoller dispatches due reminders every interval until ctx is done.
func (m *Monitor) RunReminderPoller(ctx context.Context, interval time.Duration) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReminder)
	logger.Info("Reminder poller started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder poller stopped")
			return
		case <-ticker.C:
			count, err := m.Reminder.DispatchDueReminders(ctx, m.now())
			if err != nil {
				logger.Error("Reminder dispatch failed", zap.Error(err))
			}
			if count > 0 {
				logger.Info("Reminders dispatched", zap.Int("count", count))
			}
		}
	}
}

type IReminderImpl struct {
	monitor *Monitor
}

func (ir *IReminderImpl) ScheduleReminder(ctx context.Context, reminder *models.Reminder) error {
	return ir.monitor.scheduleReminder(ctx, reminder)
}

func (ir *IReminderImpl) DispatchDueReminders(ctx context.Context, now time.Time) (int, error) {
	return ir.monitor.dispatchDueReminders(ctx, now)
}

func (m *Monitor) GetIReminder() IReminder {
	return &IReminderImpl{monitor: m}
}
