package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

const (
	defaultReadingsLimit = 50
	maxReadingsLimit     = 500

	// maxClockSkew is how far ahead of server time a device clock may run.
	maxClockSkew = 5 * time.Minute
)

// readingPlan is everything decided about a stored reading before any side
// effect runs.
type readingPlan struct {
	reading     models.VitalReading
	patientName string
	toast       *alerting.Alert
}

func planReading(reading models.VitalReading, patientName string) readingPlan {
	plan := readingPlan{reading: reading, patientName: patientName}
	if a, ok := alerting.ReadingAlert(&reading, patientName); ok {
		plan.toast = &a
	}
	return plan
}

func (p readingPlan) notifiesDoctors() bool {
	return p.reading.Status != models.StatusNormal
}

func (m *Monitor) findPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := m.Db.Conn.WithContext(ctx).First(&patient, "id = ?", patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (m *Monitor) submitReading(
	ctx context.Context,
	sess models.Session,
	patientID string,
	vitalType models.VitalType,
	raw string,
	recordedAt time.Time,
) (*models.VitalReading, []models.Notification, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReading)

	if sess.IsZero() {
		return nil, nil, ErrMissingSession
	}

	measurement, err := vitals.Parse(vitalType, raw)
	if err != nil {
		readingsRejected.WithLabelValues(string(vitalType)).Inc()
		logger.Info("Reading rejected", zap.String("patient_id", patientID), zap.Error(err))
		return nil, nil, err
	}

	now := m.now()
	if recordedAt.IsZero() {
		recordedAt = now
	}
	if recordedAt.After(now.Add(maxClockSkew)) {
		readingsRejected.WithLabelValues(string(vitalType)).Inc()
		logger.Info("Reading rejected", zap.String("patient_id", patientID), zap.Time("recorded_at", recordedAt))
		return nil, nil, &vitals.InvalidReadingError{Type: vitalType, Raw: raw, Reason: "recorded time is in the future"}
	}

	patient, err := m.findPatient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}

	reading := models.VitalReading{
		ID:         uuid.NewString(),
		PatientID:  patient.ID,
		Type:       measurement.Type,
		Systolic:   measurement.Systolic,
		Diastolic:  measurement.Diastolic,
		Value:      measurement.Value,
		Display:    measurement.Display(),
		Unit:       vitals.Unit(measurement.Type),
		Status:     vitals.Classify(measurement),
		RecordedAt: recordedAt,
	}

	logger.Info("Reading classified", zap.Reflect("reading", reading))

	if err := m.Db.Conn.WithContext(ctx).Create(&reading).Error; err != nil {
		return nil, nil, fmt.Errorf("store reading: %w", err)
	}

	readingsClassified.WithLabelValues(string(reading.Type), string(reading.Status)).Inc()
	logger.Info("Reading saved", zap.String("reading_id", reading.ID), zap.String("status", string(reading.Status)))

	notifications, err := m.runReadingPlan(ctx, sess, planReading(reading, patient.Name))
	return &reading, notifications, err
}

// runReadingPlan executes the side effects of a stored reading. Ephemeral
// effects come first so that a failing store never hides a toast.
func (m *Monitor) runReadingPlan(ctx context.Context, sess models.Session, plan readingPlan) ([]models.Notification, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification)
	reading := plan.reading

	m.applyToRoster(ctx, plan.patientName, &reading)

	if plan.toast != nil && m.Display != nil {
		m.Display.ShowToast(sess.UserID, *plan.toast)
	}

	if m.Hub != nil {
		m.Hub.PublishReading(reading)
	}

	if !plan.notifiesDoctors() {
		return nil, nil
	}

	if m.Link == nil {
		return nil, &RecipientResolutionError{PatientID: reading.PatientID, Err: fmt.Errorf("link service not available")}
	}

	doctorIDs, err := m.Link.FetchActiveLinks(ctx, reading.PatientID)
	if err != nil {
		deliveryFailures.WithLabelValues(stageRecipients).Inc()
		logger.Error("Recipient resolution failed", zap.String("patient_id", reading.PatientID), zap.Error(err))
		return nil, &RecipientResolutionError{PatientID: reading.PatientID, Err: err}
	}

	drafts, err := alerting.ReadingNotifications(&reading, plan.patientName, doctorIDs, m.now())
	if err != nil {
		return nil, err
	}

	if m.Notification == nil {
		return nil, fmt.Errorf("notification service not available")
	}

	var (
		saved []models.Notification
		errs  error
	)
	for i := range drafts {
		n := drafts[i]
		if err := m.Notification.PersistNotification(ctx, &n); err != nil {
			deliveryFailures.WithLabelValues(stagePersistence).Inc()
			logger.Error("Notification not saved", zap.String("recipient_id", n.RecipientID), zap.Error(err))
			errs = multierr.Append(errs, &PersistenceError{RecipientID: n.RecipientID, Err: err})
			continue
		}
		saved = append(saved, n)
	}

	return saved, errs
}

func (m *Monitor) getPatientReadings(ctx context.Context, patientID string, limit int) ([]models.VitalReading, error) {
	if _, err := m.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultReadingsLimit
	}
	limit = min(limit, maxReadingsLimit)

	var readings []models.VitalReading
	err := m.Db.Conn.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("recorded_at desc").
		Limit(limit).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryReading)
	for _, r := range readings {
		if status := Reclassify(&r); status != r.Status {
			logger.Warn("Stored status differs from current classification",
				zap.String("reading_id", r.ID),
				zap.String("stored", string(r.Status)),
				zap.String("current", string(status)),
			)
		}
	}
	return readings, nil
}

// Reclassify derives the status of a stored reading from its values again.
func Reclassify(r *models.VitalReading) models.Status {
	return vitals.ClassifyReading(r)
}

type IReadingImpl struct {
	monitor *Monitor
}

func (ir *IReadingImpl) SubmitReading(
	ctx context.Context,
	sess models.Session,
	patientID string,
	vitalType models.VitalType,
	raw string,
	recordedAt time.Time,
) (*models.VitalReading, []models.Notification, error) {
	return ir.monitor.submitReading(ctx, sess, patientID, vitalType, raw, recordedAt)
}

func (ir *IReadingImpl) GetPatientReadings(ctx context.Context, patientID string, limit int) ([]models.VitalReading, error) {
	return ir.monitor.getPatientReadings(ctx, patientID, limit)
}

func (m *Monitor) GetIReading() IReading {
	return &IReadingImpl{monitor: m}
}
