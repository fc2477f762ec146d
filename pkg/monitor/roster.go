package monitor

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
)

// readingsPerType is how much history is needed to rebuild an entry: the
// latest value and the one before it for the trend.
const readingsPerType = 2

// rebuildEntry recomputes a patient's roster entry from stored readings.
func (m *Monitor) rebuildEntry(ctx context.Context, patient models.Patient) (roster.Entry, []models.VitalReading, error) {
	var history []models.VitalReading
	for _, t := range models.VitalTypes {
		var latest []models.VitalReading
		err := m.Db.Conn.WithContext(ctx).
			Where("patient_id = ? AND type = ?", patient.ID, t).
			Order("recorded_at desc").
			Limit(readingsPerType).
			Find(&latest).Error
		if err != nil {
			return roster.Entry{}, nil, err
		}
		history = append(history, latest...)
	}

	slices.SortStableFunc(history, func(a, b models.VitalReading) int {
		return a.RecordedAt.Compare(b.RecordedAt)
	})

	entry := roster.Entry{PatientID: patient.ID, PatientName: patient.Name}
	for i := range history {
		entry, _ = roster.Merge(entry, patient.Name, &history[i])
	}
	return entry, history, nil
}

// seedCache replays history into the cache in recording order.
func (m *Monitor) seedCache(ctx context.Context, patientName string, history []models.VitalReading) {
	if m.Cache == nil {
		return
	}
	for i := range history {
		if _, err := m.Cache.Apply(ctx, patientName, &history[i]); err != nil {
			deliveryFailures.WithLabelValues(stageCache).Inc()
			common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryRosterSnapshot).
				Warn("Roster cache seed failed", zap.String("patient_id", history[i].PatientID), zap.Error(err))
			return
		}
	}
}

// applyToRoster records a freshly stored reading in the cache. A patient the
// cache has not seen yet is rebuilt from the store first, so the entry never
// holds only part of the patient's vitals.
func (m *Monitor) applyToRoster(ctx context.Context, patientName string, reading *models.VitalReading) {
	if m.Cache == nil {
		return
	}
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryRosterSnapshot)

	_, found, err := m.Cache.Get(ctx, reading.PatientID)
	if err != nil {
		deliveryFailures.WithLabelValues(stageCache).Inc()
		logger.Warn("Roster cache lookup failed", zap.String("patient_id", reading.PatientID), zap.Error(err))
		return
	}

	if !found {
		_, history, err := m.rebuildEntry(ctx, models.Patient{ID: reading.PatientID, Name: patientName})
		if err != nil {
			logger.Warn("Roster rebuild failed", zap.String("patient_id", reading.PatientID), zap.Error(err))
			return
		}
		m.seedCache(ctx, patientName, history)
		return
	}

	if _, err := m.Cache.Apply(ctx, patientName, reading); err != nil {
		deliveryFailures.WithLabelValues(stageCache).Inc()
		logger.Warn("Roster cache update failed", zap.String("patient_id", reading.PatientID), zap.Error(err))
	}
}

func (m *Monitor) patientFacts(ctx context.Context, patient models.Patient) (alerting.PatientFacts, error) {
	if m.Cache != nil {
		entry, found, err := m.Cache.Get(ctx, patient.ID)
		switch {
		case err != nil:
			common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryRosterSnapshot).
				Warn("Roster cache lookup failed, reading from store", zap.String("patient_id", patient.ID), zap.Error(err))
		case found:
			facts := entry.Facts()
			facts.PatientName = patient.Name
			return facts, nil
		}
	}

	entry, history, err := m.rebuildEntry(ctx, patient)
	if err != nil {
		return alerting.PatientFacts{}, err
	}
	m.seedCache(ctx, patient.Name, history)
	return entry.Facts(), nil
}
