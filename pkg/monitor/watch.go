package monitor

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
)

// WatchDoctor keeps a doctor's alert set live: onAlerts gets the full sorted
// set once immediately and again after every new reading from one of the
// doctor's patients. The roster is the one linked when the watch starts.
//
// The watch ends when ctx is done or the returned function is called,
// whichever comes first.
func (m *Monitor) WatchDoctor(ctx context.Context, sess models.Session, onAlerts func([]alerting.Alert)) (realtime.Unsubscribe, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategorySession).
		With(zap.String("doctor_id", sess.UserID))

	if sess.IsZero() {
		return nil, ErrMissingSession
	}
	if sess.Role != models.RoleDoctor {
		return nil, ErrNotDoctor
	}
	if m.Hub == nil || m.Link == nil || m.Alert == nil {
		return nil, fmt.Errorf("realtime services not available")
	}

	patients, err := m.Link.GetDoctorPatients(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	patientIDs := common.Mapper(patients, func(p models.Patient) string { return p.ID })

	refresh := func() {
		alerts, err := m.Alert.DoctorAlerts(ctx, sess.UserID)
		if err != nil {
			logger.Error("Alert refresh failed", zap.Error(err))
			return
		}
		onAlerts(alerts)
	}

	unsubscribe, err := m.Hub.SubscribeToNewReadings(patientIDs, func(models.VitalReading) { refresh() })
	if err != nil {
		return nil, err
	}

	logger.Info("Doctor watch started", zap.Int("patients", len(patientIDs)))
	refresh()

	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			unsubscribe()
			close(done)
			logger.Info("Doctor watch stopped")
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	return stop, nil
}
