package monitor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
)

// doctorAlerts regenerates the alert set for a doctor's whole roster and
// replaces the doctor's board with it. Alerts new to the board are toasted.
func (m *Monitor) doctorAlerts(ctx context.Context, doctorID string) ([]alerting.Alert, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryAlert)

	if m.Link == nil {
		return nil, fmt.Errorf("link service not available")
	}

	patients, err := m.Link.GetDoctorPatients(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	facts := make([]alerting.PatientFacts, 0, len(patients))
	for _, p := range patients {
		f, err := m.patientFacts(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("load facts for patient %s: %w", p.ID, err)
		}
		facts = append(facts, f)
	}

	alerts := m.Generator.ForRoster(facts)
	added := m.Board.Replace(doctorID, alerts)

	for _, a := range added {
		alertsRaised.WithLabelValues(string(a.Kind), string(a.Priority)).Inc()
		logger.Info("Alert found", zap.String("doctor_id", doctorID), zap.Reflect("alert", a))

		if a.Urgent() && m.Display != nil {
			m.Display.ShowToast(doctorID, a)
		}
	}

	return alerts, nil
}

func (m *Monitor) patientAlerts(ctx context.Context, patientID string) ([]alerting.Alert, error) {
	patient, err := m.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	f, err := m.patientFacts(ctx, *patient)
	if err != nil {
		return nil, err
	}
	return m.Generator.ForRoster([]alerting.PatientFacts{f}), nil
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) DoctorAlerts(ctx context.Context, doctorID string) ([]alerting.Alert, error) {
	return ia.monitor.doctorAlerts(ctx, doctorID)
}

func (ia *IAlertImpl) PatientAlerts(ctx context.Context, patientID string) ([]alerting.Alert, error) {
	return ia.monitor.patientAlerts(ctx, patientID)
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
