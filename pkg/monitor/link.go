package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

func (m *Monitor) upsertPatient(ctx context.Context, patient *models.Patient) error {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryLink)

	patient.Name = strings.TrimSpace(patient.Name)
	if patient.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}

	err := m.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(patient).Error

	if err == nil {
		logger.Info("Upserted patient", zap.Reflect("patient", patient))
	}
	return err
}

func (m *Monitor) linkDoctor(ctx context.Context, doctorID string, patientID string) (*models.DoctorPatientLink, error) {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryLink)

	if doctorID == "" {
		return nil, fmt.Errorf("doctor id is required")
	}
	if _, err := m.findPatient(ctx, patientID); err != nil {
		return nil, err
	}

	link := models.DoctorPatientLink{
		DoctorID:  doctorID,
		PatientID: patientID,
		Status:    models.LinkStatusActive,
	}

	err := m.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "patient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&link).Error
	if err != nil {
		return nil, err
	}

	var stored models.DoctorPatientLink
	if err := m.Db.Conn.WithContext(ctx).
		First(&stored, "doctor_id = ? AND patient_id = ?", doctorID, patientID).Error; err != nil {
		return nil, err
	}

	logger.Info("Doctor linked", zap.Reflect("link", stored))
	return &stored, nil
}

func (m *Monitor) unlinkDoctor(ctx context.Context, doctorID string, patientID string) error {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryLink)

	result := m.Db.Conn.WithContext(ctx).
		Model(&models.DoctorPatientLink{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Update("status", models.LinkStatusInactive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	logger.Info("Doctor unlinked", zap.String("doctor_id", doctorID), zap.String("patient_id", patientID))
	return nil
}

func (m *Monitor) fetchActiveLinks(ctx context.Context, patientID string) ([]string, error) {
	var doctorIDs []string
	err := m.Db.Conn.WithContext(ctx).
		Model(&models.DoctorPatientLink{}).
		Where("patient_id = ? AND status = ?", patientID, models.LinkStatusActive).
		Order("doctor_id").
		Pluck("doctor_id", &doctorIDs).Error
	return doctorIDs, err
}

func (m *Monitor) getDoctorPatients(ctx context.Context, doctorID string) ([]models.Patient, error) {
	var patients []models.Patient
	err := m.Db.Conn.WithContext(ctx).
		Joins("JOIN doctor_patient_links ON doctor_patient_links.patient_id = patients.id").
		Where("doctor_patient_links.doctor_id = ? AND doctor_patient_links.status = ?", doctorID, models.LinkStatusActive).
		Order("patients.name, patients.id").
		Find(&patients).Error
	return patients, err
}

type ILinkImpl struct {
	monitor *Monitor
}

func (il *ILinkImpl) UpsertPatient(ctx context.Context, patient *models.Patient) error {
	return il.monitor.upsertPatient(ctx, patient)
}

func (il *ILinkImpl) LinkDoctor(ctx context.Context, doctorID string, patientID string) (*models.DoctorPatientLink, error) {
	return il.monitor.linkDoctor(ctx, doctorID, patientID)
}

func (il *ILinkImpl) UnlinkDoctor(ctx context.Context, doctorID string, patientID string) error {
	return il.monitor.unlinkDoctor(ctx, doctorID, patientID)
}

func (il *ILinkImpl) FetchActiveLinks(ctx context.Context, patientID string) ([]string, error) {
	return il.monitor.fetchActiveLinks(ctx, patientID)
}

func (il *ILinkImpl) GetDoctorPatients(ctx context.Context, doctorID string) ([]models.Patient, error) {
	return il.monitor.getDoctorPatients(ctx, doctorID)
}

func (m *Monitor) GetILink() ILink {
	return &ILinkImpl{monitor: m}
}
