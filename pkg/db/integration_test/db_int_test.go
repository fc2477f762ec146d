package test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

func TestFileDatabaseRoundTrip(t *testing.T) {
	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}
	common.SetTestLoggerNop()

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(common.EnvKeyRPMDbPath, testPath)

	instance := db.GetInstance(db.UseSqliteDialector())
	if instance == nil || instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}

	patient := models.Patient{ID: uuid.NewString(), Name: "Ana Ruiz"}
	require.NoError(t, instance.Conn.Create(&patient).Error)

	m, err := vitals.Parse(models.VitalTypeTemperature, "101.2")
	require.NoError(t, err)

	reading := models.VitalReading{
		ID:         uuid.NewString(),
		PatientID:  patient.ID,
		Type:       m.Type,
		Value:      m.Value,
		Display:    m.Display(),
		Unit:       vitals.Unit(m.Type),
		Status:     vitals.Classify(m),
		RecordedAt: time.Now(),
	}
	require.NoError(t, instance.Conn.Create(&reading).Error)

	var loaded models.VitalReading
	require.NoError(t, instance.Conn.First(&loaded, "id = ?", reading.ID).Error)
	assert.Equal(t, reading.Status, vitals.ClassifyReading(&loaded))
	assert.Equal(t, "101.2", loaded.Display)
}
