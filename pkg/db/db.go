package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(
			&models.Patient{},
			&models.VitalReading{},
			&models.DoctorPatientLink{},
			&models.Notification{},
			&models.Reminder{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if dialector.Name() != "sqlite" {
			return
		}

		if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatal("Failed to enable sqlite foreign key support", err)
		}

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyRPMDbPath); !found {
		dbPath = "monitor.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

// UsePostgresDialector reads the DSN from RPM_POSTGRES_DSN, e.g.
// "host=localhost user=rpm password=rpm dbname=rpm port=5432 sslmode=disable".
func UsePostgresDialector() gorm.Dialector {
	dsn, found := os.LookupEnv(common.EnvKeyRPMPostgresDSN)
	if !found || dsn == "" {
		log.Fatalf("%s must be set when %s=postgres", common.EnvKeyRPMPostgresDSN, common.EnvKeyRPMDBType)
	}
	return postgres.Open(dsn)
}

// UseDialector picks the dialector named by RPM_DB_TYPE: file (default),
// memory or postgres.
func UseDialector(dbType string) gorm.Dialector {
	switch dbType {
	case "", "file":
		return UseSqliteDialector()
	case "memory":
		return UseMemorySqliteDialector()
	case "postgres":
		return UsePostgresDialector()
	}
	log.Fatalf("Unknown %s %q, expected file, memory or postgres", common.EnvKeyRPMDBType, dbType)
	return nil
}
