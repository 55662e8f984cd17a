package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"maintenance-ticketing-server/config"
	"maintenance-ticketing-server/models"
)

var DB *gorm.DB

// Initialize sets up the database connection and runs migrations
func Initialize() error {
	// DB_URL takes precedence when set; otherwise the DSN is composed from
	// the individual config fields.
	connString := os.Getenv("DB_URL")
	if connString == "" {
		db := config.AppConfig.Database
		connString = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode,
		)
	}

	// Configure GORM logger
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection. TranslateError lets uniqueness conflicts
	// surface as gorm.ErrDuplicatedKey, which the services rely on for
	// duplicate-serial, duplicate-email and double-feedback detection.
	var err error
	DB, err = gorm.Open(postgres.Open(connString), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to database")

	// Run migrations
	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")

	return nil
}

// runMigrations creates or updates database tables. The unique indexes on
// devices.serial_number, technicians.email and post_service_feedback.ticket_id
// carry the invariants the request handlers depend on.
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Technician{},
		&models.Device{},
		&models.Ticket{},
		&models.PartUsage{},
		&models.Feedback{},
	)
}

func GetDB() *gorm.DB {
	return DB
}
