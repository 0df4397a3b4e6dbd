package database

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/freelanceflow/freelance-flow-api/internal/config"
	"github.com/freelanceflow/freelance-flow-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the database described by DATABASE_URL. The scheme selects
// the driver: postgres:// and mysql:// URLs use their servers, anything else
// is treated as a SQLite file path (the local-dev default).
func Connect(cfg *config.Config) error {
	dialector, err := dialectorFor(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "mysql://"):
		dsn, err := mysqlDSN(databaseURL)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	default:
		return sqlite.Open(databaseURL), nil
	}
}

// mysqlDSN converts a mysql:// URL into the DSN format the driver expects.
func mysqlDSN(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid mysql DATABASE_URL: %w", err)
	}

	password, _ := u.User.Password()
	host := u.Host
	if u.Port() == "" {
		host = u.Host + ":3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		u.User.Username(),
		password,
		host,
		strings.TrimPrefix(u.Path, "/"),
	), nil
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
