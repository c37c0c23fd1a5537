package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// In the test environment it opens an in-memory SQLite database instead so tests
// do not require a running MySQL server. TranslateError is enabled so unique and
// foreign key violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// regardless of the driver.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()

	if cfg.AppEnv == "test" {
		// SQLite only enforces foreign keys when asked; the DSN flag applies
		// the pragma to every pooled connection.
		return gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=on"), &gorm.Config{TranslateError: true})
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	// Open a database connection.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return db, nil
}
