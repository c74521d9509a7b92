package database

import (
	"fmt"

	"shortlink-core/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitMySQL opens the process-wide connection pool, verifies the store is
// reachable and reconciles the schema. Callers treat any error as fatal.
func InitMySQL(host string, port int, user, password, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbName)

	connection, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %v", err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unreachable: %v", err)
	}

	if err := Migrate(connection); err != nil {
		return nil, err
	}

	return connection, nil
}

// Migrate reconciles the schema with the declared models. Structural only:
// missing tables, columns and indexes are created, data is untouched.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.ApiKey{},
		&model.Domain{},
		&model.Path{},
		&model.AccessLog{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %v", err)
	}
	return nil
}
