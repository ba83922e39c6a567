package database

import (
	"fmt"

	"tarefas_api/internal/domain/model"
	"tarefas_api/internal/platform/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectSQLite opens the embedded database and creates the tarefas and
// usuarios tables if they are missing. TranslateError turns the driver's
// UNIQUE constraint failures into gorm.ErrDuplicatedKey so the repository
// can map them.
func ConnectSQLite(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}
