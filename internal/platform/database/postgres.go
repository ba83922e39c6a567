package database

import (
	"database/sql"
	"fmt"
	"time"

	"tarefas_api/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// ConnectPostgres opens the pooled connection used by the postgres
// storage profile. The schema is expected to exist already; see schema.sql.
func ConnectPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DBConnStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}
