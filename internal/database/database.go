package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/abhishek622/moodjournal/internal/config"
)

// Name is the database this service owns.
const Name = "mood_journal_db"

const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
	id INT AUTO_INCREMENT PRIMARY KEY,
	entry_text TEXT NOT NULL,
	primary_emotion VARCHAR(50) NOT NULL,
	primary_score DECIMAL(5, 2) NOT NULL,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// Connect ensures the database exists and returns a handle scoped to it.
// Safe to call on every startup.
func Connect(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	admin, err := sql.Open("mysql", cfg.DSN(""))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	_, err = admin.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS `"+Name+"`")
	admin.Close()
	if err != nil {
		return nil, fmt.Errorf("create database %s: %w", Name, err)
	}

	db, err := sql.Open("mysql", cfg.DSN(Name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", Name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", Name, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.MaxIdleTime)

	return db, nil
}

// EnsureSchema provisions the journal_entries table. Idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create journal_entries: %w", err)
	}
	return nil
}
