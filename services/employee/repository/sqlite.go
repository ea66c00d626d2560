package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employeeform/config"
	"employeeform/domain"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// storageKey is the single key the collection lives under, matching the
// one-key layout of browser local storage.
const storageKey = "employees"

type sqliteRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewSQLiteRepository(path string) (domain.EmployeeRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}

	if err := autoMigrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteRepository{
		db:  db,
		log: config.GetLogrusInstance(),
	}, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS local_storage (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
	);
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (sr *sqliteRepository) Load(ctx context.Context) ([]domain.Employee, error) {
	var value string
	err := sr.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, storageKey).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			sr.log.Warnf("could not read stored employees, starting empty: %v", err)
		}
		return []domain.Employee{}, nil
	}

	var employees []domain.Employee
	if err := sonic.UnmarshalString(value, &employees); err != nil {
		sr.log.Warnf("malformed stored employees, starting empty: %v", err)
		return []domain.Employee{}, nil
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

func (sr *sqliteRepository) Save(ctx context.Context, employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	value, err := sonic.MarshalString(employees)
	if err != nil {
		return fmt.Errorf("could not serialize employees: %w", err)
	}

	query := `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;
	`
	if _, err := sr.db.ExecContext(ctx, query, storageKey, value); err != nil {
		return fmt.Errorf("could not store employees: %w", err)
	}
	return nil
}

func (sr *sqliteRepository) Clear(ctx context.Context) error {
	if _, err := sr.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, storageKey); err != nil {
		return fmt.Errorf("could not clear stored employees: %w", err)
	}
	return nil
}

func (sr *sqliteRepository) Close() error {
	return sr.db.Close()
}
