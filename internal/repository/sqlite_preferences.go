package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

// Get returns the singleton row, or ErrNotFound when it was never created.
func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	query := `SELECT id, preferred_duration_sec, dark_mode, updated_at
		FROM preferences WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.PreferencesID)

	var p domain.Preferences
	var darkMode int
	var updatedAtStr string
	err := row.Scan(&p.ID, &p.PreferredDurationSec, &darkMode, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, db.ReadError("scanning preferences", err)
	}
	p.DarkMode = intToBool(darkMode)
	if p.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, db.ReadError("parsing preferences updated_at", err)
	}
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	query := `INSERT INTO preferences (id, preferred_duration_sec, dark_mode, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			preferred_duration_sec = excluded.preferred_duration_sec,
			dark_mode = excluded.dark_mode,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		domain.PreferencesID,
		p.PreferredDurationSec,
		boolToInt(p.DarkMode),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return db.WriteError("upserting preferences", err)
	}
	return nil
}
