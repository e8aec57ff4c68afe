package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. conn may be a
// *sql.DB or a transaction handed out by a UnitOfWork.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.MeditationSession) error {
	query := `INSERT INTO meditation_sessions (id, started_at, duration_sec, type, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTime(s.StartedAt),
		s.DurationSec,
		string(s.Type),
		nullableString(s.Note),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return db.WriteError("inserting meditation session", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.MeditationSession, error) {
	query := `SELECT id, started_at, duration_sec, type, note, created_at
		FROM meditation_sessions ORDER BY started_at DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, db.ReadError("listing meditation sessions", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meditation_sessions`)
	if err != nil {
		return 0, db.WriteError("deleting meditation sessions", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, db.WriteError("counting deleted sessions", err)
	}
	return int(n), nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.MeditationSession, error) {
	sessions := []*domain.MeditationSession{}
	for rows.Next() {
		var s domain.MeditationSession
		var sessionType, startedAtStr, createdAtStr string
		var note sql.NullString

		err := rows.Scan(&s.ID, &startedAtStr, &s.DurationSec, &sessionType, &note, &createdAtStr)
		if err != nil {
			return nil, db.ReadError("scanning session row", err)
		}
		s.Type = domain.SessionType(sessionType)
		s.Note = stringFromNull(note)

		if s.StartedAt, err = parseTime(startedAtStr); err != nil {
			return nil, db.ReadError("parsing started_at", err)
		}
		if s.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, db.ReadError("parsing created_at", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.ReadError("iterating sessions", err)
	}
	return sessions, nil
}
