package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string         `json:"db_path"`
	DBSizeBytes int64          `json:"db_size_bytes"`
	Profiles    int            `json:"profiles"`
	Assessments int            `json:"assessments"`
	Sessions    []SessionStats `json:"sessions"`
}

// SessionStats holds per-session counts.
type SessionStats struct {
	Session     string `json:"session"`
	CurrentUser string `json:"current_user,omitempty"`
	Assessments int    `json:"assessments"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Sessions: []SessionStats{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&st.Profiles); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&st.Assessments); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.session,
		       COALESCE((SELECT json_extract(value, '$') FROM session_state
		                 WHERE session = s.session AND key = 'current_user'), ''),
		       (SELECT COUNT(*) FROM assessments a WHERE a.session = s.session)
		FROM (SELECT session FROM session_state UNION SELECT session FROM assessments) s
		ORDER BY s.session`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ss SessionStats
		if err := rows.Scan(&ss.Session, &ss.CurrentUser, &ss.Assessments); err != nil {
			return st, err
		}
		st.Sessions = append(st.Sessions, ss)
	}
	return st, rows.Err()
}
