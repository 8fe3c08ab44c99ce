package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/healthpredict/internal/model"
)

// Session state keys.
const (
	keyCurrentUser      = "current_user"
	keySelectedSymptoms = "selected_symptoms"
	keyVitals           = "vitals"
	keyHistory          = "history"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			email      TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			age        INTEGER NOT NULL DEFAULT 0,
			gender     TEXT NOT NULL DEFAULT '',
			height     REAL NOT NULL DEFAULT 0,
			weight     REAL NOT NULL DEFAULT 0,
			password   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_state (
			session    TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (session, key)
		)`,
		`CREATE TABLE IF NOT EXISTS assessments (
			id         TEXT PRIMARY KEY,
			session    TEXT NOT NULL,
			email      TEXT NOT NULL DEFAULT '',
			symptoms   TEXT NOT NULL,
			results    TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_session ON assessments(session, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_email ON assessments(email)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// getState decodes a session value into dest. ok is false when the key
// has never been written or was deleted.
func (s *SQLiteStore) getState(ctx context.Context, sess model.Session, key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE session = ? AND key = ?`,
		sess.Key(), key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// putState overwrites a session value.
func (s *SQLiteStore) putState(ctx context.Context, sess model.Session, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_state (session, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(session, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sess.Key(), key, string(b), now)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) deleteState(ctx context.Context, sess model.Session, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_state WHERE session = ? AND key = ?`, sess.Key(), key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
