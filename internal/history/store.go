package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gnsm/docent/internal/model"
)

// dbFileName is the SQLite file created inside the history directory.
const dbFileName = "docent.db"

// Store persists question and answer exchanges in a local SQLite file.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error
// is returned instead of silently creating an empty history.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check history path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Exchanges store one question/answer pair per row
	CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		asked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		query TEXT NOT NULL,
		response TEXT NOT NULL,
		labels TEXT,
		no_match INTEGER DEFAULT 0,
		has_rich INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_exchanges_asked_at ON exchanges(asked_at);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Exchange is a stored question/answer pair.
type Exchange struct {
	ID             int64
	AskedAt        time.Time
	Query          string
	Response       string
	Labels         []string
	NoMatch        bool
	HasRichContent bool
}

// Save stores a completed answer.
func (s *Store) Save(ctx context.Context, answer *model.Answer) (int64, error) {
	labelsJSON, err := json.Marshal(answer.Match.Labels())
	if err != nil {
		return 0, fmt.Errorf("failed to serialize labels: %w", err)
	}

	query := `
	INSERT INTO exchanges (query, response, labels, no_match, has_rich)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		answer.Query,
		answer.Response,
		string(labelsJSON),
		answer.NoMatch,
		answer.HasRichContent,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exchange: %w", err)
	}

	return result.LastInsertId()
}

// Recent returns the most recent exchanges, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, asked_at, query, response, labels, no_match, has_rich
	FROM exchanges
	ORDER BY asked_at DESC, id DESC
	LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Exchange
	for rows.Next() {
		var (
			e          Exchange
			askedAt    string
			labelsJSON sql.NullString
		)
		if err := rows.Scan(&e.ID, &askedAt, &e.Query, &e.Response,
			&labelsJSON, &e.NoMatch, &e.HasRichContent); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		e.AskedAt = parseTimestamp(askedAt)
		if labelsJSON.Valid && labelsJSON.String != "" {
			if err := json.Unmarshal([]byte(labelsJSON.String), &e.Labels); err != nil {
				return nil, fmt.Errorf("failed to parse labels: %w", err)
			}
		}
		results = append(results, e)
	}

	return results, rows.Err()
}

// Count returns the total number of stored exchanges.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exchanges").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exchanges: %w", err)
	}
	return count, nil
}

// Clear deletes every stored exchange.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM exchanges"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
