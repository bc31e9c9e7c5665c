package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"TrendAdvisor/internal/analyzer"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analyses to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			current_price     REAL,
			projected_price   REAL,
			slope             REAL,
			intercept         REAL,
			horizon_days      INTEGER,
			category          TEXT,
			rationale         TEXT,
			options_available INTEGER,
			options_expiry    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts one completed analysis row.
func (r *SQLiteRecorder) RecordAnalysis(rep *analyzer.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	optionsAvailable := 0
	optionsExpiry := ""
	if rep.OptionsAvailable && rep.Options != nil {
		optionsAvailable = 1
		optionsExpiry = rep.Options.Expiry.Format("2006-01-02")
	}

	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, symbol, current_price, projected_price, slope, intercept,
		 horizon_days, category, rationale, options_available, options_expiry)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		rep.GeneratedAt.Unix(), rep.Symbol,
		rep.Projection.CurrentPrice, rep.Projection.ProjectedPrice,
		rep.Projection.Model.Slope, rep.Projection.Model.Intercept,
		rep.Projection.Horizon,
		string(rep.Recommendation.Category), rep.Recommendation.Rationale,
		optionsAvailable, optionsExpiry,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
