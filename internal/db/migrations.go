package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS ranges (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			start_at    DATETIME NOT NULL,
			end_at      DATETIME NOT NULL,
			source      TEXT NOT NULL CHECK(source IN ('picker', 'convert')),
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_ranges_created ON ranges(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating ranges table: %w", err)
	}

	return nil
}
