package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema migrations ship inside the binary; OpenSQLite applies the up set
// on every start, so a fresh database file is always usable.
//
//go:embed migrations/*.sql
var migrations embed.FS

func MigrateUp(db *sql.DB) error {
	return runMigrations(db, "up")
}

func MigrateDown(db *sql.DB) error {
	return runMigrations(db, "down")
}

func runMigrations(db *sql.DB, direction string) error {
	names, err := fs.Glob(migrations, fmt.Sprintf("migrations/*.%s.sql", direction))
	if err != nil {
		return fmt.Errorf("list %s migrations: %w", direction, err)
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}
