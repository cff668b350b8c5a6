package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager with the response cache and
// an optional snapshot store. An empty snapshot backend disables tracking.
func InitStores(cacheTTL time.Duration, snapshotBackend schema.DatabaseBackend, snapshotConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		cache := NewMemCache(cacheTTL)

		var snapshotStore contract.SnapshotStore
		if snapshotBackend != "" {
			var err error
			snapshotStore, err = NewSnapshotStore(snapshotBackend, snapshotConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.Lock()
		defer Manager.Unlock()
		Manager.cache = cache
		Manager.snapshots = snapshotStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.snapshots != nil {
			_ = Manager.snapshots.Close()
		}
	})
}

// ClearSnapshots clears the snapshot data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the snapshot tables.
// For NoneBackend, it does nothing.
func ClearSnapshots(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSnapshotTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropSnapshotTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported snapshot backend for clearing: %s", backend)
	}
}

// dropSnapshotTables connects to the SQL database and drops the snapshot
// tables if they exist.
func dropSnapshotTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{collaboratorScoresTable, snapshotRunsTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}
