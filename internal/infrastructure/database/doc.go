// Package database provides SQLite connection management for Homedeck.
//
// This package wraps database/sql with:
//   - Connection lifecycle management (Open, Close, HealthCheck)
//   - Pragma configuration (WAL mode, busy timeout, foreign keys)
//   - Embedded SQL migrations with per-migration transactions
//
// Foreign key enforcement is always enabled on open: the schema relies on
// ON DELETE CASCADE between device_types and device_names, and SQLite only
// honours cascade clauses when the foreign_keys pragma is set.
//
// # Usage
//
//	db, err := database.Open(database.Config{
//	    Path:        cfg.Database.Path,
//	    WALMode:     cfg.Database.WALMode,
//	    BusyTimeout: cfg.Database.BusyTimeout,
//	})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// Migration files are embedded by the migrations package at the repository
// root; importing it for side effects registers them with this package.
package database
