package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Repository defines the interface for device persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
//
// Failures are reported once and never retried; the caller decides how to
// surface them.
type Repository interface {
	// Create inserts the DeviceType row and its dependent DeviceName row in
	// a single transaction, and returns the generated DeviceType id.
	Create(ctx context.Context, t *DeviceType, customName string) (int64, error)

	// Update modifies both rows keyed by the DeviceType id in a single
	// transaction. Returns the number of type rows affected; zero means the
	// id does not exist and nothing was changed.
	Update(ctx context.Context, id int64, t *DeviceType, customName string) (int64, error)

	// Delete removes the DeviceType row by id. The dependent DeviceName row
	// is removed by the store's cascade rule. Returns the number of rows
	// affected; deleting a missing id reports zero rows and no error.
	Delete(ctx context.Context, id int64) (int64, error)

	// GetByID retrieves a single joined record.
	// Returns ErrNotFound if the id does not exist.
	GetByID(ctx context.Context, id int64) (*Record, error)

	// List retrieves every DeviceType outer-joined with its DeviceName,
	// ordered by id.
	List(ctx context.Context) ([]Record, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with the
// foreign_keys pragma enabled (database.Open does this).
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the DeviceType row and its DeviceName row transactionally.
func (r *SQLiteRepository) Create(ctx context.Context, t *DeviceType, customName string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	id, err := insertDeviceType(ctx, tx, t)
	if err != nil {
		return 0, err
	}

	if err := attachName(ctx, tx, customName, id); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing create: %w", err)
	}

	t.ID = id
	return id, nil
}

// insertDeviceType inserts the parent row and returns its assigned id.
func insertDeviceType(ctx context.Context, tx *sql.Tx, t *DeviceType) (int64, error) {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	query := `
		INSERT INTO device_types (
			name, on_off, temperature, volume, batteries_included, open_closed,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		t.Name,
		nullableInt(t.OnOff),
		nullableInt(t.Temperature),
		nullableInt(t.Volume),
		nullableInt(t.BatteriesIncluded),
		nullableInt(t.OpenClosed),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting device type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading generated id: %w", err)
	}
	return id, nil
}

// attachName inserts the dependent row referencing the parent id.
func attachName(ctx context.Context, tx *sql.Tx, customName string, typeID int64) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO device_names (custom_name, device_type_id) VALUES (?, ?)",
		customName, typeID,
	)
	if err != nil {
		return fmt.Errorf("inserting device name: %w", err)
	}
	return nil
}

// Update modifies both rows keyed by id within one transaction.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, t *DeviceType, customName string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	now := time.Now().UTC()
	query := `
		UPDATE device_types SET
			name = ?, on_off = ?, temperature = ?, volume = ?,
			batteries_included = ?, open_closed = ?, updated_at = ?
		WHERE id = ?`

	result, err := tx.ExecContext(ctx, query,
		t.Name,
		nullableInt(t.OnOff),
		nullableInt(t.Temperature),
		nullableInt(t.Volume),
		nullableInt(t.BatteriesIncluded),
		nullableInt(t.OpenClosed),
		now.Format(time.RFC3339),
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating device type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}

	if rowsAffected > 0 {
		if _, err := tx.ExecContext(ctx,
			"UPDATE device_names SET custom_name = ? WHERE device_type_id = ?",
			customName, id,
		); err != nil {
			return 0, fmt.Errorf("updating device name: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing update: %w", err)
	}

	return rowsAffected, nil
}

// Delete removes the DeviceType row; the DeviceName row goes with it via
// ON DELETE CASCADE. A missing id is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM device_types WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting device type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return rowsAffected, nil
}

// joinedColumns is the select list shared by GetByID and List.
const joinedColumns = `
	t.id, t.name, t.on_off, t.temperature, t.volume,
	t.batteries_included, t.open_closed, t.created_at, t.updated_at,
	n.id, n.custom_name, n.device_type_id`

// GetByID retrieves a single joined record.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*Record, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM device_types t
		LEFT JOIN device_names n ON n.device_type_id = t.id
		WHERE t.id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying device by id: %w", err)
	}
	return rec, nil
}

// List retrieves all joined records ordered by id.
func (r *SQLiteRepository) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM device_types t
		LEFT JOIN device_names n ON n.device_type_id = t.id
		ORDER BY t.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}

	return records, nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord scans one joined row into a Record.
func scanRecord(scanner rowScanner) (*Record, error) {
	var rec Record
	var onOff, temperature, volume, batteries, openClosed sql.NullInt64
	var nameID, nameTypeID sql.NullInt64
	var customName sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&rec.Type.ID,
		&rec.Type.Name,
		&onOff,
		&temperature,
		&volume,
		&batteries,
		&openClosed,
		&createdAt,
		&updatedAt,
		&nameID,
		&customName,
		&nameTypeID,
	)
	if err != nil {
		return nil, err
	}

	rec.Type.OnOff = intOrNil(onOff)
	rec.Type.Temperature = intOrNil(temperature)
	rec.Type.Volume = intOrNil(volume)
	rec.Type.BatteriesIncluded = intOrNil(batteries)
	rec.Type.OpenClosed = intOrNil(openClosed)

	var parseErr error
	rec.Type.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	rec.Type.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	// Outer join: the name columns are NULL for a type row without a name row
	if nameID.Valid {
		rec.Name = &DeviceName{
			ID:           nameID.Int64,
			CustomName:   customName.String,
			DeviceTypeID: nameTypeID.Int64,
		}
	}

	return &rec, nil
}

// nullableInt returns a sql.NullInt64 for optional int pointers.
func nullableInt(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

// intOrNil converts a scanned nullable column back to an optional pointer.
func intOrNil(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
