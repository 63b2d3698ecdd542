package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Repository defines the interface for profile persistence operations.
type Repository interface {
	Get(ctx context.Context, control string) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, control string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a new SQLite-backed profile repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// controlKey returns the stored key of a control name: its interned
// lower-case form, so lookups fold case the same way intern.Equal does.
func controlKey(control string) string {
	return intern.Make(strings.TrimSpace(control)).Lower()
}

// Get returns the profile for control, matched ignoring case.
func (r *SQLiteRepository) Get(ctx context.Context, control string) (*Profile, error) {
	const query = `SELECT control, value_type, processors, description, created_at, updated_at
		FROM control_profiles WHERE control_key = ?`

	var p Profile
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query, controlKey(control)).Scan(
		&p.Control, &p.ValueType, &p.Processors, &p.Description, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, control)
		}
		return nil, fmt.Errorf("querying profile %q: %w", control, err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// List returns all profiles ordered by control name (ignoring case).
func (r *SQLiteRepository) List(ctx context.Context) ([]Profile, error) {
	const query = `SELECT control, value_type, processors, description, created_at, updated_at
		FROM control_profiles ORDER BY control_key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var createdAt, updatedAt string
		if err := rows.Scan(&p.Control, &p.ValueType, &p.Processors, &p.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

// Upsert inserts p or replaces the profile stored for the same control.
// The stored control name takes the casing of the latest write.
// CreatedAt and UpdatedAt are set on p from the stored row.
func (r *SQLiteRepository) Upsert(ctx context.Context, p *Profile) error {
	const query = `INSERT INTO control_profiles
		(control_key, control, value_type, processors, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (control_key) DO UPDATE SET
			control = excluded.control,
			value_type = excluded.value_type,
			processors = excluded.processors,
			description = excluded.description,
			updated_at = excluded.updated_at
		RETURNING created_at, updated_at`

	now := formatTime(r.now())
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query,
		controlKey(p.Control), p.Control, p.ValueType, p.Processors, p.Description, now, now,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upserting profile %q: %w", p.Control, err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return nil
}

// Delete removes the profile for control.
func (r *SQLiteRepository) Delete(ctx context.Context, control string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM control_profiles WHERE control_key = ?`, controlKey(control))
	if err != nil {
		return fmt.Errorf("deleting profile %q: %w", control, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, control)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses a stored timestamp, returning the zero time if it is
// malformed.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
