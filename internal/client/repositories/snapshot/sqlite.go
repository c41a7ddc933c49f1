package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/wastewise/pickup/internal/client/migrations"
	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/dbx"
)

const (
	keyIdentity        = "identity"
	keyProfileComplete = "profile_complete"
)

// SQLiteRepository stores the snapshot in a small key/value table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Open opens (creating if needed) the local cache database at dsn and
// applies the embedded migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func (r *SQLiteRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshot WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshot (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set snapshot[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Identity, error) {
	value, err := r.get(ctx, keyIdentity)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var id models.Identity
	if err := json.Unmarshal(value, &id); err != nil {
		// a corrupt snapshot is treated as absent
		return nil, nil
	}
	return &id, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, id models.Identity) error {
	value, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return r.set(ctx, keyIdentity, value)
}

// Clear removes the identity and the profile marker in one transaction,
// so a crash between the deletes cannot leave a half-cleared cache.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{keyIdentity, keyProfileComplete} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to clear snapshot[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) ProfileComplete(ctx context.Context) (bool, error) {
	value, err := r.get(ctx, keyProfileComplete)
	if err != nil {
		return false, err
	}
	if value == nil {
		return true, nil
	}
	return string(value) != "0", nil
}

func (r *SQLiteRepository) SetProfileComplete(ctx context.Context, complete bool) error {
	value := []byte("1")
	if !complete {
		value = []byte("0")
	}
	return r.set(ctx, keyProfileComplete, value)
}
