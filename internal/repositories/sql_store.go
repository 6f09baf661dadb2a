package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

const kvDDL = `
CREATE TABLE IF NOT EXISTS kv (
	k VARCHAR(191) NOT NULL PRIMARY KEY,
	v LONGBLOB NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// SQLStore persists the collections as rows of a single kv table in MySQL.
// Update runs inside a transaction and takes a row lock on the key, so a
// cancel and an auto-confirm racing on all-bookings serialize at the row.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sql store: db is nil")
	}
	if _, err := db.Exec(kvDDL); err != nil {
		return nil, fmt.Errorf("sql store: create kv table: %w", err)
	}
	return &SQLStore{DB: db}, nil
}

func (s *SQLStore) Read(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.DB.QueryRowContext(ctx, `SELECT v FROM kv WHERE k=?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *SQLStore) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)`,
		key, value)
	return err
}

func (s *SQLStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current []byte
	err = tx.QueryRowContext(ctx, `SELECT v FROM kv WHERE k=? FOR UPDATE`, key).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)`,
		key, next); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM kv WHERE k=?`, key)
	return err
}
