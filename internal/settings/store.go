package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/widgetbot/internal/db"
)

// Store persists plugin settings in the plugin_settings table.
type Store struct {
	db *db.DB
}

// NewStore creates a new settings store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get implements Getter.
func (s *Store) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM plugin_settings WHERE namespace = ? AND key = ?`, namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting setting %s.%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set creates or replaces a setting.
func (s *Store) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO plugin_settings (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("setting %s.%s: %w", namespace, key, err)
	}
	return nil
}

// Unset removes a setting. It reports whether a row was deleted.
func (s *Store) Unset(ctx context.Context, namespace, key string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM plugin_settings WHERE namespace = ? AND key = ?`, namespace, key,
	)
	if err != nil {
		return false, fmt.Errorf("unsetting %s.%s: %w", namespace, key, err)
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// List returns every setting in a namespace ordered by key.
func (s *Store) List(ctx context.Context, namespace string) ([]Setting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT namespace, key, value FROM plugin_settings WHERE namespace = ? ORDER BY key`, namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	var out []Setting
	for rows.Next() {
		var st Setting
		if err := rows.Scan(&st.Namespace, &st.Key, &st.Value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// DeleteNamespace removes every setting in a namespace.
func (s *Store) DeleteNamespace(ctx context.Context, namespace string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM plugin_settings WHERE namespace = ?`, namespace)
	if err != nil {
		return 0, fmt.Errorf("deleting namespace %s: %w", namespace, err)
	}
	return result.RowsAffected()
}
