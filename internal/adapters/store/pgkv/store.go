// Package pgkv provides a Postgres-backed KVStore over a single kv_entries
// table. Values are whole JSONB documents; change notifications use
// LISTEN/NOTIFY so other processes observe writes.
package pgkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// notifyChannel is the Postgres notification channel for change events.
const notifyChannel = "zetabooks_kv_changes"

// changeMessage is the NOTIFY payload. Origin identifies the writing process
// so subscribers can drop their own writes.
type changeMessage struct {
	Origin string `json:"origin"`
	Key    string `json:"key"`
}

// Store is a Postgres-backed KVStore.
type Store struct {
	pool   *pgxpool.Pool
	origin string
	logger *slog.Logger
}

// New wraps a connection pool. The kv_entries table is created by the
// migrations run at startup.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		pool:   pool,
		origin: uuid.NewString(),
		logger: logger,
	}
}

var _ portsrepo.KVStore = (*Store)(nil)

// Get implements portsrepo.KVStore.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1;`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pgkv: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed values fall back to the caller's default, never an error.
		s.logger.Warn("Stored value is unparseable, falling back to default",
			slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Set implements portsrepo.KVStore. The upsert and the notification run in
// one statement batch so a committed write always notifies.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(changeMessage{Origin: s.origin, Key: key})
	if err != nil {
		return err
	}

	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pgkv: begin set %s: %w", key, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("pgkv: set %s: %w", key, err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2);`, notifyChannel, string(payload)); err != nil {
		return fmt.Errorf("pgkv: notify %s: %w", key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pgkv: commit set %s: %w", key, err)
	}
	return nil
}

// Subscribe implements portsrepo.KVStore. A dedicated connection LISTENs on
// the notification channel until ctx is cancelled or the returned cancel
// function is called.
func (s *Store) Subscribe(ctx context.Context, fn func(key string)) (func(), error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("pgkv: acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel+";"); err != nil {
		conn.Release()
		return nil, fmt.Errorf("pgkv: listen: %w", err)
	}

	listenCtx, cancelListen := context.WithCancel(ctx)

	go func() {
		defer conn.Release()
		for {
			notification, err := conn.Conn().WaitForNotification(listenCtx)
			if err != nil {
				if listenCtx.Err() == nil {
					s.logger.Warn("KV change listener stopped", slog.String("error", err.Error()))
				}
				return
			}
			var change changeMessage
			if err := json.Unmarshal([]byte(notification.Payload), &change); err != nil {
				s.logger.Warn("Dropping malformed change notification", slog.String("error", err.Error()))
				continue
			}
			if change.Origin == s.origin {
				continue
			}
			fn(change.Key)
		}
	}()

	return cancelListen, nil
}

// Close implements portsrepo.KVStore. The pool is owned by the caller that
// created it, so Close only detaches.
func (s *Store) Close() error {
	return nil
}
