// Package rediskv provides a Redis-backed KVStore. Values are stored as JSON
// strings; change notifications ride a pub/sub channel so other processes
// observe writes. Consistency across processes is eventual only: a
// notification can race with an in-flight local read.
package rediskv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// changeChannel carries change notifications between processes.
const changeChannel = "zetabooks.kv.changes"

// changeMessage is the pub/sub payload. Origin identifies the writing
// process so subscribers can drop their own writes, mirroring browser
// storage events not firing in the originating tab.
type changeMessage struct {
	Origin string `json:"origin"`
	Key    string `json:"key"`
}

// Store is a Redis-backed KVStore.
type Store struct {
	client *redis.Client
	origin string
	logger *slog.Logger
}

// New connects to Redis and pings it to fail fast on a bad address.
func New(ctx context.Context, addr string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("rediskv: ping: %w", err)
	}

	return &Store{
		client: client,
		origin: uuid.NewString(),
		logger: logger,
	}, nil
}

// NewWithClient wraps an existing client. Used by tests with miniredis.
func NewWithClient(client *redis.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		origin: uuid.NewString(),
		logger: logger,
	}
}

var _ portsrepo.KVStore = (*Store)(nil)

// Get implements portsrepo.KVStore.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("rediskv: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed values fall back to the caller's default, never an error.
		s.logger.Warn("Stored value is unparseable, falling back to default",
			slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Set implements portsrepo.KVStore. The write and the change notification
// are not atomic; a crash between them loses the notification, which the
// best-effort consistency contract allows.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("rediskv: set %s: %w", key, err)
	}

	msg, err := json.Marshal(changeMessage{Origin: s.origin, Key: key})
	if err != nil {
		return err
	}
	if err := s.client.Publish(ctx, changeChannel, msg).Err(); err != nil {
		s.logger.Warn("Failed to publish change notification",
			slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}

// Subscribe implements portsrepo.KVStore. Messages published by this store
// instance are dropped; only external changes reach fn.
func (s *Store) Subscribe(ctx context.Context, fn func(key string)) (func(), error) {
	pubsub := s.client.Subscribe(ctx, changeChannel)

	// Force the subscription to be established before returning.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("rediskv: subscribe: %w", err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			var change changeMessage
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				s.logger.Warn("Dropping malformed change notification", slog.String("error", err.Error()))
				continue
			}
			if change.Origin == s.origin {
				continue
			}
			fn(change.Key)
		}
	}()

	cancel := func() {
		_ = pubsub.Close()
	}
	return cancel, nil
}

// Close implements portsrepo.KVStore.
func (s *Store) Close() error {
	return s.client.Close()
}
