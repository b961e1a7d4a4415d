package store

import (
	"context"
	"errors"

	"rift-tracker/internal/config"
	"rift-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// ErrNotFound marks an absent document for a key.
var ErrNotFound = errors.New("store: document not found")

// DocumentStore persists one UserDocument per sanitized user key.
// Put is a full overwrite; there is no compare-and-swap, so
// concurrent read-modify-write cycles on the same key can lose
// updates. The Revision field on UserDocument exists so a PutIf
// variant can be added here without touching callers.
type DocumentStore interface {
	Get(ctx context.Context, userKey string) (*domain.UserDocument, error)
	Put(ctx context.Context, userKey string, doc *domain.UserDocument) error
	Close() error
}

// New selects the backend from configuration.
func New(cfg *config.Config, logger zerolog.Logger) (DocumentStore, error) {
	switch cfg.StoreBackend {
	case "redis":
		return NewRedisStore(cfg.RedisURL, logger)
	default:
		return NewSQLiteStore(cfg.DBPath, logger)
	}
}
