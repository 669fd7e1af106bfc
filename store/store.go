// Package store provides access to persisted analysis records. How records
// are produced is outside of this application, the store only retrieves the
// most recent snapshot per name and ingests pre-computed ones.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dnsvet/dnsvet/config"
	"github.com/dnsvet/dnsvet/model"
)

// ErrNotFound is returned if no analysis record is stored for a name
var ErrNotFound = errors.New("no analysis record found")

// AnalysisStore is the persistence backend for analysis records
type AnalysisStore interface {
	// FetchLatest returns the most recent record for the name, stub or not.
	// Returns ErrNotFound if the store holds no record for the name.
	FetchLatest(ctx context.Context, name model.DomainName) (*model.AnalysisRecord, error)

	// Insert persists a new record snapshot
	Insert(ctx context.Context, record *model.AnalysisRecord) error

	Close() error
}

// New creates the store backend selected by the configuration
func New(cfg *config.StoreConfig) (AnalysisStore, error) {
	switch cfg.Type {
	case config.StoreTypeSqlite, config.StoreTypeMysql, config.StoreTypePostgresql:
		return NewDatabaseStore(cfg)

	case config.StoreTypeRedis:
		return NewRedisStore(cfg)
	}

	return nil, fmt.Errorf("unsupported store type '%s'", cfg.Type)
}
