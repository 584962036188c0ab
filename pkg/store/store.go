// Package store provides the public factory for parts stores while keeping
// the backend implementations internal.
package store

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/partsdesk/internal/memory"
	"github.com/mesh-intelligence/partsdesk/internal/sqlite"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Open creates the backend named by cfg, loaded with the sample parts when
// cfg.Seed is set. The returned Closer is nil when the backend holds no
// resources. Returns ErrBackendEmpty or ErrBackendUnknown for a bad config.
//
// Example:
//
//	s, closer, err := store.Open(types.Config{Backend: types.BackendSQLite})
//	if err != nil {
//	    return err
//	}
//	if closer != nil {
//	    defer closer.Close()
//	}
func Open(cfg types.Config) (types.PartsStore, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	var seed []types.PartRecord
	if cfg.Seed {
		seed = types.SeedParts()
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(seed)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s, nil
	default:
		s, err := memory.New(seed)
		if err != nil {
			return nil, nil, fmt.Errorf("open memory store: %w", err)
		}
		return s, nil, nil
	}
}
