package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// loadSeed inserts seed records in a single transaction, preserving their
// order and their IDs and ticket counts.
func (s *Store) loadSeed(seed []types.PartRecord) error {
	if len(seed) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range seed {
		if err := insertPart(tx, p); err != nil {
			return fmt.Errorf("seeding part %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
