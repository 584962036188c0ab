package types

import (
	"fmt"
	"time"
)

// SeedParts returns the sample inventory loaded when seeding is enabled.
func SeedParts() []PartRecord {
	return []PartRecord{
		{
			ID:           "1",
			Department:   "Cashier",
			ItemCode:     "ConnecticutF",
			PartName:     "Ryzen 5 5600X",
			Description:  "Desktop Processor",
			UnitPrice:    6500,
			TicketCount:  1,
			DateAcquired: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			SerialNumber: "RY-AMD-5600X",
			Supplier:     "PCWorld",
		},
	}
}

// PrepareSeed checks seed records and returns normalised copies ready for
// a store. IDs must be non-empty and distinct, counters non-negative and the
// editable fields must pass the same rules as FormDraft.Validate. Acquisition
// dates are cut to the calendar day in UTC, the precision every store keeps.
func PrepareSeed(parts []PartRecord) ([]PartRecord, error) {
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if p.ID == "" {
			return nil, ErrInvalidID
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("seed part %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}

	out := make([]PartRecord, 0, len(parts))
	for _, p := range parts {
		if p.UnitPrice < 0 || p.TicketCount < 0 {
			return nil, fmt.Errorf("seed part %s: negative price or ticket count: %w", p.ID, ErrValidation)
		}
		if err := DraftFromRecord(p).Validate(); err != nil {
			return nil, fmt.Errorf("seed part %s: %w", p.ID, err)
		}
		if p.HasDateAcquired() {
			y, m, d := p.DateAcquired.Date()
			p.DateAcquired = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
		out = append(out, p)
	}
	return out, nil
}
