package types

// PartsStore owns the authoritative, ordered sequence of PartRecord.
// Records are returned by value; mutating a returned record never changes
// the store.
type PartsStore interface {
	// List returns every record in insertion order.
	List() ([]PartRecord, error)

	// Get returns the record with the given ID.
	// Returns ErrNotFound if no record has that ID.
	Get(id string) (PartRecord, error)

	// Add validates the draft, allocates a fresh ID, coerces the unit price,
	// sets TicketCount to 0 and appends the record.
	// Returns a *ValidationError (ErrValidation) with the store unchanged on
	// failure.
	Add(draft FormDraft) (PartRecord, error)

	// Update replaces every editable field of the record with the given ID.
	// ID and TicketCount keep their prior values. Returns ErrNotFound if the
	// ID does not resolve, or ErrValidation if the draft is invalid; the
	// store is unchanged in both cases.
	Update(id string, draft FormDraft) (PartRecord, error)

	// Remove deletes the record permanently. Removing an absent ID is a
	// no-op and returns nil.
	Remove(id string) error

	// Query returns the records matching filter in store order.
	Query(filter Filter) ([]PartRecord, error)
}
