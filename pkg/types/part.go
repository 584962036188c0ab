// Part entity tracked by the inventory.
package types

import "time"

// DateLayout is the calendar-date format used for DateAcquired in drafts and
// in rendered output.
const DateLayout = "2006-01-02"

// PartRecord represents one inventory line item (a tracked hardware part or asset).
type PartRecord struct {
	ID           string    `json:"id"`           // Opaque, unique, immutable after creation.
	Department   string    `json:"department"`   // Owning department (required).
	ItemCode     string    `json:"itemCode"`     // Item code (required).
	PartName     string    `json:"partName"`     // Human-readable name (required).
	Description  string    `json:"description"`  // Free text.
	UnitPrice    float64   `json:"unitPrice"`    // Never negative.
	TicketCount  int       `json:"ticketCount"`  // Maintained outside the form; 0 on creation.
	DateAcquired time.Time `json:"dateAcquired"` // Zero value means not recorded.
	SerialNumber string    `json:"serialNumber"`
	Supplier     string    `json:"supplier"`
}

// HasDateAcquired reports whether an acquisition date is recorded.
func (p PartRecord) HasDateAcquired() bool {
	return !p.DateAcquired.IsZero()
}

// DateAcquiredString returns the acquisition date as YYYY-MM-DD, or "" when
// none is recorded.
func (p PartRecord) DateAcquiredString() string {
	if !p.HasDateAcquired() {
		return ""
	}
	return p.DateAcquired.Format(DateLayout)
}

// applyDraft replaces every editable field of p with the coerced draft
// values. ID and TicketCount are left untouched. The draft must already have
// passed Validate.
func (p *PartRecord) applyDraft(d FormDraft) {
	p.Department = d.Department
	p.ItemCode = d.ItemCode
	p.PartName = d.PartName
	p.Description = d.Description
	p.UnitPrice = ParseUnitPrice(d.UnitPrice)
	p.DateAcquired = parseDate(d.DateAcquired)
	p.SerialNumber = d.SerialNumber
	p.Supplier = d.Supplier
}

// NewPartFromDraft validates d and builds a record with the given ID and a
// zero ticket count. Stores call it from Add.
func NewPartFromDraft(id string, d FormDraft) (PartRecord, error) {
	if id == "" {
		return PartRecord{}, ErrInvalidID
	}
	if err := d.Validate(); err != nil {
		return PartRecord{}, err
	}
	p := PartRecord{ID: id}
	p.applyDraft(d)
	return p, nil
}

// UpdatedFromDraft validates d and returns a copy of p with every editable
// field replaced. ID and TicketCount keep their prior values. Stores call it
// from Update once the target has been resolved.
func (p PartRecord) UpdatedFromDraft(d FormDraft) (PartRecord, error) {
	if err := d.Validate(); err != nil {
		return PartRecord{}, err
	}
	p.applyDraft(d)
	return p, nil
}

// parseDate parses a validated YYYY-MM-DD string. Empty input yields the
// zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
