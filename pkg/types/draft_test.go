package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() FormDraft {
	return FormDraft{
		Department: "IT Support",
		ItemCode:   "C1",
		PartName:   "SSD",
		UnitPrice:  "2000",
	}
}

func TestFormDraftSet(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{name: "department", field: FieldDepartment, value: "Cashier"},
		{name: "item code", field: FieldItemCode, value: "NewYorkH"},
		{name: "part name", field: FieldPartName, value: "RTX 4070"},
		{name: "description", field: FieldDescription, value: "GPU"},
		{name: "unit price keeps raw text", field: FieldUnitPrice, value: "12abc"},
		{name: "date acquired", field: FieldDateAcquired, value: "2024-02-30"},
		{name: "serial number", field: FieldSerialNumber, value: "SN-1"},
		{name: "supplier", field: FieldSupplier, value: "PCWorld"},
		{name: "id is not editable", field: "id", value: "x", wantErr: ErrUnknownField},
		{name: "ticket count is not editable", field: "ticketCount", value: "3", wantErr: ErrUnknownField},
		{name: "category has no field", field: "category", value: "CPU", wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d FormDraft
			err := d.Set(tt.field, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, FormDraft{}, d, "draft should not change on error")
				return
			}
			require.NoError(t, err)
			got, err := d.Get(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestFormDraftSetDoesNotValidate(t *testing.T) {
	d := validDraft()
	require.NoError(t, d.Set(FieldPartName, ""))
	assert.Equal(t, "", d.PartName)
}

func TestFormDraftValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *FormDraft)
		wantFields []string
		missing    bool
	}{
		{name: "complete draft passes", mutate: func(d *FormDraft) {}},
		{name: "garbage price passes", mutate: func(d *FormDraft) { d.UnitPrice = "abc" }},
		{name: "empty price passes", mutate: func(d *FormDraft) { d.UnitPrice = "" }},
		{name: "valid date passes", mutate: func(d *FormDraft) { d.DateAcquired = "2023-01-15" }},
		{
			name:       "missing department",
			mutate:     func(d *FormDraft) { d.Department = "" },
			wantFields: []string{FieldDepartment},
			missing:    true,
		},
		{
			name: "all required missing",
			mutate: func(d *FormDraft) {
				d.Department, d.ItemCode, d.PartName = "", "", ""
			},
			wantFields: []string{FieldDepartment, FieldItemCode, FieldPartName},
			missing:    true,
		},
		{
			name:       "malformed date",
			mutate:     func(d *FormDraft) { d.DateAcquired = "15/01/2023" },
			wantFields: []string{FieldDateAcquired},
		},
		{
			name:       "zero date",
			mutate:     func(d *FormDraft) { d.DateAcquired = "0001-01-01" },
			wantFields: []string{FieldDateAcquired},
		},
		{name: "day after zero date passes", mutate: func(d *FormDraft) { d.DateAcquired = "0001-01-02" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantFields, ve.Fields())
			assert.Equal(t, tt.missing, ve.HasMissing())
		})
	}
}

func TestDraftFromRecord(t *testing.T) {
	p := SeedParts()[0]
	d := DraftFromRecord(p)

	assert.Equal(t, FormDraft{
		Department:   "Cashier",
		ItemCode:     "ConnecticutF",
		PartName:     "Ryzen 5 5600X",
		Description:  "Desktop Processor",
		UnitPrice:    "6500",
		DateAcquired: "2023-01-15",
		SerialNumber: "RY-AMD-5600X",
		Supplier:     "PCWorld",
	}, d)

	p.UnitPrice = 7000.5
	p.DateAcquired = time.Time{}
	d = DraftFromRecord(p)
	assert.Equal(t, "7000.5", d.UnitPrice)
	assert.Equal(t, "", d.DateAcquired)
}

func TestNewPartFromDraft(t *testing.T) {
	d := validDraft()
	d.DateAcquired = "2024-03-01"

	p, err := NewPartFromDraft("abc", d)
	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID)
	assert.Equal(t, 0, p.TicketCount)
	assert.Equal(t, 2000.0, p.UnitPrice)
	assert.Equal(t, "2024-03-01", p.DateAcquiredString())

	_, err = NewPartFromDraft("", d)
	assert.ErrorIs(t, err, ErrInvalidID)

	d.PartName = ""
	_, err = NewPartFromDraft("abc", d)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatedFromDraftPreservesIdentity(t *testing.T) {
	p := SeedParts()[0]
	d := DraftFromRecord(p)
	d.Department = "Management"
	d.UnitPrice = "7000"
	d.DateAcquired = ""

	got, err := p.UpdatedFromDraft(d)
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, 1, got.TicketCount)
	assert.Equal(t, "Management", got.Department)
	assert.Equal(t, 7000.0, got.UnitPrice)
	assert.False(t, got.HasDateAcquired())

	// The receiver is a copy; the original is untouched.
	assert.Equal(t, "Cashier", p.Department)
}
