// Staged form values captured while a modal is open.
package types

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Draft field names accepted by FormDraft.Set and FormDraft.Get.
const (
	FieldDepartment   = "department"
	FieldItemCode     = "itemCode"
	FieldPartName     = "partName"
	FieldDescription  = "description"
	FieldUnitPrice    = "unitPrice"
	FieldDateAcquired = "dateAcquired"
	FieldSerialNumber = "serialNumber"
	FieldSupplier     = "supplier"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []string{
	FieldDepartment,
	FieldItemCode,
	FieldPartName,
	FieldDateAcquired,
	FieldSerialNumber,
	FieldUnitPrice,
	FieldDescription,
	FieldSupplier,
}

// FormDraft holds raw, unvalidated field values for a part. Values are kept
// exactly as entered; coercion happens only when a store accepts the draft.
type FormDraft struct {
	Department   string `json:"department" validate:"required"`
	ItemCode     string `json:"itemCode" validate:"required"`
	PartName     string `json:"partName" validate:"required"`
	Description  string `json:"description"`
	UnitPrice    string `json:"unitPrice"`
	DateAcquired string `json:"dateAcquired" validate:"omitempty,datetime=2006-01-02,nonzerodate"`
	SerialNumber string `json:"serialNumber"`
	Supplier     string `json:"supplier"`
}

const tagNonZeroDate = "nonzerodate"

// validate is shared by every draft; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names by their JSON tag so errors name draft fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// 0001-01-01 is time.Time's zero value, which records read as "no date".
	if err := v.RegisterValidation(tagNonZeroDate, func(fl validator.FieldLevel) bool {
		t, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil && !t.IsZero()
	}); err != nil {
		panic(err)
	}
	return v
}

// field returns a pointer to the named draft field.
func (d *FormDraft) field(name string) (*string, error) {
	switch name {
	case FieldDepartment:
		return &d.Department, nil
	case FieldItemCode:
		return &d.ItemCode, nil
	case FieldPartName:
		return &d.PartName, nil
	case FieldDescription:
		return &d.Description, nil
	case FieldUnitPrice:
		return &d.UnitPrice, nil
	case FieldDateAcquired:
		return &d.DateAcquired, nil
	case FieldSerialNumber:
		return &d.SerialNumber, nil
	case FieldSupplier:
		return &d.Supplier, nil
	default:
		return nil, ErrUnknownField
	}
}

// Set applies a single field update. No validation runs here.
// Returns ErrUnknownField for names outside DraftFields, including the
// system-maintained "id" and "ticketCount".
func (d *FormDraft) Set(name, value string) error {
	f, err := d.field(name)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Get returns the raw value of the named field.
func (d FormDraft) Get(name string) (string, error) {
	f, err := d.field(name)
	if err != nil {
		return "", err
	}
	return *f, nil
}

// Validate runs the submit-time checks: department, itemCode and partName
// must be non-empty and dateAcquired, when present, must be a YYYY-MM-DD date
// after 0001-01-01.
// The unit price is never rejected. Returns a *ValidationError on failure.
func (d FormDraft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		tag := ProblemFormat
		if fe.Tag() == "required" {
			tag = ProblemRequired
		}
		ve.Problems = append(ve.Problems, FieldProblem{Field: fe.Field(), Tag: tag})
	}
	return ve
}

// DraftFromRecord copies the editable fields of p into a new draft. The unit
// price is rendered in its shortest decimal form.
func DraftFromRecord(p PartRecord) FormDraft {
	return FormDraft{
		Department:   p.Department,
		ItemCode:     p.ItemCode,
		PartName:     p.PartName,
		Description:  p.Description,
		UnitPrice:    strconv.FormatFloat(p.UnitPrice, 'f', -1, 64),
		DateAcquired: p.DateAcquiredString(),
		SerialNumber: p.SerialNumber,
		Supplier:     p.Supplier,
	}
}
