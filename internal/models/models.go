package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/lib/pq"
)

const (
	ErrNameRequired        = errors.ConstError("Name is required")
	ErrDesignationRequired = errors.ConstError("Designation is required")
)

// Position is one role a company is hiring for. The keys are free-form
// (title, ctc, openings, ...) so it is stored as a JSON object.
type Position map[string]any

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Unique index backs up the name pre-check done by the service.
	Name     string `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Location string `json:"location"`

	Positions           []Position     `gorm:"type:jsonb;serializer:json" json:"positions"`
	EligibilityCriteria pq.StringArray `gorm:"type:text[]" json:"eligibilityCriteria"`
}

type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `gorm:"not null" json:"name" validate:"required"`
	Designation string `gorm:"not null" json:"designation" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps a failed "required" tag to the message returned to clients.
var fieldErrors = map[string]error{
	"Name":        ErrNameRequired,
	"Designation": ErrDesignationRequired,
}

// Validate rejects a company that is missing a required field.
func (c *Company) Validate() error {
	return validateStruct(c)
}

// Validate rejects an admin that is missing a required field.
func (a *Admin) Validate() error {
	return validateStruct(a)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if known, ok := fieldErrors[fieldErrs[0].Field()]; ok {
			return known
		}
		return errors.NotValidf("field %s", fieldErrs[0].Field())
	}
	return errors.Trace(err)
}

// Normalize replaces nil collections so that a company round-trips as
// empty arrays instead of nulls.
func (c *Company) Normalize() {
	if c.Positions == nil {
		c.Positions = []Position{}
	}
	if c.EligibilityCriteria == nil {
		c.EligibilityCriteria = pq.StringArray{}
	}
}
