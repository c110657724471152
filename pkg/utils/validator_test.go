package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Seats   *int   `json:"seats" validate:"required,min=1"`
	EventID string `json:"event_id" validate:"omitempty,uuid"`
}

func TestValidateStruct(t *testing.T) {
	seats := 0
	errs := ValidateStruct(sampleRequest{Name: "A", Email: "nope", Seats: &seats, EventID: "x"})

	assert.Equal(t, map[string]string{
		"name":     "Minimum length is 2",
		"email":    "Invalid email format",
		"seats":    "Minimum value is 1",
		"event_id": "Must be a valid UUID",
	}, errs)
}

func TestValidateStruct_Valid(t *testing.T) {
	seats := 3
	errs := ValidateStruct(sampleRequest{Name: "Al", Email: "al@example.com", Seats: &seats})
	assert.Nil(t, errs)
}

func TestValidateStruct_Required(t *testing.T) {
	errs := ValidateStruct(sampleRequest{})
	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "This field is required", errs["seats"])
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"venue": "This field is required",
		"name":  "This field is required",
	})
	assert.Equal(t, "name: This field is required; venue: This field is required", got)
}
