package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationPayload struct {
	ScreeningID int64  `validate:"required,gt=0"`
	TicketType  string `validate:"required,oneof=NORMAL REDUCED STUDENT"`
	StartTime   string `validate:"omitempty,datetime=2006-01-02T15:04:05"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(&reservationPayload{
		ScreeningID: 5,
		TicketType:  "STUDENT",
		StartTime:   "2026-03-14T18:30:00",
	})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(&reservationPayload{
		TicketType: "SENIOR",
		StartTime:  "tomorrow",
	})

	require.Len(t, errs, 3)
	assert.Equal(t, "This field is required", errs["ScreeningID"])
	assert.Equal(t, "Must be one of: NORMAL, REDUCED, STUDENT", errs["TicketType"])
	assert.Equal(t, "Must be a date in format 2006-01-02T15:04:05", errs["StartTime"])
}

func TestValidateStructEmailMessage(t *testing.T) {
	payload := struct {
		PaypalEmail string `validate:"omitempty,email"`
	}{PaypalEmail: "not-an-address"}

	errs := ValidateStruct(&payload)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid email format", errs["PaypalEmail"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"TicketType": "Must be one of: NORMAL, REDUCED, STUDENT"})
	assert.Equal(t, "TicketType: Must be one of: NORMAL, REDUCED, STUDENT", out)

	assert.Empty(t, FormatValidationErrors(nil))
}
