package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabiogif/moday-backoffice/pkg/validate"
)

type storeHourInput struct {
	DayOfWeek    int    `json:"day_of_week"   validate:"gte=0,lte=6"`
	StartTime    string `json:"start_time"    validate:"required,hhmm"`
	EndTime      string `json:"end_time"      validate:"required,hhmm"`
	StartTime2   string `json:"start_time_2"  validate:"nullable,hhmm"`
	DeliveryType string `json:"delivery_type" validate:"required,in=delivery,pickup,both"`
}

func TestValidStoreHourInput(t *testing.T) {
	errs := validate.Struct(storeHourInput{
		DayOfWeek:    1,
		StartTime:    "08:00",
		EndTime:      "12:00",
		DeliveryType: "both",
	})
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequiredAndHHMM(t *testing.T) {
	errs := validate.Struct(storeHourInput{DeliveryType: "both"})
	assert.Contains(t, errs, "start_time")
	assert.Contains(t, errs, "end_time")

	errs = validate.Struct(storeHourInput{
		StartTime: "8h00", EndTime: "25:00", DeliveryType: "both",
	})
	assert.Equal(t, "The start_time must be a time in HH:MM format.", errs["start_time"])
	assert.Contains(t, errs, "end_time")
}

func TestNullableSkipsRules(t *testing.T) {
	// Empty second period is fine; a malformed one is not.
	in := storeHourInput{StartTime: "08:00", EndTime: "12:00", DeliveryType: "both"}
	assert.False(t, validate.HasErrors(validate.Struct(in)))

	in.StartTime2 = "13h00"
	errs := validate.Struct(in)
	assert.Contains(t, errs, "start_time_2")
}

func TestInRuleWithFollowingRules(t *testing.T) {
	type input struct {
		Type string `json:"type" validate:"required,in=delivery,pickup,both,max=10"`
	}
	assert.False(t, validate.HasErrors(validate.Struct(input{Type: "pickup"})))
	assert.True(t, validate.HasErrors(validate.Struct(input{Type: "drive-thru"})))
}

func TestNumericBounds(t *testing.T) {
	type input struct {
		Day int `json:"day" validate:"gte=0,lte=6"`
	}
	assert.False(t, validate.HasErrors(validate.Struct(input{Day: 6})))
	assert.True(t, validate.HasErrors(validate.Struct(input{Day: 7})))
}

func TestEmailRule(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}
	assert.False(t, validate.HasErrors(validate.Struct(input{Email: "ops@moday.com.br"})))
	assert.True(t, validate.HasErrors(validate.Struct(input{Email: "not-an-email"})))
}

func TestConfirmedRule(t *testing.T) {
	type input struct {
		Password             string `json:"password"              validate:"required,min=8"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	assert.True(t, validate.HasErrors(validate.Struct(input{
		Password: "secret123", PasswordConfirmation: "wrong",
	})))
	assert.False(t, validate.HasErrors(validate.Struct(input{
		Password: "secret123", PasswordConfirmation: "secret123",
	})))
}

func TestMinMaxOnStrings(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	assert.True(t, validate.HasErrors(validate.Struct(input{Name: "a"})))
	assert.True(t, validate.HasErrors(validate.Struct(input{Name: "abcdef"})))
	assert.False(t, validate.HasErrors(validate.Struct(input{Name: "abc"})))
}
