package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type subscribeForm struct {
	Email string `validate:"required,email"`
	Name  string `validate:"max=5"`
}

func TestValidate_PassesCleanStruct(t *testing.T) {
	got := Validate(subscribeForm{Email: "fan@example.com", Name: "Mara"})

	assert.Nil(t, got)
}

func TestValidate_ReportsPerFieldReasons(t *testing.T) {
	got := Validate(subscribeForm{Email: "not-an-address", Name: "toolongname"})

	assert.Equal(t, map[string]string{
		"email": "must be a valid email address",
		"name":  "must be at most 5",
	}, got)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	got := Validate(subscribeForm{})

	assert.Equal(t, "is required", got["email"])
}
