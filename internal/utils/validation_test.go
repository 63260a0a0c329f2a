package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type teamPayload struct {
	Name    string   `validate:"required,max=10"`
	Members []string `validate:"required,min=1,unique,dive,required"`
	Count   int      `validate:"gte=1,lte=5"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(teamPayload{Name: "Core", Members: []string{"a"}, Count: 2}))

	err := ValidateStruct(teamPayload{Members: []string{"a", "a"}, Count: 9})
	assert.EqualError(t, err, "name is required; members must not contain duplicates; count must be less than or equal to 5")
}
