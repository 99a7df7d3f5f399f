package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFixture struct {
	Title     string `validate:"required,max=10"`
	Score     int    `validate:"gte=1,lte=10"`
	Ownership string `validate:"required,oneof=WANT_TO_BUY OWN SOLD"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		details := ValidateStruct(&validatorFixture{Title: "Dune", Score: 5, Ownership: "OWN"})
		assert.Nil(t, details)
	})

	t.Run("required", func(t *testing.T) {
		details := ValidateStruct(&validatorFixture{Score: 5, Ownership: "OWN"})
		require.Len(t, details, 1)
		assert.Equal(t, "title", details[0].Field)
		assert.Equal(t, "Title is required", details[0].Message)
	})

	t.Run("range", func(t *testing.T) {
		details := ValidateStruct(&validatorFixture{Title: "Dune", Score: 11, Ownership: "OWN"})
		require.Len(t, details, 1)
		assert.Equal(t, "score", details[0].Field)
		assert.Equal(t, "Score must be at most 10", details[0].Message)
	})

	t.Run("oneof", func(t *testing.T) {
		details := ValidateStruct(&validatorFixture{Title: "Dune", Score: 5, Ownership: "BORROWED"})
		require.Len(t, details, 1)
		assert.Equal(t, "ownership", details[0].Field)
		assert.Contains(t, details[0].Message, "must be one of")
	})

	t.Run("collects every failure", func(t *testing.T) {
		details := ValidateStruct(&validatorFixture{Title: "a very long title indeed", Score: 0})
		assert.Len(t, details, 3)
	})
}
