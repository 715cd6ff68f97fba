package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type req struct {
		Email  string `validate:"required,email"`
		Status string `validate:"omitempty,oneof=MAINTENANCE LOST"`
	}
	v := NewCustomValidator()

	require.NoError(t, v.Validate(req{Email: "ann@example.com"}))
	require.NoError(t, v.Validate(req{Email: "ann@example.com", Status: "LOST"}))
	require.Error(t, v.Validate(req{Email: "ann"}))
	require.Error(t, v.Validate(req{Email: "ann@example.com", Status: "BORROWED"}))
}
