package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("a@x.com"))
	require.False(t, IsValidEmail("a@x"))
	require.False(t, IsValidEmail("   "))
}

func TestIsValidColor(t *testing.T) {
	for _, c := range []string{"yellow", "#3788d8", "#fff", "SkyBlue", "bg-blue-100", "rgb(255,0,0)", "light blue"} {
		require.True(t, IsValidColor(c), c)
	}
	for _, c := range []string{"", "   ", strings.Repeat("a", MaxColorLength+1)} {
		require.False(t, IsValidColor(c), c)
	}
}

type sample struct {
	Email      string `validate:"required,email"`
	Recurrence string `validate:"oneof=none daily weekly"`
}

func TestFormatErrors(t *testing.T) {
	err := validator.New().Struct(sample{Email: "", Recurrence: "hourly"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, "email is required; recurrence must be one of: none, daily, weekly", FormatErrors(verrs))
}
