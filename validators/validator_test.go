package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `validate:"required,min=3"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(sample{Username: "tessia"}))

	err := v.Validate(sample{Username: ""})
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
