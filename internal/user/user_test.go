package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrentUsername_NotEmptyWhenUserSet(t *testing.T) {
	t.Setenv("USER", "fallback")
	assert.NotEmpty(t, GetCurrentUsername())
}

func TestDefaultID_Normalized(t *testing.T) {
	id := DefaultID()
	assert.Equal(t, strings.ToLower(id), id)
	assert.Equal(t, strings.TrimSpace(id), id)
	assert.NotContains(t, id, `\`)
}
