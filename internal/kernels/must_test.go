package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustHold(t *testing.T) {
	assert.NotPanics(t, func() { mustHold(nil) })

	err := ValidateMaxpool(16, 4, 1, 4, 4, 1, 0)
	require.ErrorIs(t, err, ErrStride)
	assert.PanicsWithValue(t, "kernels: "+err.Error(), func() { mustHold(err) })
}
