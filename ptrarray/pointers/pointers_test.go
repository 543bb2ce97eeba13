//go:build unit

package pointers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ptr := New("owned")

	require.NotNil(t, ptr)
	assert.Equal(t, "owned", *ptr)

	// Each call allocates a distinct copy.
	assert.NotSame(t, New(42), New(42))
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, ValueOr(New(7), -1))
	assert.Equal(t, -1, ValueOr[int](nil, -1))
}
