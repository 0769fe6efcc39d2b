package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderRef_Shape(t *testing.T) {
	ref, err := NewOrderRef()
	require.NoError(t, err)
	require.Len(t, ref, 10)
	for _, r := range ref {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'), "char %q", r)
	}
}

func TestNewOrderRef_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := NewOrderRef()
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}
