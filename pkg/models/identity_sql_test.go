package models

import (
	"database/sql/driver"
	"testing"

	"github.com/kvdoc/document/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Value(t *testing.T) {
	var zero Identity
	v, err := zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	id := NewIdentity("pk", "doc")
	v, err = id.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("pk:doc"), v)
}

func TestIdentity_Scan(t *testing.T) {
	testcases := []struct {
		name     string
		src      any
		expected string
	}{
		{name: "string", src: "a:b:c", expected: "a:b:c"},
		{name: "bytes", src: []byte("left:right"), expected: "left:right"},
		{name: "null keeps identity", src: nil, expected: "pk:doc"},
		{name: "blank keeps identity", src: "  ", expected: "pk:doc"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewIdentity("pk", "doc")
			require.NoError(t, id.Scan(tc.src))
			assert.Equal(t, tc.expected, id.CompositeID())
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var id Identity
		err := id.Scan(42)
		assert.ErrorIs(t, err, constants.ErrUnsupportedScanType)
		assert.True(t, id.IsZero())
	})
}
