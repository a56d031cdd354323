package models

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_CompositeID_combinedPartitionKey(t *testing.T) {
	guid1 := NewDocumentKey()
	guid2 := NewDocumentKey()
	guid3 := NewDocumentKey()

	var id Identity
	id.SetDocumentKey(guid1)
	id.SetPartitionKey(CombineKeys(guid2, guid3))

	assert.Equal(t, guid2+":"+guid3+":"+guid1, id.CompositeID())
}

func TestIdentity_SetCompositeID_combinedPartitionKey(t *testing.T) {
	guid1 := NewDocumentKey()
	guid2 := NewDocumentKey()
	guid3 := NewDocumentKey()

	var id Identity
	id.SetCompositeID(guid2 + ":" + guid3 + ":" + guid1)

	assert.Equal(t, guid2+":"+guid3, id.PartitionKey())
	assert.Equal(t, guid1, id.DocumentKey())
}

func TestIdentity_CompositeID(t *testing.T) {
	testcases := []struct {
		name         string
		partitionKey string
		documentKey  string
		expected     string
	}{
		{name: "equal parts collapse", partitionKey: "sameValue", documentKey: "sameValue", expected: "sameValue"},
		{name: "different parts are joined", partitionKey: "pkValue", documentKey: "docValue", expected: "pkValue:docValue"},
		{name: "combined partition key", partitionKey: "g2:g3", documentKey: "g1", expected: "g2:g3:g1"},
		{name: "empty partition key", partitionKey: "", documentKey: "right", expected: ":right"},
		{name: "empty document key", partitionKey: "left", documentKey: "", expected: "left:"},
		{name: "both empty", partitionKey: "", documentKey: "", expected: ""},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewIdentity(tc.partitionKey, tc.documentKey)
			assert.Equal(t, tc.expected, id.CompositeID())
			assert.Equal(t, tc.expected, id.String())
		})
	}
}

func TestIdentity_CompositeID_partiallySet(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		var id Identity
		assert.True(t, id.IsZero())
		assert.Equal(t, "", id.CompositeID())
	})

	t.Run("only partition key", func(t *testing.T) {
		var id Identity
		id.SetPartitionKey("pk")
		assert.False(t, id.IsZero())
		assert.Equal(t, "pk", id.CompositeID())
	})

	t.Run("only document key", func(t *testing.T) {
		var id Identity
		id.SetDocumentKey("doc")
		assert.Equal(t, "doc", id.CompositeID())

		id.SetPartitionKey("pk")
		assert.Equal(t, "pk:doc", id.CompositeID())
	})
}

func TestIdentity_SetCompositeID(t *testing.T) {
	testcases := []struct {
		name         string
		value        string
		partitionKey string
		documentKey  string
	}{
		{name: "no colon", value: "onlyValue", partitionKey: "onlyValue", documentKey: "onlyValue"},
		{name: "single colon", value: "left:right", partitionKey: "left", documentKey: "right"},
		{name: "multiple colons split at the last one", value: "a:b:c", partitionKey: "a:b", documentKey: "c"},
		{name: "leading colon", value: ":right", partitionKey: "", documentKey: "right"},
		{name: "trailing colon", value: "left:", partitionKey: "left", documentKey: ""},
		{name: "inner whitespace is kept", value: " a : b ", partitionKey: " a ", documentKey: " b "},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var id Identity
			id.SetCompositeID(tc.value)

			require.True(t, id.HasPartitionKey())
			require.True(t, id.HasDocumentKey())
			assert.Equal(t, tc.partitionKey, id.PartitionKey())
			assert.Equal(t, tc.documentKey, id.DocumentKey())
			assert.Equal(t, tc.value, id.CompositeID())
		})
	}
}

func TestIdentity_SetCompositeID_blankIsNoop(t *testing.T) {
	blanks := []string{"", "   ", "\t\n", " "}

	t.Run("keeps existing keys", func(t *testing.T) {
		id := NewIdentity("initialPK", "initialID")
		for _, blank := range blanks {
			id.SetCompositeID(blank)
			assert.Equal(t, "initialPK", id.PartitionKey())
			assert.Equal(t, "initialID", id.DocumentKey())
		}
		assert.Equal(t, "initialPK:initialID", id.CompositeID())
	})

	t.Run("keeps unset keys unset", func(t *testing.T) {
		var id Identity
		for _, blank := range blanks {
			id.SetCompositeID(blank)
		}
		assert.False(t, id.HasPartitionKey())
		assert.False(t, id.HasDocumentKey())
		assert.True(t, id.IsZero())
	})
}

func TestIdentity_roundTrip(t *testing.T) {
	inputs := []string{
		"plainValue",
		"one:two",
		"x:y:z:w",
		":leading",
		"trailing:",
		"::a",
		"a::",
		" padded ",
		"ünïcödé:κλειδί",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var id Identity
			id.SetCompositeID(input)
			assert.Equal(t, input, id.CompositeID())

			// A fresh identity built from the parts derives the same value.
			rebuilt := NewIdentity(id.PartitionKey(), id.DocumentKey())
			assert.Equal(t, input, rebuilt.CompositeID())
		})
	}
}

func TestIdentity_cacheInvalidation(t *testing.T) {
	id := NewIdentity("pk", "doc")
	require.Equal(t, "pk:doc", id.CompositeID())

	id.SetPartitionKey("other")
	assert.Equal(t, "other:doc", id.CompositeID())

	id.SetDocumentKey("item")
	assert.Equal(t, "other:item", id.CompositeID())

	id.SetDocumentKey("other")
	assert.Equal(t, "other", id.CompositeID())

	id.SetCompositeID("x:y")
	assert.Equal(t, "x:y", id.CompositeID())

	id.SetPartitionKey("")
	assert.Equal(t, ":y", id.CompositeID())
}

func TestIdentity_unchangedWritesKeepCache(t *testing.T) {
	id := NewIdentity("pk", "doc")
	first := id.CompositeID()

	id.SetPartitionKey("pk")
	id.SetDocumentKey("doc")

	second := id.CompositeID()
	assert.Equal(t, first, second)
	assert.Same(t, unsafe.StringData(first), unsafe.StringData(second))
}

func TestIdentity_SetCompositeID_derivableValueKeepsParts(t *testing.T) {
	id := NewIdentity("pk", "doc")
	pk, dk := id.PartitionKey(), id.DocumentKey()

	value := "pk" + ":" + "doc"
	id.SetCompositeID(value)

	assert.Same(t, unsafe.StringData(pk), unsafe.StringData(id.PartitionKey()))
	assert.Same(t, unsafe.StringData(dk), unsafe.StringData(id.DocumentKey()))
	assert.Same(t, unsafe.StringData(value), unsafe.StringData(id.CompositeID()))

	t.Run("equal parts containing a colon", func(t *testing.T) {
		id := NewIdentity("a:b", "a:b")
		id.SetCompositeID("a:b")

		assert.Equal(t, "a:b", id.PartitionKey())
		assert.Equal(t, "a:b", id.DocumentKey())
		assert.Equal(t, "a:b", id.CompositeID())
	})
}

func TestIdentity_SetCompositeID_sharesValue(t *testing.T) {
	value := "tenant:user:doc"

	var id Identity
	id.SetCompositeID(value)

	assert.Same(t, unsafe.StringData(value), unsafe.StringData(id.PartitionKey()))
	assert.Same(t, unsafe.StringData(value), unsafe.StringData(id.CompositeID()))
}

func TestIdentity_CompositeID_allocations(t *testing.T) {
	id := NewIdentity("tenant:user", "doc")

	allocs := testing.AllocsPerRun(100, func() {
		id.SetPartitionKey("tenant:user")
		_ = id.CompositeID()
	})
	assert.Zero(t, allocs)
}

func TestParseIdentity(t *testing.T) {
	id := ParseIdentity("g2:g3:g1")
	assert.Equal(t, "g2:g3", id.PartitionKey())
	assert.Equal(t, "g1", id.DocumentKey())

	blank := ParseIdentity("  ")
	assert.True(t, blank.IsZero())
}
