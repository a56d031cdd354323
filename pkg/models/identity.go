package models

import (
	"strings"
	"unicode"

	"github.com/kvdoc/document/pkg/constants"
)

// key is a string slot that distinguishes "never set" from "set to the empty string".
type key struct {
	value string
	set   bool
}

func (k key) equal(other key) bool {
	return k.set == other.set && k.value == other.value
}

// Identity is the identity of a document stored in a partitioned key-value store.
//
// It holds a partition key and a document key, which are persisted as the
// "partitionKey" and "id" properties of the document, and derives the composite
// identifier from them. The composite identifier is what callers hand to a storage
// client for point lookups, what gets logged, and what routes a request to a partition.
//
// The composite identifier is:
//
//   - the document key alone, when the partition key and document key are equal
//   - "partitionKey:documentKey" otherwise
//
// The partition key may itself be a combined key such as "tenant:user", in which
// case the composite identifier is "tenant:user:doc". See [CombineKeys].
//
// The zero value is an identity with neither part set.
//
// Identity is not safe for concurrent use. [Identity.CompositeID] memoizes its
// result, so even concurrent reads of the same instance must be synchronized by the caller.
type Identity struct {
	partitionKey key
	documentKey  key

	// composite caches the last computed or assigned composite identifier.
	composite key
}

// NewIdentity returns an identity with both parts set.
func NewIdentity(partitionKey, documentKey string) Identity {
	return Identity{
		partitionKey: key{value: partitionKey, set: true},
		documentKey:  key{value: documentKey, set: true},
	}
}

// ParseIdentity returns the identity described by compositeID.
// A blank compositeID results in the zero Identity.
func ParseIdentity(compositeID string) Identity {
	var id Identity
	id.SetCompositeID(compositeID)
	return id
}

// PartitionKey returns the partition key, or "" when it was never set.
func (i *Identity) PartitionKey() string {
	return i.partitionKey.value
}

// HasPartitionKey reports whether the partition key was set.
func (i *Identity) HasPartitionKey() bool {
	return i.partitionKey.set
}

// SetPartitionKey sets the partition key.
// Assigning the current value is a no-op and keeps the cached composite identifier.
func (i *Identity) SetPartitionKey(value string) {
	next := key{value: value, set: true}
	if i.partitionKey.equal(next) {
		return
	}
	i.partitionKey = next
	i.composite = key{}
}

// DocumentKey returns the document key, or "" when it was never set.
func (i *Identity) DocumentKey() string {
	return i.documentKey.value
}

// HasDocumentKey reports whether the document key was set.
func (i *Identity) HasDocumentKey() bool {
	return i.documentKey.set
}

// SetDocumentKey sets the document key.
// Assigning the current value is a no-op and keeps the cached composite identifier.
func (i *Identity) SetDocumentKey(value string) {
	next := key{value: value, set: true}
	if i.documentKey.equal(next) {
		return
	}
	i.documentKey = next
	i.composite = key{}
}

// IsZero reports whether neither part of the identity was set.
func (i *Identity) IsZero() bool {
	return i == nil || (!i.partitionKey.set && !i.documentKey.set)
}

// CompositeID returns the composite identifier.
//
// Reading it on an identity under construction does not fail:
// with neither part set it returns "", and with only one part set it returns that part.
// Such values are defined but carry no meaning as a storage key, so callers that
// need a complete identity should check [Identity.HasPartitionKey] and
// [Identity.HasDocumentKey], or validate the enclosing [Document].
func (i *Identity) CompositeID() string {
	if i.composite.set {
		return i.composite.value
	}

	var id string
	switch {
	case !i.partitionKey.set:
		id = i.documentKey.value
	case !i.documentKey.set:
		id = i.partitionKey.value
	default:
		id = JoinCompositeID(i.partitionKey.value, i.documentKey.value)
	}

	i.composite = key{value: id, set: true}
	return id
}

// SetCompositeID sets both parts of the identity from a composite identifier.
//
// The value is split at the last colon: everything before it becomes the partition
// key and everything after it the document key. A value without a colon sets both parts
// to the value.
//
// A blank value (empty or whitespace only) is ignored and leaves the identity unchanged,
// so that mapping code which copies an identifier before it is populated does not wipe
// out keys that were already set.
func (i *Identity) SetCompositeID(value string) {
	if isBlank(value) {
		return
	}

	if i.derives(value) {
		i.composite = key{value: value, set: true}
		return
	}

	partitionKey, documentKey := splitLast(value)
	i.partitionKey = key{value: partitionKey, set: true}
	i.documentKey = key{value: documentKey, set: true}
	i.composite = key{value: value, set: true}
}

// String returns the composite identifier.
func (i *Identity) String() string {
	return i.CompositeID()
}

// derives reports whether value is the composite identifier the current parts produce.
// It never allocates.
func (i *Identity) derives(value string) bool {
	if !i.partitionKey.set || !i.documentKey.set {
		return false
	}

	pk, dk := i.partitionKey.value, i.documentKey.value
	if pk == dk {
		return value == dk
	}

	return len(value) == len(pk)+1+len(dk) &&
		value[len(pk)] == constants.Delimiter &&
		strings.HasPrefix(value, pk) &&
		strings.HasSuffix(value, dk)
}

// splitLast splits value at its last delimiter.
// Without a delimiter both results are value.
func splitLast(value string) (partitionKey, documentKey string) {
	p := strings.LastIndexByte(value, constants.Delimiter)
	if p < 0 {
		return value, value
	}
	return value[:p], value[p+1:]
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
