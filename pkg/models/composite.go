package models

import (
	"strings"

	"github.com/gofrs/uuid"
	"github.com/kvdoc/document/pkg/constants"
)

// SplitCompositeID splits a composite identifier into its partition key and document key
// using the same rule as [Identity.SetCompositeID].
//
// ok is false when s is blank, in which case both keys are "".
func SplitCompositeID(s string) (partitionKey, documentKey string, ok bool) {
	if isBlank(s) {
		return "", "", false
	}
	partitionKey, documentKey = splitLast(s)
	return partitionKey, documentKey, true
}

// JoinCompositeID returns the composite identifier for a partition key and a document key.
//
// When the two are equal the document key is returned as is. Otherwise the result is built
// in a single allocation.
func JoinCompositeID(partitionKey, documentKey string) string {
	if partitionKey == documentKey {
		return documentKey
	}

	var b strings.Builder
	b.Grow(len(partitionKey) + 1 + len(documentKey))
	b.WriteString(partitionKey)
	b.WriteByte(constants.Delimiter)
	b.WriteString(documentKey)
	return b.String()
}

// CombineKeys joins key segments into a combined partition key, e.g. "tenant:user".
func CombineKeys(parts ...string) string {
	return strings.Join(parts, string(constants.Delimiter))
}

// NewDocumentKey returns a new random document key.
func NewDocumentKey() string {
	return uuid.Must(uuid.NewV4()).String()
}

// NewSelfPartitionedIdentity returns an identity whose partition key is its own, newly
// generated, document key. Its composite identifier is the bare document key.
func NewSelfPartitionedIdentity() Identity {
	k := NewDocumentKey()
	return NewIdentity(k, k)
}
