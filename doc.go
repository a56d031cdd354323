// Package document is the root of the document identity module.
//
// Documents stored in a partitioned key-value store are addressed by a partition key
// and a document key. The [github.com/kvdoc/document/pkg/models] package implements
// the identity of such documents: the two keys, the composite identifier derived from
// them, and the record metadata persisted alongside.
//
// # Composite identifiers
//
// The composite identifier is "partitionKey:documentKey", or just the document key
// when both keys are equal. It is the single string handed to a storage client for
// lookups and deletes, written to logs, and used to route requests. It is derived and
// cached in memory and never persisted as a property of its own.
//
// # Tools
//
// The docid command in cmd/docid splits, joins and mints composite identifiers and
// inspects JSON or CBOR documents.
//
// # Logging
//
// The [github.com/kvdoc/document/pkg/logger] package builds zerolog loggers and adapts
// slog handlers. Identities implement both zerolog.LogObjectMarshaler and slog.LogValuer.
package document
