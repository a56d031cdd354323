// Package models defines the identity of documents stored in a partitioned key-value store.
//
// A stored document carries two keys: the partition key, which groups documents
// physically or logically, and the document key, unique within its partition.
// [Identity] holds both and derives the composite identifier that callers pass to a
// storage client for point lookups:
//
//	partitionKey == documentKey  ->  documentKey
//	otherwise                    ->  partitionKey + ":" + documentKey
//
// Setting a composite identifier splits it at the last colon, which keeps combined
// partition keys such as "tenant:user" intact:
//
//	var id models.Identity
//	id.SetCompositeID("tenant:user:note")
//	id.PartitionKey() // "tenant:user"
//	id.DocumentKey()  // "note"
//
// # Documents
//
// [Document] adds the creation and modification timestamps and implements the JSON
// and CBOR marshalers with the stored property names "id", "partitionKey",
// "createdAt" and "modifiedAt". The composite identifier is never serialized.
//
// # Codecs
//
// [JSONMarshaler], [JSONUnmarshaler], [CborMarshaler] and [CborUnmarshaler] are
// interchangeable encoders for documents. [ExtractIdentity] reads only the identity of a
// raw JSON document.
package models
