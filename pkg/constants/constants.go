package constants

// Delimiter separates the partition key from the document key in a composite identifier,
// and the segments of a combined partition key.
const Delimiter = ':'

// Property names of the identity and metadata fields in a stored document.
const (
	DocumentKeyField  = "id"
	PartitionKeyField = "partitionKey"
	CreatedAtField    = "createdAt"
	ModifiedAtField   = "modifiedAt"
)
