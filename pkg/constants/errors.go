package constants

import "errors"

// Errors
var (
	ErrMissingDocumentKey  = errors.New("document key is not set")
	ErrMissingPartitionKey = errors.New("partition key is not set")
	ErrInvalidDocument     = errors.New("invalid document")
)

var (
	ErrUnsupportedScanType = errors.New("unsupported scan type for identity")
	ErrUnknownFormat       = errors.New("unknown document format")
)

var (
	ErrNotRecord = errors.New("value is not a record embedding a document")
)
