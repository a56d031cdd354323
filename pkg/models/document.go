package models

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"
	"github.com/kvdoc/document/pkg/constants"
)

// Document is the base of every record stored in a partitioned document store.
//
// It is persisted as:
//
//	{
//	  "id":           document key,
//	  "partitionKey": partition key,
//	  "createdAt":    creation time,
//	  "modifiedAt":   last modification time, omitted when unset
//	}
//
// The composite identifier of the embedded [Identity] is never persisted.
//
// Record types embed Document. Embedding promotes the JSON and CBOR marshalers of
// Document, which write the document properties only, so a record type that adds
// properties delegates its marshalers to [MarshalRecordJSON], [UnmarshalRecordJSON],
// [MarshalRecordCBOR] and [UnmarshalRecordCBOR].
//
// Methods of [Identity] are promoted as well. In particular Document, and every record
// embedding it, is a driver.Valuer and sql.Scanner that stores only the composite
// identifier in a single column, and String returns the composite identifier.
type Document struct {
	Identity

	CreatedAt  time.Time
	ModifiedAt *time.Time
}

type documentWire struct {
	DocumentKey  *string    `json:"id" cbor:"id"`
	PartitionKey *string    `json:"partitionKey" cbor:"partitionKey"`
	CreatedAt    time.Time  `json:"createdAt" cbor:"createdAt"`
	ModifiedAt   *time.Time `json:"modifiedAt,omitempty" cbor:"modifiedAt,omitempty"`
}

// NewDocument returns a document with both identity parts set.
func NewDocument(partitionKey, documentKey string, createdAt time.Time) Document {
	return Document{
		Identity:  NewIdentity(partitionKey, documentKey),
		CreatedAt: createdAt,
	}
}

// Touch records a modification at now. A document that was never stamped gets now
// as its creation time instead.
func (d *Document) Touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
		return
	}
	d.ModifiedAt = &now
}

// Validate checks that the document can be written: both identity parts are set and
// the creation time is stamped.
func (d *Document) Validate() error {
	err := validation.Errors{
		constants.DocumentKeyField:  validation.Validate(d.HasDocumentKey(), validation.Required.Error("is required")),
		constants.PartitionKeyField: validation.Validate(d.HasPartitionKey(), validation.Required.Error("is required")),
		constants.CreatedAtField:    validation.Validate(d.CreatedAt, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w %q: %w", constants.ErrInvalidDocument, d.CompositeID(), err)
	}
	return nil
}

func (d Document) toWire() (documentWire, error) {
	id, err := d.Identity.toWire()
	if err != nil {
		return documentWire{}, err
	}
	return documentWire{
		DocumentKey:  id.DocumentKey,
		PartitionKey: id.PartitionKey,
		CreatedAt:    d.CreatedAt,
		ModifiedAt:   d.ModifiedAt,
	}, nil
}

func (d *Document) fromWire(w documentWire) {
	d.Identity.fromWire(identityWire{DocumentKey: w.DocumentKey, PartitionKey: w.PartitionKey})
	d.CreatedAt = w.CreatedAt
	d.ModifiedAt = w.ModifiedAt
}

func (d Document) MarshalJSON() ([]byte, error) {
	w, err := d.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.fromWire(w)
	return nil
}

func (d Document) MarshalCBOR() ([]byte, error) {
	w, err := d.toWire()
	if err != nil {
		return nil, err
	}
	return getCborEncoder().Marshal(w)
}

func (d *Document) UnmarshalCBOR(data []byte) error {
	var w documentWire
	if err := getCborDecoder().Unmarshal(data, &w); err != nil {
		return err
	}
	d.fromWire(w)
	return nil
}
