package models

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/kvdoc/document/pkg/constants"
)

// identityWire is the stored shape of an Identity.
// The composite identifier is derived and never part of it.
type identityWire struct {
	DocumentKey  *string `json:"id" cbor:"id"`
	PartitionKey *string `json:"partitionKey" cbor:"partitionKey"`
}

func (i *Identity) toWire() (identityWire, error) {
	if !i.documentKey.set {
		return identityWire{}, constants.ErrMissingDocumentKey
	}
	if !i.partitionKey.set {
		return identityWire{}, constants.ErrMissingPartitionKey
	}

	return identityWire{
		DocumentKey:  &i.documentKey.value,
		PartitionKey: &i.partitionKey.value,
	}, nil
}

// fromWire assigns the parts present in w through the setters so that the cache stays coherent.
func (i *Identity) fromWire(w identityWire) {
	if w.PartitionKey != nil {
		i.SetPartitionKey(*w.PartitionKey)
	}
	if w.DocumentKey != nil {
		i.SetDocumentKey(*w.DocumentKey)
	}
}

// MarshalJSON writes the identity as {"id": ..., "partitionKey": ...}.
// Both parts must be set.
func (i Identity) MarshalJSON() ([]byte, error) {
	w, err := i.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads "id" and "partitionKey". Missing or null properties leave
// the corresponding part untouched.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var w identityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	i.fromWire(w)
	return nil
}

func (i Identity) MarshalCBOR() ([]byte, error) {
	w, err := i.toWire()
	if err != nil {
		return nil, err
	}
	return getCborEncoder().Marshal(w)
}

func (i *Identity) UnmarshalCBOR(data []byte) error {
	var w identityWire
	if err := getCborDecoder().Unmarshal(data, &w); err != nil {
		return err
	}
	i.fromWire(w)
	return nil
}

// ExtractIdentity reads the identity of a JSON document without decoding the rest of it.
//
// Properties other than "id" and "partitionKey" are skipped. A document where either
// property is missing or null yields an identity with that part unset.
func ExtractIdentity(data []byte) (Identity, error) {
	var id Identity

	pk, ok, err := extractString(data, constants.PartitionKeyField)
	if err != nil {
		return Identity{}, err
	}
	if ok {
		id.SetPartitionKey(pk)
	}

	dk, ok, err := extractString(data, constants.DocumentKeyField)
	if err != nil {
		return Identity{}, err
	}
	if ok {
		id.SetDocumentKey(dk)
	}

	return id, nil
}

func extractString(data []byte, field string) (value string, ok bool, err error) {
	raw, dataType, _, err := jsonparser.Get(data, field)
	if err != nil && dataType != jsonparser.NotExist {
		return "", false, err
	}

	switch dataType {
	case jsonparser.NotExist, jsonparser.Null:
		return "", false, nil
	case jsonparser.String:
		value, err = jsonparser.ParseString(raw)
		if err != nil {
			return "", false, fmt.Errorf("property %q: %w", field, err)
		}
		return value, true, nil
	default:
		return "", false, fmt.Errorf("property %q must be a string, got %v", field, dataType)
	}
}
