package models

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/kvdoc/document/pkg/constants"
)

// A record is a struct that embeds Document by value and adds its own properties:
//
//	type Note struct {
//		models.Document
//		Title string `json:"title"`
//	}
//
// Embedding promotes the marshalers of Document, which only know about the document
// properties. A record keeps its own properties by delegating its marshalers to the
// functions below:
//
//	func (n Note) MarshalJSON() ([]byte, error)     { return models.MarshalRecordJSON(n) }
//	func (n *Note) UnmarshalJSON(data []byte) error { return models.UnmarshalRecordJSON(data, n) }
//	func (n Note) MarshalCBOR() ([]byte, error)     { return models.MarshalRecordCBOR(n) }
//	func (n *Note) UnmarshalCBOR(data []byte) error { return models.UnmarshalRecordCBOR(data, n) }
//
// The document properties are written at the top level next to the record's own, and
// win over record properties of the same name.

var documentType = reflect.TypeOf(Document{})

var documentFields = []string{
	constants.DocumentKeyField,
	constants.PartitionKeyField,
	constants.CreatedAtField,
	constants.ModifiedAtField,
}

// recordShape describes a record type: where its Document is, and a method-less struct
// type holding the rest of its exported fields.
type recordShape struct {
	document int
	fields   []int
	shadow   reflect.Type
}

var recordShapes sync.Map // map[reflect.Type]*recordShape

func shapeOf(t reflect.Type) (*recordShape, error) {
	if cached, ok := recordShapes.Load(t); ok {
		return cached.(*recordShape), nil
	}

	shape := &recordShape{document: -1}
	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous && field.Type == documentType {
			shape.document = i
			continue
		}

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		if field.Anonymous && (field.Type.NumMethod() > 0 || reflect.PointerTo(field.Type).NumMethod() > 0) {
			return nil, fmt.Errorf("%w: %s embeds %s, which has methods", constants.ErrNotRecord, t, field.Type)
		}

		fields = append(fields, reflect.StructField{
			Name:      field.Name,
			Type:      field.Type,
			Tag:       field.Tag,
			Anonymous: field.Anonymous,
		})
		shape.fields = append(shape.fields, i)
	}

	if shape.document < 0 {
		return nil, fmt.Errorf("%w: %s does not embed models.Document", constants.ErrNotRecord, t)
	}
	shape.shadow = reflect.StructOf(fields)

	cached, _ := recordShapes.LoadOrStore(t, shape)
	return cached.(*recordShape), nil
}

func inspectRecord(record any, needPointer bool) (reflect.Value, *recordShape, error) {
	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, nil, fmt.Errorf("%w: nil %T", constants.ErrNotRecord, record)
		}
		v = v.Elem()
	} else if needPointer {
		return reflect.Value{}, nil, fmt.Errorf("%w: %T is not a pointer", constants.ErrNotRecord, record)
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("%w: %T is not a struct", constants.ErrNotRecord, record)
	}

	shape, err := shapeOf(v.Type())
	if err != nil {
		return reflect.Value{}, nil, err
	}
	return v, shape, nil
}

// properties copies the record's own fields into a new shadow value and returns a pointer to it.
func (s *recordShape) properties(record reflect.Value) reflect.Value {
	p := reflect.New(s.shadow)
	for j, i := range s.fields {
		p.Elem().Field(j).Set(record.Field(i))
	}
	return p
}

func (s *recordShape) assign(record, properties reflect.Value) {
	for j, i := range s.fields {
		record.Field(i).Set(properties.Elem().Field(j))
	}
}

// MarshalRecordJSON writes a record as a single JSON object holding the document
// properties and the record's own properties.
func MarshalRecordJSON(record any) ([]byte, error) {
	v, shape, err := inspectRecord(record, false)
	if err != nil {
		return nil, err
	}

	doc := v.Field(shape.document).Interface().(Document)
	head, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(shape.properties(v).Interface())
	if err != nil {
		return nil, err
	}

	return spliceJSON(head, body), nil
}

// spliceJSON appends the properties of the object body to the object head.
// Properties of body named like a document property are dropped.
func spliceJSON(head, body []byte) []byte {
	for _, field := range documentFields {
		body = jsonparser.Delete(body, field)
	}

	body = bytes.TrimSpace(body)
	inner := bytes.TrimSpace(body[1 : len(body)-1])
	if len(inner) == 0 {
		return head
	}

	out := make([]byte, 0, len(head)+1+len(inner))
	out = append(out, head[:len(head)-1]...)
	out = append(out, ',')
	out = append(out, inner...)
	return append(out, '}')
}

// UnmarshalRecordJSON reads a JSON object into the Document embedded in record and into
// the record's own fields. record must be a pointer.
func UnmarshalRecordJSON(data []byte, record any) error {
	v, shape, err := inspectRecord(record, true)
	if err != nil {
		return err
	}

	doc := v.Field(shape.document).Addr().Interface().(*Document)
	if err := doc.UnmarshalJSON(data); err != nil {
		return err
	}

	props := shape.properties(v)
	if err := json.Unmarshal(data, props.Interface()); err != nil {
		return err
	}
	shape.assign(v, props)
	return nil
}

// MarshalRecordCBOR writes a record as a single CBOR map holding the document
// properties and the record's own properties.
func MarshalRecordCBOR(record any) ([]byte, error) {
	v, shape, err := inspectRecord(record, false)
	if err != nil {
		return nil, err
	}

	doc := v.Field(shape.document).Interface().(Document)
	head, err := doc.MarshalCBOR()
	if err != nil {
		return nil, err
	}

	body, err := getCborEncoder().Marshal(shape.properties(v).Interface())
	if err != nil {
		return nil, err
	}

	props := map[string]cbor.RawMessage{}
	if err := getCborDecoder().Unmarshal(body, &props); err != nil {
		return nil, err
	}

	var docProps map[string]cbor.RawMessage
	if err := getCborDecoder().Unmarshal(head, &docProps); err != nil {
		return nil, err
	}
	for k, raw := range docProps {
		props[k] = raw
	}

	return getCborEncoder().Marshal(props)
}

// UnmarshalRecordCBOR reads a CBOR map into the Document embedded in record and into
// the record's own fields. record must be a pointer.
func UnmarshalRecordCBOR(data []byte, record any) error {
	v, shape, err := inspectRecord(record, true)
	if err != nil {
		return err
	}

	doc := v.Field(shape.document).Addr().Interface().(*Document)
	if err := doc.UnmarshalCBOR(data); err != nil {
		return err
	}

	props := shape.properties(v)
	if err := getCborDecoder().Unmarshal(data, props.Interface()); err != nil {
		return err
	}
	shape.assign(v, props)
	return nil
}
