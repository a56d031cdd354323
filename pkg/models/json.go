package models

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/kvdoc/document/internal/codec"
)

type JSONMarshaler struct {
}

func (j JSONMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j JSONMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return json.NewEncoder(w)
}

type JSONUnmarshaler struct {
}

func (j JSONUnmarshaler) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (j JSONUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return json.NewDecoder(r)
}
