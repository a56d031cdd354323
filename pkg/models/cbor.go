package models

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/kvdoc/document/internal/codec"
)

var (
	cborEncMode = mustCborEncMode()
	cborDecMode = mustCborDecMode()
)

type CborMarshaler struct {
}

func (c CborMarshaler) Marshal(v any) ([]byte, error) {
	return getCborEncoder().Marshal(v)
}

func (c CborMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return getCborEncoder().NewEncoder(w)
}

type CborUnmarshaler struct {
}

func (c CborUnmarshaler) Unmarshal(data []byte, dst any) error {
	return getCborDecoder().Unmarshal(data, dst)
}

func (c CborUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return getCborDecoder().NewDecoder(r)
}

func getCborEncoder() cbor.EncMode {
	return cborEncMode
}

func getCborDecoder() cbor.DecMode {
	return cborDecMode
}

func mustCborEncMode() cbor.EncMode {
	em, err := cbor.EncOptions{
		Time:    cbor.TimeRFC3339,
		TimeTag: cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(err)
	}

	return em
}

func mustCborDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		TimeTagToAny: cbor.TimeTagToTime,
	}.DecMode()
	if err != nil {
		panic(err)
	}

	return dm
}
