package models

import (
	"log/slog"

	"github.com/kvdoc/document/pkg/constants"
	"github.com/rs/zerolog"
)

const compositeIDField = "compositeId"

// MarshalZerologObject lets an identity be logged with zerolog's Event.Object.
func (i *Identity) MarshalZerologObject(e *zerolog.Event) {
	e.Str(compositeIDField, i.CompositeID()).
		Str(constants.PartitionKeyField, i.PartitionKey()).
		Str(constants.DocumentKeyField, i.DocumentKey())
}

// LogValue implements slog.LogValuer.
func (i *Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(compositeIDField, i.CompositeID()),
		slog.String(constants.PartitionKeyField, i.PartitionKey()),
		slog.String(constants.DocumentKeyField, i.DocumentKey()),
	)
}
