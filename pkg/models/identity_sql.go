package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/kvdoc/document/pkg/constants"
)

// Value stores the identity in a single column as its composite identifier.
func (i Identity) Value() (driver.Value, error) {
	if i.IsZero() {
		return nil, nil
	}
	return i.CompositeID(), nil
}

// Scan reads a composite identifier column. NULL and blank values leave the identity unchanged.
func (i *Identity) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		i.SetCompositeID(v)
	case []byte:
		i.SetCompositeID(string(v))
	default:
		return fmt.Errorf("%w: %T", constants.ErrUnsupportedScanType, value)
	}
	return nil
}
