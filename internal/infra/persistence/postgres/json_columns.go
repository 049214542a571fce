package postgres

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// toJSON encodes a value for a jsonb column.
func toJSON(value any) (datatypes.JSON, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json column")
	}

	return datatypes.JSON(data), nil
}

// fromJSON decodes a jsonb column, leaving dst untouched when the column is empty.
func fromJSON(data datatypes.JSON, dst any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	return errors.Wrap(json.Unmarshal(data, dst), "failed to decode json column")
}
