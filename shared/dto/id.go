package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a request id that decodes from a JSON number or a numeric string. Values that are not
// numbers decode as -1 so callers reject them as invalid ids rather than as missing ones.
type ID int64

func (i *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err //nolint:wrapcheck
		}

		raw = strings.TrimSpace(s)
		if raw == "" {
			*i = 0

			return nil
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value != float64(int64(value)) {
		*i = -1

		return nil
	}

	*i = ID(value)

	return nil
}

// Int64Ptr returns nil for a nil receiver.
func (i *ID) Int64Ptr() *int64 {
	if i == nil {
		return nil
	}

	v := int64(*i)

	return &v
}
