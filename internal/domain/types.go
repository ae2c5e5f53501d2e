package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is an open string-keyed bag of scalar values, stored as a JSON
// column by the relational adapter.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", src)
	}
	if len(b) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// ValidateMetadata checks that every value in the bag is a scalar. Nested
// objects and arrays are rejected so the bag stays queryable.
func ValidateMetadata(m JSONMap) error {
	for k, v := range m {
		switch v.(type) {
		case string, float64, int, int64, bool, nil:
			// JSON numbers decode as float64; the rest covers programmatic use.
		default:
			return fmt.Errorf("metadata field %q must be a string, number or boolean", k)
		}
	}
	return nil
}

// StringList is a list of strings stored as a JSON column by the relational
// adapter.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
	if len(b) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(b, l)
}
