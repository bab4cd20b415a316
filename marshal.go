package typeid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText returns the canonical text form. It implements
// encoding.TextMarshaler, which also makes TypeID usable as a JSON object
// key.
func (id TypeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical text form, accepting exactly what
// Parse accepts. It implements encoding.TextUnmarshaler.
func (id *TypeID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as a JSON string in canonical form.
func (id TypeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a JSON string and validates it like Parse. Anything
// but a string holding a well formed identifier is an error; a JSON null is
// rejected rather than producing a partial identifier.
func (id *TypeID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. Identifiers are stored in canonical text
// form, which keeps database ordering aligned with Compare.
func (id TypeID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner for text columns, accepting string or []byte.
// A NULL source is an error; scan into a *sql.NullString first when the
// column is nullable.
func (id *TypeID) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into TypeID", src)
	}
}
