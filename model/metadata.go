package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/siherrmann/thinkermap/helper"
)

// Metadata holds free-form attributes of thinkers and connections,
// e.g. field, nationality or a source citation. Stored as JSONB.
type Metadata map[string]interface{}

// Value writes the attributes into the jsonb column
func (m Metadata) Value() (driver.Value, error) {
	return m.Marshal()
}

// Scan reads the jsonb column, NULL gives no attributes
func (m *Metadata) Scan(value interface{}) error {
	return m.Unmarshal(value)
}

// Marshal encodes the attributes, a thinker without attributes is stored as {}
func (m Metadata) Marshal() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Unmarshal accepts what the driver or a snapshot file hands over:
// raw jsonb bytes, a JSON string or already decoded attributes.
func (m *Metadata) Unmarshal(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = Metadata{}
	case Metadata:
		*m = v
	case []byte:
		return m.decode(v)
	case string:
		return m.decode([]byte(v))
	default:
		return helper.NewError("metadata type assertion", errors.New("expected []byte or string"))
	}
	return nil
}

func (m *Metadata) decode(b []byte) error {
	attributes := Metadata{}
	if err := json.Unmarshal(b, &attributes); err != nil {
		return helper.NewError("decode thinker attributes", err)
	}
	*m = attributes
	return nil
}
