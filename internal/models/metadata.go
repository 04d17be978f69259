package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Metadata is an opaque key-value bag carried on a transaction. The ledger
// stores it verbatim and never interprets it; its structure belongs to the
// calling feature (escrow references, order ids and the like).
type Metadata map[string]string

// Value implements driver.Valuer, serializing the bag as JSONB.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported metadata source type")
}
