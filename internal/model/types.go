package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings stored as a JSON column.
// Scan is format-tolerant: legacy rows hold comma-separated text or a single
// bare string instead of a JSON array, and both still decode.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal StringList: %w", err)
	}
	return b, nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	var raw string
	switch data := src.(type) {
	case []byte:
		raw = string(data)
	case string:
		raw = data
	default:
		return fmt.Errorf("StringList.Scan: expected []byte or string, got %T", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return fmt.Errorf("unmarshal StringList: %w", err)
		}
		*l = out
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			return fmt.Errorf("unmarshal StringList scalar: %w", err)
		}
		*l = StringList{single}
		return nil
	}

	// legacy format: comma-separated plain text
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}
