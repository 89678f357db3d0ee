package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Attachment struct {
	Kind     string `json:"type"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// To satisfy postgres jsonb data type
type Attachments []Attachment

func (a *Attachments) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("type assertion to []byte failed")
	}
}

func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		a = Attachments{}
	}
	return json.Marshal(a)
}
