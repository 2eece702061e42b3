package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Job post statuses
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// JobPost represents a job offer published by a company
type JobPost struct {
	ID           int        `json:"id,omitempty"`
	UserID       FlexibleID `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Status       string     `json:"status"`
	Salary       string     `json:"salary"`
	Address      string     `json:"address"`
	CompanyEmail string     `json:"company_email,omitempty"`
	CompanyName  string     `json:"company_name,omitempty"`
}

// FlexibleID can unmarshal from either a JSON number or a JSON string.
// The backend hands out numeric user ids while older clients send them quoted.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as string first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexibleID(strings.TrimSpace(str))
		return nil
	}

	// Then as a number
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		if _, err := strconv.ParseInt(num.String(), 10, 64); err != nil {
			return fmt.Errorf("id must be an integer, got %s", num)
		}
		*f = FlexibleID(num.String())
		return nil
	}

	if string(data) == "null" {
		*f = ""
		return nil
	}

	return fmt.Errorf("id must be a string or number, got %s", string(data))
}

// MarshalJSON writes numeric ids as JSON numbers and anything else as a string
func (f FlexibleID) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(f), 10, 64); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// String returns the id as text
func (f FlexibleID) String() string {
	return string(f)
}

// IsZero reports whether no id was supplied
func (f FlexibleID) IsZero() bool {
	return f == ""
}
