package model

import (
	"encoding/json"
	"fmt"
)

// Status is the completion state of an item.
type Status string

const (
	Pending Status = "Pending"
	Success Status = "Success"
)

// Toggle flips Pending and Success.
func (s Status) Toggle() Status {
	if s == Success {
		return Pending
	}
	return Success
}

func (s Status) Done() bool { return s == Success }

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool { return s == Pending || s == Success }

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !Status(raw).Valid() {
		return fmt.Errorf("unknown status %q", raw)
	}
	*s = Status(raw)
	return nil
}

// Item is the domain model for a todo entry.
// ID is assigned once at creation and never changes.
type Item struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status Status `json:"status"`
}

// Patch carries the fields an edit should overwrite. Nil fields are left alone.
type Patch struct {
	Text   *string
	Status *Status
}

func TextPatch(text string) Patch { return Patch{Text: &text} }
func StatusPatch(status Status) Patch { return Patch{Status: &status} }
