package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Action is the kind of mutation a change record describes
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Actions lists every supported action in display order
var Actions = []Action{ActionCreated, ActionUpdated, ActionDeleted}

// Valid reports whether the action is one the audit log records
func (a Action) Valid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionDeleted:
		return true
	}
	return false
}

// Label returns a human readable label for the action
func (a Action) Label() string {
	switch a {
	case ActionCreated:
		return "Created"
	case ActionUpdated:
		return "Updated"
	case ActionDeleted:
		return "Deleted"
	}
	return string(a)
}

// ChangedFields maps attribute names to the value they held after a mutation
type ChangedFields map[string]any

// Encode serializes the fields for storage. A nil or empty mapping encodes to nil.
func (f ChangedFields) Encode() ([]byte, error) {
	if len(f) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(map[string]any(f))
	if err != nil {
		return nil, fmt.Errorf("failed to encode changed fields: %w", err)
	}
	return data, nil
}

// DecodeChangedFields parses a stored changed-fields document. Numbers are
// returned as json.Number.
func DecodeChangedFields(data []byte) (ChangedFields, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode changed fields: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return ChangedFields(fields), nil
}

// Change represents a single model change event, typically one CRUD action on an entity
type Change struct {
	ID         int64         `json:"id" db:"id"`
	EntityType string        `json:"model" db:"model"`
	EntityKey  string        `json:"key" db:"key"`
	Action     Action        `json:"action" db:"action"`
	Title      *string       `json:"title,omitempty" db:"title"`
	Changed    ChangedFields `json:"changed,omitempty" db:"changed"`
	AdminID    int64         `json:"admin_id" db:"admin_id"`
	Deleted    bool          `json:"deleted" db:"deleted"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`

	// Joined fields (populated from joins with admins table)
	AdminEmail string `json:"admin_email,omitempty" db:"admin_email"`
	AdminName  string `json:"admin_name,omitempty" db:"admin_name"`
}

// HasChanges reports whether the record carries a changed-fields payload
func (c *Change) HasChanges() bool {
	return len(c.Changed) > 0
}

// TitleOrKey returns the snapshotted title, falling back to the entity key
func (c *Change) TitleOrKey() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	return "#" + c.EntityKey
}

// hiddenDisplayAttributes are bookkeeping or credential fields never shown in the admin
var hiddenDisplayAttributes = map[string]bool{
	"id":             true,
	"updated_at":     true,
	"created_at":     true,
	"password":       true,
	"remember_token": true,
}

// DisplayAttributes returns the changed fields that should be shown to an admin, keyed by a
// readable title. Empty values are kept so that updates to NULL remain visible.
func (c *Change) DisplayAttributes() map[string]any {
	out := make(map[string]any, len(c.Changed))
	for key, val := range c.Changed {
		if hiddenDisplayAttributes[key] {
			continue
		}
		out[TitleFromKey(key)] = val
	}
	return out
}

// ChangeFilter narrows a listing of change records. Zero values are ignored.
type ChangeFilter struct {
	EntityType string
	EntityKey  string
	AdminID    int64
	Action     Action
	Date       *time.Time // calendar day, compared in UTC
	Limit      int
	Offset     int
}

// Validate validates the filter values
func (f *ChangeFilter) Validate() []string {
	var errors []string

	if f.Action != "" && !f.Action.Valid() {
		errors = append(errors, fmt.Sprintf("Unknown action %q", f.Action))
	}

	if f.AdminID < 0 {
		errors = append(errors, "Admin must be a positive ID")
	}

	if f.Limit < 0 || f.Offset < 0 {
		errors = append(errors, "Limit and offset must not be negative")
	}

	return errors
}

// DayRange returns the UTC start and end of the filter's calendar day
func (f *ChangeFilter) DayRange() (time.Time, time.Time, bool) {
	if f.Date == nil {
		return time.Time{}, time.Time{}, false
	}
	d := f.Date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1), true
}
