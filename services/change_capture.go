package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/blogem/adminaudit/models"
)

// DefaultSensitiveFields are dropped from every captured diff
var DefaultSensitiveFields = []string{"password", "remember_token"}

// Capturer computes the changed-fields payload of a mutation
type Capturer struct {
	sensitive map[string]bool
}

// NewCapturer creates a capturer that never records the given attribute names
func NewCapturer(sensitiveFields ...string) *Capturer {
	sensitive := make(map[string]bool, len(sensitiveFields))
	for _, f := range sensitiveFields {
		sensitive[f] = true
	}
	return &Capturer{sensitive: sensitive}
}

// Capture returns the attributes of after whose value differs from before,
// mapped to their new value. Deletions and empty diffs yield nil. For created
// events every attribute in after counts as changed.
func (c *Capturer) Capture(action models.Action, before, after map[string]any) models.ChangedFields {
	if action == models.ActionDeleted {
		return nil
	}
	if action == models.ActionCreated {
		before = nil
	}

	changed := models.ChangedFields{}
	for key, value := range after {
		if c.sensitive[key] {
			continue
		}

		current := normalize(value)
		if previous, ok := before[key]; ok && reflect.DeepEqual(normalize(previous), current) {
			continue
		}

		changed[key] = current
	}

	if len(changed) == 0 {
		return nil
	}
	return changed
}

// normalize converts v to the form it takes after a JSON round trip, so a
// captured diff compares equal to the one read back from storage
func normalize(v any) any {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	// Numbers stay json.Number so large integers keep every digit
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return out
}
