package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/adminaudit/models"
)

func TestCapturer_Capture(t *testing.T) {
	capturer := NewCapturer(DefaultSensitiveFields...)

	tests := []struct {
		name   string
		action models.Action
		before map[string]any
		after  map[string]any
		want   models.ChangedFields
	}{
		{
			name:   "deleted never has a diff",
			action: models.ActionDeleted,
			before: map[string]any{"title": "A"},
			want:   nil,
		},
		{
			name:   "created records every attribute",
			action: models.ActionCreated,
			after:  map[string]any{"title": "A", "published": false},
			want:   models.ChangedFields{"title": "A", "published": false},
		},
		{
			name:   "created with no attributes",
			action: models.ActionCreated,
			after:  map[string]any{},
			want:   nil,
		},
		{
			name:   "updated keeps only changed attributes",
			action: models.ActionUpdated,
			before: map[string]any{"title": "A", "body": "x"},
			after:  map[string]any{"title": "B", "body": "x"},
			want:   models.ChangedFields{"title": "B"},
		},
		{
			name:   "updated with no differences",
			action: models.ActionUpdated,
			before: map[string]any{"title": "A"},
			after:  map[string]any{"title": "A"},
			want:   nil,
		},
		{
			name:   "updated to nil",
			action: models.ActionUpdated,
			before: map[string]any{"updated_at": "2024-01-01T00:00:00Z"},
			after:  map[string]any{"updated_at": nil},
			want:   models.ChangedFields{"updated_at": nil},
		},
		{
			name:   "new attribute on update",
			action: models.ActionUpdated,
			before: map[string]any{},
			after:  map[string]any{"slug": "hello"},
			want:   models.ChangedFields{"slug": "hello"},
		},
		{
			name:   "numeric types compare by value",
			action: models.ActionUpdated,
			before: map[string]any{"views": 3},
			after:  map[string]any{"views": int64(3)},
			want:   nil,
		},
		{
			name:   "large integers keep every digit",
			action: models.ActionUpdated,
			before: map[string]any{"n": int64(9007199254740993)},
			after:  map[string]any{"n": int64(9007199254740992)},
			want:   models.ChangedFields{"n": json.Number("9007199254740992")},
		},
		{
			name:   "equal large integers are unchanged",
			action: models.ActionUpdated,
			before: map[string]any{"n": uint64(18446744073709551615)},
			after:  map[string]any{"n": uint64(18446744073709551615)},
			want:   nil,
		},
		{
			name:   "sensitive fields are dropped",
			action: models.ActionUpdated,
			before: map[string]any{"password": "old"},
			after:  map[string]any{"password": "new", "remember_token": "t", "email": "a@example.com"},
			want:   models.ChangedFields{"email": "a@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capturer.Capture(tt.action, tt.before, tt.after))
		})
	}
}

func TestCapturer_CustomSensitiveFields(t *testing.T) {
	capturer := NewCapturer("api_key")

	got := capturer.Capture(models.ActionCreated, nil, map[string]any{"api_key": "k", "password": "p"})

	assert.Equal(t, models.ChangedFields{"password": "p"}, got)
}

func TestCapturer_RoundTrip(t *testing.T) {
	capturer := NewCapturer()
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	captured := capturer.Capture(models.ActionCreated, nil, map[string]any{
		"id":         int64(42),
		"title":      "Hello",
		"published":  true,
		"created_at": at,
		"updated_at": (*time.Time)(nil),
		"tags":       []string{"go", "audit"},
	})

	data, err := captured.Encode()
	require.NoError(t, err)

	decoded, err := models.DecodeChangedFields(data)
	require.NoError(t, err)

	assert.Equal(t, captured, decoded)
	assert.Equal(t, json.Number("42"), decoded["id"])
	assert.Equal(t, "2024-03-01T12:30:00Z", decoded["created_at"])
}

func TestCapturer_LargeIntegerRoundTrip(t *testing.T) {
	captured := NewCapturer().Capture(models.ActionUpdated,
		map[string]any{"external_id": int64(9007199254740993)},
		map[string]any{"external_id": int64(9007199254740992)},
	)
	require.NotNil(t, captured)

	data, err := captured.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"external_id":9007199254740992}`, string(data))

	decoded, err := models.DecodeChangedFields(data)
	require.NoError(t, err)
	assert.Equal(t, captured, decoded)

	n, err := decoded["external_id"].(json.Number).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740992), n)
}
