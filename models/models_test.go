package models

import (
	"encoding/json"
	"testing"
	"time"
)

// Test ArticleForm validation
func TestArticleFormValidation(t *testing.T) {
	// Test valid form
	validForm := ArticleForm{
		Title: "Hello World",
		Slug:  "hello-world",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := ArticleForm{
		Title: "   ", // Blank title
		Slug:  "Not A Slug",
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Slug defaults to the title
	form := ArticleForm{Title: "Audit Logs, Explained!"}
	if got := form.SlugOrDefault(); got != "audit-logs-explained" {
		t.Errorf("Expected slug audit-logs-explained, got %s", got)
	}
}

// Test slug helpers
func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World":      "hello-world",
		"  Go 1.24 rocks ": "go-1-24-rocks",
		"---":              "",
		"already-a-slug":   "already-a-slug",
	}

	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}

	for slug, want := range map[string]bool{
		"hello":       true,
		"hello-world": true,
		"-hello":      false,
		"hello-":      false,
		"hello--x":    false,
		"Hello":       false,
	} {
		if got := isValidSlug(slug); got != want {
			t.Errorf("isValidSlug(%q) = %v, want %v", slug, got, want)
		}
	}
}

// Test AdminIdentity validation
func TestAdminIdentityValidation(t *testing.T) {
	valid := AdminIdentity{Subject: "auth0|1", Email: "jane@example.com"}
	if errors := valid.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid identity, got: %v", errors)
	}

	invalid := AdminIdentity{Email: "jane@"}
	if errors := invalid.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid identity, got: %v", errors)
	}
}

// Test actions
func TestActions(t *testing.T) {
	for _, action := range Actions {
		if !action.Valid() {
			t.Errorf("Expected %s to be valid", action)
		}
	}

	if Action("restored").Valid() {
		t.Error("Expected unknown action to be invalid")
	}

	if ActionDeleted.Label() != "Deleted" {
		t.Errorf("Expected label Deleted, got %s", ActionDeleted.Label())
	}
}

// Test changed fields encoding
func TestChangedFieldsEncoding(t *testing.T) {
	data, err := ChangedFields(nil).Encode()
	if err != nil || data != nil {
		t.Errorf("Expected nil encoding for empty fields, got %q, %v", data, err)
	}

	fields := ChangedFields{"title": "B", "published": true, "views": json.Number("9007199254740993")}
	data, err = fields.Encode()
	if err != nil {
		t.Fatalf("Failed to encode fields: %v", err)
	}

	decoded, err := DecodeChangedFields(data)
	if err != nil {
		t.Fatalf("Failed to decode fields: %v", err)
	}
	for key, want := range fields {
		if decoded[key] != want {
			t.Errorf("Field %s: expected %v, got %v", key, want, decoded[key])
		}
	}

	if decoded, err := DecodeChangedFields([]byte("{}")); err != nil || decoded != nil {
		t.Errorf("Expected empty document to decode to nil, got %v, %v", decoded, err)
	}

	if _, err := DecodeChangedFields([]byte("{broken")); err == nil {
		t.Error("Expected error decoding invalid document")
	}
}

// Test change display helpers
func TestChangeDisplay(t *testing.T) {
	change := Change{
		EntityKey: "42",
		Changed: ChangedFields{
			"title":          "B",
			"published_at":   "2024-03-01",
			"updated_at":     "2024-03-01",
			"password":       "secret",
			"remember_token": "tok",
		},
	}

	attrs := change.DisplayAttributes()
	if len(attrs) != 2 {
		t.Errorf("Expected 2 display attributes, got %v", attrs)
	}
	if attrs["Title"] != "B" || attrs["Published At"] != "2024-03-01" {
		t.Errorf("Unexpected display attributes: %v", attrs)
	}

	if change.TitleOrKey() != "#42" {
		t.Errorf("Expected #42, got %s", change.TitleOrKey())
	}
	title := "Hello"
	change.Title = &title
	if change.TitleOrKey() != "Hello" {
		t.Errorf("Expected Hello, got %s", change.TitleOrKey())
	}
}

// Test TitleFromKey
func TestTitleFromKey(t *testing.T) {
	tests := map[string]string{
		"title":          "Title",
		"remember_token": "Remember Token",
		"publishedAt":    "Published At",
		"first-name":     "First Name",
	}

	for in, want := range tests {
		if got := TitleFromKey(in); got != want {
			t.Errorf("TitleFromKey(%q) = %q, want %q", in, got, want)
		}
	}
}

// Test SnapshotOf
func TestSnapshotOf(t *testing.T) {
	before := &Article{ID: 42, Title: "A", Slug: "a"}
	after := &Article{ID: 42, Title: "B", Slug: "a"}

	entity := SnapshotOf(before, after)
	if entity.Type != "Article" || entity.Key != "42" {
		t.Errorf("Unexpected entity identity: %s#%s", entity.Type, entity.Key)
	}
	if entity.Title == nil || *entity.Title != "B" {
		t.Errorf("Expected title from the new state, got %v", entity.Title)
	}
	if entity.Before["title"] != "A" || entity.After["title"] != "B" {
		t.Errorf("Unexpected snapshots: %v -> %v", entity.Before, entity.After)
	}

	deleted := SnapshotOf(before, nil)
	if deleted.After != nil || *deleted.Title != "A" {
		t.Errorf("Expected deletion snapshot to keep only the old state, got %+v", deleted)
	}
}

// Test change filter
func TestChangeFilter(t *testing.T) {
	if errors := (&ChangeFilter{Action: "restored", AdminID: -1}).Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors, got %v", errors)
	}

	if _, _, ok := (&ChangeFilter{}).DayRange(); ok {
		t.Error("Expected no range without a date")
	}

	local := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600))
	start, end, ok := (&ChangeFilter{Date: &local}).DayRange()
	if !ok {
		t.Fatal("Expected a range for a date")
	}
	if FormatDateTime(start) != "2024-03-01 00:00" || FormatDateTime(end) != "2024-03-02 00:00" {
		t.Errorf("Unexpected range %v - %v", start, end)
	}

	date, err := ParseDate("2024-03-01")
	if err != nil || FormatDate(date) != "2024-03-01" {
		t.Errorf("Expected date round trip, got %v, %v", date, err)
	}
}
