package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/blogem/adminaudit/database"
	"github.com/blogem/adminaudit/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")

	t.Cleanup(func() {
		database.CloseDB()
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func createTestAdmin(t *testing.T, repo AdminRepository, subject string) *models.Admin {
	admin := &models.Admin{Subject: subject, Email: subject + "@example.com", Name: "Test " + subject}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}
	return admin
}

func createTestChange(t *testing.T, repo ChangeRepository, change *models.Change) *models.Change {
	if err := repo.Create(context.Background(), change); err != nil {
		t.Fatalf("Failed to create change: %v", err)
	}
	return change
}

func TestAdminRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := createTestAdmin(t, repo, "auth0|1")
	if admin.ID == 0 {
		t.Error("Expected admin ID to be set after creation")
	}

	// Test GetBySubject
	retrieved, err := repo.GetBySubject(ctx, "auth0|1")
	if err != nil {
		t.Fatalf("Failed to get admin by subject: %v", err)
	}
	if retrieved.Email != admin.Email {
		t.Errorf("Expected email %s, got %s", admin.Email, retrieved.Email)
	}
	if retrieved.LastLoginAt != nil {
		t.Error("Expected no last login for a new admin")
	}

	// Test Update
	login := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	retrieved.Name = "Renamed"
	retrieved.LastLoginAt = &login
	if err := repo.Update(ctx, retrieved); err != nil {
		t.Fatalf("Failed to update admin: %v", err)
	}

	updated, err := repo.GetByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("Failed to get admin by ID: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Expected name Renamed, got %s", updated.Name)
	}
	if updated.LastLoginAt == nil || !updated.LastLoginAt.Equal(login) {
		t.Errorf("Expected last login %v, got %v", login, updated.LastLoginAt)
	}

	// Test GetAll
	createTestAdmin(t, repo, "auth0|2")
	admins, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all admins: %v", err)
	}
	if len(admins) != 2 {
		t.Errorf("Expected 2 admins, got %d", len(admins))
	}

	// Test not found
	_, err = repo.GetBySubject(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestArticleRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	article := &models.Article{Title: "Hello", Slug: "hello", Body: "First post"}
	if err := repo.Create(ctx, article); err != nil {
		t.Fatalf("Failed to create article: %v", err)
	}
	if article.ID == 0 {
		t.Error("Expected article ID to be set after creation")
	}

	// Test GetBySlug
	retrieved, err := repo.GetBySlug(ctx, "hello")
	if err != nil {
		t.Fatalf("Failed to get article by slug: %v", err)
	}
	if retrieved.UpdatedAt != nil {
		t.Error("Expected no update time for a new article")
	}

	// Test Update
	retrieved.Published = true
	if err := repo.Update(ctx, retrieved); err != nil {
		t.Fatalf("Failed to update article: %v", err)
	}
	if retrieved.UpdatedAt == nil {
		t.Error("Expected update time to be set")
	}

	updated, err := repo.GetByID(ctx, article.ID)
	if err != nil {
		t.Fatalf("Failed to get article by ID: %v", err)
	}
	if !updated.Published {
		t.Error("Expected article to be published")
	}

	// Test duplicate slug
	if err := repo.Create(ctx, &models.Article{Title: "Again", Slug: "hello"}); err == nil {
		t.Error("Expected duplicate slug to fail")
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count articles: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 article, got %d", count)
	}

	// Test Delete
	if err := repo.Delete(ctx, article.ID); err != nil {
		t.Fatalf("Failed to delete article: %v", err)
	}
	if _, err := repo.GetByID(ctx, article.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, article.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestChangeRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminRepository(db)
	repo := NewChangeRepository(db)
	ctx := context.Background()

	admin := createTestAdmin(t, admins, "auth0|1")
	title := "Hello"

	created := createTestChange(t, repo, &models.Change{
		EntityType: "Article", EntityKey: "42", Action: models.ActionCreated, Title: &title,
		Changed: models.ChangedFields{"title": "Hello", "published": false}, AdminID: admin.ID,
	})
	updated := createTestChange(t, repo, &models.Change{
		EntityType: "Article", EntityKey: "42", Action: models.ActionUpdated, Title: &title,
		Changed: models.ChangedFields{"published": true}, AdminID: admin.ID,
	})
	other := createTestChange(t, repo, &models.Change{
		EntityType: "Article", EntityKey: "7", Action: models.ActionCreated, AdminID: admin.ID,
	})
	otherType := createTestChange(t, repo, &models.Change{
		EntityType: "Admin", EntityKey: "42", Action: models.ActionUpdated, AdminID: admin.ID,
	})
	deleted := createTestChange(t, repo, &models.Change{
		EntityType: "Article", EntityKey: "42", Action: models.ActionDeleted, Title: &title, AdminID: admin.ID,
	})

	// IDs follow call order
	ids := []int64{created.ID, updated.ID, other.ID, otherType.ID, deleted.ID}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("Expected strictly increasing IDs, got %v", ids)
		}
	}

	flagged, err := repo.MarkDeleted(ctx, "Article", "42", deleted.ID)
	if err != nil {
		t.Fatalf("Failed to mark changes deleted: %v", err)
	}
	if flagged != 2 {
		t.Errorf("Expected 2 changes flagged, got %d", flagged)
	}

	history, err := repo.Find(ctx, models.ChangeFilter{EntityType: "Article", EntityKey: "42"})
	if err != nil {
		t.Fatalf("Failed to find changes: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 changes for Article#42, got %d", len(history))
	}

	// Newest first: the deletion itself stays unflagged
	wantDeleted := []bool{false, true, true}
	wantActions := []models.Action{models.ActionDeleted, models.ActionUpdated, models.ActionCreated}
	for i, change := range history {
		if change.Action != wantActions[i] {
			t.Errorf("Change %d: expected action %s, got %s", i, wantActions[i], change.Action)
		}
		if change.Deleted != wantDeleted[i] {
			t.Errorf("Change %d (%s): expected deleted=%v, got %v", i, change.Action, wantDeleted[i], change.Deleted)
		}
	}
	if history[0].Changed != nil {
		t.Errorf("Expected no changed fields on deletion, got %v", history[0].Changed)
	}

	// Records for other entities are untouched
	for _, id := range []int64{other.ID, otherType.ID} {
		change, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("Failed to get change %d: %v", id, err)
		}
		if change.Deleted {
			t.Errorf("Expected change %d for %s#%s to stay unflagged", id, change.EntityType, change.EntityKey)
		}
	}
}

func TestChangeRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminRepository(db)
	repo := NewChangeRepository(db)
	ctx := context.Background()

	admin := createTestAdmin(t, admins, "auth0|1")
	changed := models.ChangedFields{
		"title":     "Hello",
		"views":     json.Number("3"),
		"remote_id": json.Number("9007199254740993"),
		"published": true,
		"body":      nil,
		"tags":      []any{"go", "audit"},
	}

	change := createTestChange(t, repo, &models.Change{
		EntityType: "Article", EntityKey: "1", Action: models.ActionCreated, Changed: changed, AdminID: admin.ID,
	})

	retrieved, err := repo.GetByID(ctx, change.ID)
	if err != nil {
		t.Fatalf("Failed to get change: %v", err)
	}

	if len(retrieved.Changed) != len(changed) {
		t.Fatalf("Expected %d changed fields, got %v", len(changed), retrieved.Changed)
	}
	for key, want := range changed {
		got, ok := retrieved.Changed[key]
		if !ok {
			t.Errorf("Missing changed field %s", key)
			continue
		}
		if key == "tags" {
			tags, _ := got.([]any)
			if len(tags) != 2 || tags[0] != "go" || tags[1] != "audit" {
				t.Errorf("Expected tags [go audit], got %v", got)
			}
			continue
		}
		if got != want {
			t.Errorf("Field %s: expected %v, got %v", key, want, got)
		}
	}

	if retrieved.Title != nil {
		t.Errorf("Expected no title, got %q", *retrieved.Title)
	}
	if retrieved.AdminEmail != admin.Email {
		t.Errorf("Expected joined admin email %s, got %s", admin.Email, retrieved.AdminEmail)
	}

	if _, err := repo.GetByID(ctx, change.ID+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestChangeRepository_Filters(t *testing.T) {
	db := setupTestDB(t)
	admins := NewAdminRepository(db)
	repo := NewChangeRepository(db)
	ctx := context.Background()

	jane := createTestAdmin(t, admins, "jane")
	john := createTestAdmin(t, admins, "john")

	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	createTestChange(t, repo, &models.Change{EntityType: "Article", EntityKey: "1", Action: models.ActionCreated, AdminID: jane.ID, CreatedAt: day})
	createTestChange(t, repo, &models.Change{EntityType: "Article", EntityKey: "1", Action: models.ActionUpdated, AdminID: john.ID, CreatedAt: day.Add(time.Hour)})
	createTestChange(t, repo, &models.Change{EntityType: "Article", EntityKey: "2", Action: models.ActionCreated, AdminID: john.ID, CreatedAt: nextDay})
	createTestChange(t, repo, &models.Change{EntityType: "Admin", EntityKey: "1", Action: models.ActionUpdated, AdminID: jane.ID, CreatedAt: nextDay})

	dayOnly := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter models.ChangeFilter
		want   int
	}{
		{"no filter", models.ChangeFilter{}, 4},
		{"model", models.ChangeFilter{EntityType: "Article"}, 3},
		{"model and key", models.ChangeFilter{EntityType: "Article", EntityKey: "1"}, 2},
		{"key across models", models.ChangeFilter{EntityKey: "1"}, 3},
		{"admin", models.ChangeFilter{AdminID: jane.ID}, 2},
		{"action", models.ChangeFilter{Action: models.ActionUpdated}, 2},
		{"date", models.ChangeFilter{Date: &dayOnly}, 2},
		{"combined", models.ChangeFilter{EntityType: "Article", AdminID: john.ID, Date: &dayOnly}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, err := repo.Find(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Failed to find changes: %v", err)
			}
			if len(changes) != tt.want {
				t.Errorf("Expected %d changes, got %d", tt.want, len(changes))
			}

			count, err := repo.Count(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Failed to count changes: %v", err)
			}
			if count != tt.want {
				t.Errorf("Expected count %d, got %d", tt.want, count)
			}
		})
	}

	// Paging keeps the newest-first order
	page, err := repo.Find(ctx, models.ChangeFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("Failed to page changes: %v", err)
	}
	if len(page) != 2 || page[0].ID <= page[1].ID {
		t.Errorf("Expected two changes in descending ID order, got %+v", page)
	}

	actions, err := repo.Actions(ctx)
	if err != nil {
		t.Fatalf("Failed to list actions: %v", err)
	}
	if len(actions) != 2 || actions[0] != models.ActionCreated || actions[1] != models.ActionUpdated {
		t.Errorf("Expected [created updated], got %v", actions)
	}
}

func TestChangeRepository_StoresCreatedAtInUTC(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, NewAdminRepository(db), "jane")
	repo := NewChangeRepository(db)
	ctx := context.Background()

	// 00:30 on March 2nd in UTC+1 is still March 1st in UTC
	cet := time.FixedZone("CET", 3600)
	change := createTestChange(t, repo, &models.Change{
		EntityType: "Article",
		EntityKey:  "1",
		Action:     models.ActionCreated,
		AdminID:    admin.ID,
		CreatedAt:  time.Date(2024, 3, 2, 0, 30, 0, 0, cet),
	})

	if change.CreatedAt.Location() != time.UTC {
		t.Errorf("Expected CreatedAt in UTC, got %v", change.CreatedAt.Location())
	}
	if !change.CreatedAt.Equal(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)) {
		t.Errorf("Expected instant to be preserved, got %v", change.CreatedAt)
	}

	march1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	count, err := repo.Count(ctx, models.ChangeFilter{Date: &march1})
	if err != nil {
		t.Fatalf("Failed to count changes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected the change on 2024-03-01, got count %d", count)
	}

	count, err = repo.Count(ctx, models.ChangeFilter{Date: &march2})
	if err != nil {
		t.Fatalf("Failed to count changes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no change on 2024-03-02, got count %d", count)
	}

	retrieved, err := repo.GetByID(ctx, change.ID)
	if err != nil {
		t.Fatalf("Failed to get change: %v", err)
	}
	if !retrieved.CreatedAt.Equal(change.CreatedAt) {
		t.Errorf("Expected stored %v, got %v", change.CreatedAt, retrieved.CreatedAt)
	}
}
