package project

import (
	"testing"
	"time"

	"github.com/raiconsult/web/internal/domain/models"
	"github.com/raiconsult/web/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	input := CreateInput{
		Title:       "Lakeside Residences",
		Description: "42-unit residential complex",
		Image:       models.PlaceholderProjectImage,
		Category:    "Residential",
		Location:    "Jodhpur, Rajasthan",
		Year:        "2024",
		Client:      "Lakeside Developers",
		Services:    []string{"3D Modeling", "BIM Coordination"},
		Details:     "Full BIM delivery from concept through handover.",
	}

	created, err := store.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Category != "Residential" {
		t.Errorf("Category = %v", got.Category)
	}
	if got.Client != input.Client {
		t.Errorf("Client = %v, want %v", got.Client, input.Client)
	}
	if len(got.Services) != 2 {
		t.Errorf("Services = %v, want 2 entries", got.Services)
	}

	_, err = store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetByID(unknown) error = %v, want ErrNoDocuments", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Title:       "Metro Plaza",
		Description: "Original",
		Image:       models.PlaceholderProjectImage,
		Category:    "Commercial",
		Year:        "2023",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = store.Update(ctx, created.ID, UpdateInput{
		Title:       "Metro Plaza Tower",
		Description: "Updated",
		Image:       "https://files.example.com/project-images/1700000000000-tower.png",
		Category:    "Mixed Use",
		Location:    "Jaipur",
		Year:        "2024",
		Client:      "Metro Holdings",
		Services:    []string{"Scan to BIM"},
		Details:     "Expanded scope.",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Category != "Mixed Use" {
		t.Errorf("Category = %v, want Mixed Use", got.Category)
	}
	if got.Location != "Jaipur" {
		t.Errorf("Location = %v", got.Location)
	}
	if !got.CreatedAt.Round(time.Millisecond).Equal(created.CreatedAt.Round(time.Millisecond)) {
		t.Errorf("CreatedAt changed: got %v, want %v", got.CreatedAt, created.CreatedAt)
	}
	if got.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after update")
	}
}

func TestStore_ListOrderDeleteAndRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if projects == nil || len(projects) != 0 {
		t.Fatalf("List() on empty collection = %v, want empty slice", projects)
	}

	var first *models.Project
	for i, title := range []string{"Alpha", "Beta", "Gamma"} {
		p, err := store.Create(ctx, CreateInput{Title: title, Description: "d", Image: models.PlaceholderProjectImage, Category: "Commercial"})
		if err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
		if i == 0 {
			first = p
		}
		time.Sleep(5 * time.Millisecond)
	}

	projects, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("List() returned %d projects", len(projects))
	}
	if projects[0].Title != "Gamma" || projects[2].Title != "Alpha" {
		t.Errorf("List() order = [%s %s %s], want newest first", projects[0].Title, projects[1].Title, projects[2].Title)
	}

	recent, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 || recent[0].Title != "Gamma" {
		t.Errorf("ListRecent(2) = %v", recent)
	}

	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, first.ID); err != mongo.ErrNoDocuments {
		t.Errorf("Delete(again) error = %v, want ErrNoDocuments", err)
	}
}
