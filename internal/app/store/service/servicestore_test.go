package service

import (
	"testing"
	"time"

	"github.com/raiconsult/web/internal/domain/models"
	"github.com/raiconsult/web/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	input := CreateInput{
		Title:       "Scan to BIM",
		Description: "Point-cloud capture converted to intelligent models",
		Image:       models.PlaceholderServiceImage,
		Features:    []string{"Laser scanning", "As-built models", "LOD 300-500"},
		Benefits:    "Accurate as-built documentation without manual measurement.",
	}

	svc, err := store.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if svc.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if svc.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if len(svc.Features) != 3 {
		t.Errorf("Features = %v, want 3 entries", svc.Features)
	}
}

func TestStore_Create_NilFeatures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	svc, err := store.Create(ctx, CreateInput{Title: "Bare", Description: "d", Image: models.PlaceholderServiceImage})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Features == nil {
		t.Error("Features should round-trip as an empty slice, not nil")
	}
	if len(got.Features) != 0 {
		t.Errorf("Features = %v, want empty", got.Features)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Title:       "3D Modeling",
		Description: "Original",
		Image:       models.PlaceholderServiceImage,
		Features:    []string{"Old feature"},
		Benefits:    "Old benefits",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = store.Update(ctx, created.ID, UpdateInput{
		Title:       "3D Modeling & Visualization",
		Description: "Updated",
		Image:       "https://files.example.com/service-images/1700000000000-render.png",
		Features:    []string{"Photorealistic renders", "Walkthroughs"},
		Benefits:    "New benefits",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "3D Modeling & Visualization" {
		t.Errorf("Title = %v", got.Title)
	}
	if len(got.Features) != 2 || got.Features[0] != "Photorealistic renders" {
		t.Errorf("Features = %v, want replaced list", got.Features)
	}
	if !got.CreatedAt.Round(time.Millisecond).Equal(created.CreatedAt.Round(time.Millisecond)) {
		t.Errorf("CreatedAt changed: got %v, want %v", got.CreatedAt, created.CreatedAt)
	}

	// Unknown ID
	err = store.Update(ctx, primitive.NewObjectID(), UpdateInput{Title: "x"})
	if err != mongo.ErrNoDocuments {
		t.Errorf("Update(unknown) error = %v, want ErrNoDocuments", err)
	}
}

func TestStore_DeleteAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	services, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if services == nil || len(services) != 0 {
		t.Fatalf("List() on empty collection = %v, want empty slice", services)
	}

	var last *models.Service
	for _, title := range []string{"Architecture", "Interior Design", "BIM Services"} {
		last, err = store.Create(ctx, CreateInput{Title: title, Description: "d", Image: models.PlaceholderServiceImage})
		if err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	services, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("List() returned %d services", len(services))
	}
	if services[0].Title != "BIM Services" {
		t.Errorf("List() first = %v, want newest", services[0].Title)
	}

	if err := store.Delete(ctx, last.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	services, _ = store.List(ctx)
	if len(services) != 2 {
		t.Errorf("List() after delete returned %d services, want 2", len(services))
	}

	if err := store.Delete(ctx, last.ID); err != mongo.ErrNoDocuments {
		t.Errorf("Delete(again) error = %v, want ErrNoDocuments", err)
	}
}
