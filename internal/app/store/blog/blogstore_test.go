package blog

import (
	"testing"
	"time"

	"github.com/raiconsult/web/internal/domain/models"
	"github.com/raiconsult/web/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	// Should be idempotent
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() second call error = %v", err)
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	input := CreateInput{
		Title:       "The Impact of 3D Modeling",
		Description: "Why model-first workflows win",
		Thumbnail:   "https://files.example.com/blog-thumbnails/1700000000000-model.png",
		Content:     "## Modeling\n\nIt works.",
		Kind:        models.BlogKindManual,
	}

	post, err := store.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if post.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if post.Title != input.Title {
		t.Errorf("Title = %v, want %v", post.Title, input.Title)
	}
	if post.Thumbnail != input.Thumbnail {
		t.Errorf("Thumbnail = %v, want %v", post.Thumbnail, input.Thumbnail)
	}
	if post.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if post.UpdatedAt != nil {
		t.Error("UpdatedAt should be nil on create")
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Title:       "Video Post",
		Description: "YouTube Video: Site Tour",
		Thumbnail:   models.PlaceholderBlogThumbnail,
		Kind:        models.BlogKindExternalVideo,
		VideoURL:    "https://youtu.be/dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Title = %v, want %v", got.Title, created.Title)
	}
	if got.Kind != models.BlogKindExternalVideo {
		t.Errorf("Kind = %v, want %v", got.Kind, models.BlogKindExternalVideo)
	}
	if got.VideoURL != created.VideoURL {
		t.Errorf("VideoURL = %v, want %v", got.VideoURL, created.VideoURL)
	}

	// Unknown ID
	_, err = store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetByID(unknown) error = %v, want ErrNoDocuments", err)
	}
}

func TestStore_Update_PreservesCreatedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Title:       "Original",
		Description: "Original description",
		Thumbnail:   models.PlaceholderBlogThumbnail,
		Content:     "body",
		Kind:        models.BlogKindManual,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = store.Update(ctx, created.ID, UpdateInput{
		Title:       "Updated",
		Description: "Updated description",
		Thumbnail:   "https://files.example.com/blog-thumbnails/1700000000001-new.png",
		Content:     "new body",
		Kind:        models.BlogKindManual,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %v, want Updated", got.Title)
	}
	if got.Thumbnail != "https://files.example.com/blog-thumbnails/1700000000001-new.png" {
		t.Errorf("Thumbnail not overwritten: %v", got.Thumbnail)
	}
	if !got.CreatedAt.Round(time.Millisecond).Equal(created.CreatedAt.Round(time.Millisecond)) {
		t.Errorf("CreatedAt changed: got %v, want %v", got.CreatedAt, created.CreatedAt)
	}
	if got.UpdatedAt == nil {
		t.Error("UpdatedAt should be set after update")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, _ := store.Create(ctx, CreateInput{Title: "First", Description: "a", Thumbnail: models.PlaceholderBlogThumbnail, Kind: models.BlogKindManual})
	second, _ := store.Create(ctx, CreateInput{Title: "Second", Description: "b", Thumbnail: models.PlaceholderBlogThumbnail, Kind: models.BlogKindManual})

	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	remaining, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("List() after delete returned %d posts, want 1", len(remaining))
	}
	if remaining[0].ID != second.ID {
		t.Errorf("remaining post = %v, want %v", remaining[0].ID, second.ID)
	}
}

func TestStore_List_OrderAndEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Empty collection yields an empty slice, not nil
	posts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if posts == nil {
		t.Fatal("List() on empty collection returned nil, want empty slice")
	}
	if len(posts) != 0 {
		t.Fatalf("List() on empty collection returned %d posts", len(posts))
	}

	// Insert in order; List returns newest first
	for _, title := range []string{"oldest", "middle", "newest"} {
		if _, err := store.Create(ctx, CreateInput{Title: title, Description: "d", Thumbnail: models.PlaceholderBlogThumbnail, Kind: models.BlogKindManual}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	posts, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("List() returned %d posts, want 3", len(posts))
	}
	if posts[0].Title != "newest" || posts[2].Title != "oldest" {
		t.Errorf("List() order = [%s %s %s], want newest first", posts[0].Title, posts[1].Title, posts[2].Title)
	}
}

func TestStore_ListRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"one", "two", "three", "four"} {
		if _, err := store.Create(ctx, CreateInput{Title: title, Description: "d", Thumbnail: models.PlaceholderBlogThumbnail, Kind: models.BlogKindManual}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	posts, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("ListRecent(2) returned %d posts", len(posts))
	}
	if posts[0].Title != "four" {
		t.Errorf("ListRecent() first = %v, want four", posts[0].Title)
	}
}

func TestStore_ListPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"a", "b", "c", "d", "e"} {
		if _, err := store.Create(ctx, CreateInput{Title: title, Description: "d", Thumbnail: models.PlaceholderBlogThumbnail, Kind: models.BlogKindManual}); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	first, err := store.ListPage(ctx, 2, 1)
	if err != nil {
		t.Fatalf("ListPage(2, 1) error = %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("ListPage(2, 1) returned %d posts, want 2", len(first))
	}
	if first[0].Title != "e" {
		t.Errorf("ListPage(2, 1) first = %v, want e", first[0].Title)
	}

	second, err := store.ListPage(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListPage(2, 2) error = %v", err)
	}
	if len(second) != 2 || second[0].Title != "c" {
		t.Errorf("ListPage(2, 2) = %d posts starting %v, want 2 starting c", len(second), second[0].Title)
	}

	last, err := store.ListPage(ctx, 2, 3)
	if err != nil {
		t.Fatalf("ListPage(2, 3) error = %v", err)
	}
	if len(last) != 1 || last[0].Title != "a" {
		t.Errorf("ListPage(2, 3) = %d posts, want the single oldest post", len(last))
	}
}
