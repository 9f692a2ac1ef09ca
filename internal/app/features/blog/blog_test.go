package blog

import (
	"strings"
	"testing"

	blogstore "github.com/raiconsult/web/internal/app/store/blog"
	"github.com/raiconsult/web/internal/app/system/youtube"
	"github.com/raiconsult/web/internal/domain/models"
	"github.com/raiconsult/web/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	if Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestPreparePost_Manual(t *testing.T) {
	post := models.BlogPost{
		Title:       "Site Logistics",
		Description: "Planning the laydown area",
		Kind:        models.BlogKindManual,
		Content:     "# Heading\n\nSome **bold** text.",
	}

	vm := preparePost(post)

	if vm.IsVideo() {
		t.Error("IsVideo() = true for a manual post")
	}
	if vm.EmbedURL != "" {
		t.Errorf("EmbedURL = %q, want empty", vm.EmbedURL)
	}
	html := string(vm.ContentHTML)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("ContentHTML = %q, want rendered markdown", html)
	}
}

func TestPreparePost_Video(t *testing.T) {
	post := models.BlogPost{
		Title:    "Walkthrough Reel",
		Kind:     models.BlogKindExternalVideo,
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
	}

	vm := preparePost(post)

	if !vm.IsVideo() {
		t.Error("IsVideo() = false for a video post")
	}
	if want := youtube.EmbedURL("dQw4w9WgXcQ"); vm.EmbedURL != want {
		t.Errorf("EmbedURL = %q, want %q", vm.EmbedURL, want)
	}
	if vm.ContentHTML != "" {
		t.Errorf("ContentHTML = %q, want empty", vm.ContentHTML)
	}
}

func TestPreparePost_Video_BadURL(t *testing.T) {
	post := models.BlogPost{
		Kind:     models.BlogKindExternalVideo,
		VideoURL: "https://example.com/video",
	}

	vm := preparePost(post)

	if vm.EmbedURL != "" {
		t.Errorf("EmbedURL = %q, want empty for an unparseable URL", vm.EmbedURL)
	}
}

func TestIndexMergesStoreAndStaticPosts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := blogstore.New(db)
	_, err := store.Create(ctx, blogstore.CreateInput{
		Title:       "Store Post",
		Description: "from the database",
		Thumbnail:   models.PlaceholderBlogThumbnail,
		Kind:        models.BlogKindManual,
		Content:     "body",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	h := NewHandler(db, zap.NewNop())
	records, err := h.blogStore.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if len(models.StaticBlogPosts) != 3 {
		t.Errorf("len(StaticBlogPosts) = %d, want 3", len(models.StaticBlogPosts))
	}
}
