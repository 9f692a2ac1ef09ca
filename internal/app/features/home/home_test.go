package home

import (
	"testing"
	"time"

	projectstore "github.com/raiconsult/web/internal/app/store/project"
	"github.com/raiconsult/web/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db, logger)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db, logger)
	router := Routes(h)

	if router == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestFeaturedProjects_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := projectstore.New(db)
	for i := 0; i < featuredProjectCount+2; i++ {
		_, err := store.Create(ctx, projectstore.CreateInput{
			Title:       "Project " + string(rune('A'+i)),
			Description: "portfolio entry",
			Image:       "https://example.com/p.jpg",
			Category:    "Commercial",
		})
		if err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	projects, err := store.ListRecent(ctx, featuredProjectCount)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(projects) != featuredProjectCount {
		t.Errorf("len(projects) = %d, want %d", len(projects), featuredProjectCount)
	}
	// Newest first
	if projects[0].Title != "Project "+string(rune('A'+featuredProjectCount+1)) {
		t.Errorf("projects[0].Title = %q, want newest project", projects[0].Title)
	}
}
