package settingsstore

import (
	"testing"

	"github.com/raiconsult/web/internal/domain/models"
	"github.com/raiconsult/web/internal/testutil"
)

func TestStore_Get_DefaultSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Get settings when none exist - should return defaults
	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if settings.SiteName != models.DefaultSiteName {
		t.Errorf("Get() default SiteName = %q, want %q", settings.SiteName, models.DefaultSiteName)
	}
	if settings.Tagline != models.DefaultTagline {
		t.Errorf("Get() default Tagline = %q, want %q", settings.Tagline, models.DefaultTagline)
	}
	if settings.ContactEmail != models.DefaultContactEmail {
		t.Errorf("Get() default ContactEmail = %q, want %q", settings.ContactEmail, models.DefaultContactEmail)
	}
}

func TestStore_Save_And_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Save settings
	settings := models.SiteSettings{
		SiteName:       "Test Site",
		Tagline:        "Test Tagline",
		ContactAddress: "1 Test Street",
		ContactPhone:   "+1 555 0100",
		ContactEmail:   "hello@test.example",
		ContactHours:   "Mon - Fri: 9 to 5",
		FooterHTML:     "<p>Test Footer</p>",
	}

	err := store.Save(ctx, settings)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Get and verify
	retrieved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if retrieved.SiteName != settings.SiteName {
		t.Errorf("Get() SiteName = %q, want %q", retrieved.SiteName, settings.SiteName)
	}
	if retrieved.Tagline != settings.Tagline {
		t.Errorf("Get() Tagline = %q, want %q", retrieved.Tagline, settings.Tagline)
	}
	if retrieved.ContactEmail != settings.ContactEmail {
		t.Errorf("Get() ContactEmail = %q, want %q", retrieved.ContactEmail, settings.ContactEmail)
	}
	if retrieved.FooterHTML != settings.FooterHTML {
		t.Errorf("Get() FooterHTML = %q, want %q", retrieved.FooterHTML, settings.FooterHTML)
	}
	if retrieved.UpdatedAt == nil {
		t.Error("Get() UpdatedAt should be set after Save()")
	}
}

func TestStore_Save_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Save initial settings
	settings := models.SiteSettings{
		SiteName:     "Initial Site",
		ContactPhone: "+1 555 0100",
	}

	err := store.Save(ctx, settings)
	if err != nil {
		t.Fatalf("Save() initial error = %v", err)
	}

	// Update settings
	settings.SiteName = "Updated Site"
	settings.ContactPhone = "+1 555 0200"

	err = store.Save(ctx, settings)
	if err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	// Verify update
	retrieved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if retrieved.SiteName != "Updated Site" {
		t.Errorf("Get() after update SiteName = %q, want %q", retrieved.SiteName, "Updated Site")
	}
	if retrieved.ContactPhone != "+1 555 0200" {
		t.Errorf("Get() after update ContactPhone = %q, want %q", retrieved.ContactPhone, "+1 555 0200")
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Should not exist initially
	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() should return false when no settings saved")
	}

	// Save settings
	err = store.Save(ctx, models.SiteSettings{SiteName: "Test"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Should exist now
	exists, err = store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() after save error = %v", err)
	}
	if !exists {
		t.Error("Exists() should return true after Save()")
	}
}

func TestStore_Singleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Save multiple times - should always update the same document
	for i := 0; i < 3; i++ {
		err := store.Save(ctx, models.SiteSettings{
			SiteName: "Site " + string(rune('A'+i)),
		})
		if err != nil {
			t.Fatalf("Save() iteration %d error = %v", i, err)
		}
	}

	// Should have the last saved value
	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if settings.SiteName != "Site C" {
		t.Errorf("Get() SiteName = %q, want %q", settings.SiteName, "Site C")
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() should return true")
	}
}
