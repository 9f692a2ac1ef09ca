package login

import (
	"testing"

	userstore "github.com/raiconsult/web/internal/app/store/users"
	"github.com/raiconsult/web/internal/app/system/authutil"
	"github.com/raiconsult/web/internal/testutil"
)

func TestPasswordLogin_ValidCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	// Create a test user with password
	hash, err := authutil.HashPassword("validpassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	input := userstore.CreateInput{
		FullName:     "Test User",
		LoginID:      "testuser",
		AuthMethod:   "password",
		Role:         "admin",
		PasswordHash: &hash,
	}
	created, err := store.CreateFromInput(ctx, input)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	// Verify user exists and has correct password hash
	user, err := store.GetByLoginID(ctx, "testuser")
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if user.ID != created.ID {
		t.Error("user ID mismatch")
	}
	if user.PasswordHash == nil {
		t.Fatal("password hash should not be nil")
	}

	// Test password verification
	if !authutil.CheckPassword("validpassword123", *user.PasswordHash) {
		t.Error("password check should succeed")
	}
	if authutil.CheckPassword("wrongpassword", *user.PasswordHash) {
		t.Error("password check should fail for wrong password")
	}
}

func TestPasswordLogin_UserNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	// Try to get non-existent user
	_, err := store.GetByLoginID(ctx, "nonexistent")
	if err == nil {
		t.Error("expected error for non-existent user")
	}
}

func TestPasswordLogin_GoogleOnlyAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	input := userstore.CreateInput{
		FullName:   "OAuth User",
		LoginID:    "oauth@example.com",
		Email:      "oauth@example.com",
		AuthMethod: "google",
		Role:       "admin",
	}
	if _, err := store.CreateFromInput(ctx, input); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	// A Google-auth account carries no password hash and the password
	// form must never match it.
	user, err := store.GetByLoginID(ctx, "oauth@example.com")
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if user.AuthMethod != "google" {
		t.Errorf("AuthMethod = %q, want google", user.AuthMethod)
	}
	if user.PasswordHash != nil {
		t.Error("google account should not have a password hash")
	}
}
