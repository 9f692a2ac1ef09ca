// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"github.com/raiconsult/web/internal/app/system/authutil"
	settingsstore "github.com/raiconsult/web/internal/app/store/settings"
	userstore "github.com/raiconsult/web/internal/app/store/users"
	"github.com/raiconsult/web/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminSeed describes the initial admin account created on first boot.
// Comes from configuration; ignored when Email is empty or the account
// already exists.
type AdminSeed struct {
	Email    string
	Password string
	FullName string
}

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger, admin AdminSeed) error {
	if err := seedSiteSettings(ctx, db, logger); err != nil {
		return err
	}
	if err := seedAdminUser(ctx, db, logger, admin); err != nil {
		return err
	}
	return nil
}

// seedSiteSettings writes the default settings document if none exists,
// so the public site renders sensible contact details on first boot.
func seedSiteSettings(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := settingsstore.New(db)

	exists, err := store.Exists(ctx)
	if err != nil {
		logger.Error("failed to check if site settings exist", zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	settings := models.SiteSettings{
		SiteName:       models.DefaultSiteName,
		Tagline:        models.DefaultTagline,
		ContactAddress: models.DefaultContactAddress,
		ContactPhone:   models.DefaultContactPhone,
		ContactEmail:   models.DefaultContactEmail,
		ContactHours:   models.DefaultContactHours,
		FooterHTML:     models.DefaultFooterHTML,
	}
	if err := store.Save(ctx, settings); err != nil {
		logger.Error("failed to seed site settings", zap.Error(err))
		return err
	}
	logger.Info("seeded default site settings", zap.String("site_name", settings.SiteName))
	return nil
}

// seedAdminUser creates the first admin account from configuration.
func seedAdminUser(ctx context.Context, db *mongo.Database, logger *zap.Logger, admin AdminSeed) error {
	if admin.Email == "" || admin.Password == "" {
		logger.Info("admin seed not configured, skipping")
		return nil
	}

	store := userstore.New(db)

	exists, err := store.ExistsByLoginID(ctx, admin.Email)
	if err != nil {
		logger.Error("failed to check if admin exists",
			zap.String("login_id", admin.Email),
			zap.Error(err))
		return err
	}
	if exists {
		return nil
	}

	hash, err := authutil.HashPassword(admin.Password)
	if err != nil {
		logger.Error("failed to hash admin password", zap.Error(err))
		return err
	}

	fullName := admin.FullName
	if fullName == "" {
		fullName = "Administrator"
	}

	if _, err := store.CreateFromInput(ctx, userstore.CreateInput{
		FullName:     fullName,
		LoginID:      admin.Email,
		Email:        admin.Email,
		AuthMethod:   "password",
		Role:         models.RoleAdmin,
		PasswordHash: &hash,
	}); err != nil {
		logger.Error("failed to seed admin user",
			zap.String("login_id", admin.Email),
			zap.Error(err))
		return err
	}

	logger.Info("seeded admin user", zap.String("login_id", admin.Email))
	return nil
}
