// internal/domain/models/sitesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings holds site-wide configuration that can be edited by admins.
type SiteSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Display settings
	SiteName string `bson:"site_name" json:"site_name"` // Name shown in the header
	Tagline  string `bson:"tagline,omitempty" json:"tagline,omitempty"`

	// Logo (file upload)
	LogoPath string `bson:"logo_path,omitempty" json:"logo_path,omitempty"` // Storage path for uploaded logo
	LogoName string `bson:"logo_name,omitempty" json:"logo_name,omitempty"` // Original filename

	// Contact details shown on the contact page and in the footer
	ContactAddress string `bson:"contact_address,omitempty" json:"contact_address,omitempty"`
	ContactPhone   string `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ContactEmail   string `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactHours   string `bson:"contact_hours,omitempty" json:"contact_hours,omitempty"`

	// Footer
	FooterHTML string `bson:"footer_html,omitempty" json:"footer_html,omitempty"` // Custom HTML for footer

	// Audit fields
	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}

// HasLogo returns true if a logo has been uploaded.
func (s *SiteSettings) HasLogo() bool {
	return s.LogoPath != ""
}

// DefaultSiteName is the default site name used when settings don't exist.
const DefaultSiteName = "Rai Construction Solutions"

// DefaultTagline is the default tagline shown under the site name.
const DefaultTagline = "Engineering & BIM Consultancy"

// DefaultFooterHTML is the default footer text.
const DefaultFooterHTML = "© Rai Construction Solutions. Building tomorrow, today."

// Default contact details. Seeded into site settings on first boot and
// editable by admins afterwards.
const (
	DefaultContactAddress = "Jodhpur, Rajasthan, India"
	DefaultContactPhone   = "+91 8003431008"
	DefaultContactEmail   = "info@raiconstruction.com"
	DefaultContactHours   = "Mon - Sat: 9:00 AM - 6:00 PM"
)
