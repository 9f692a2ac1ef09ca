// internal/domain/models/service.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a consulting service offered on the public site.
//
// Features is an ordered list of bullet points. The admin form collects it
// as a multi-line text area; blank lines are discarded when the form is
// submitted (see formutil.SplitLines).
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"` // public image URL
	Features    []string           `bson:"features,omitempty" json:"features,omitempty"`
	Benefits    string             `bson:"benefits,omitempty" json:"benefits,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// PlaceholderServiceImage is used when a service is created without an
// uploaded image.
const PlaceholderServiceImage = "https://via.placeholder.com/400x250/6366f1/ffffff?text=Service"
