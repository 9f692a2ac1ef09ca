// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project represents a completed or ongoing engagement shown in the
// public portfolio.
//
// Services lists the services delivered on the project, in order. It uses
// the same multi-line text-area convention as Service.Features.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"` // public image URL
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Year        string             `bson:"year,omitempty" json:"year,omitempty"`
	Client      string             `bson:"client,omitempty" json:"client,omitempty"`
	Services    []string           `bson:"services,omitempty" json:"services,omitempty"`
	Details     string             `bson:"details,omitempty" json:"details,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Project categories offered in the admin form. Free-form values are still
// accepted; these are the suggested options.
var ProjectCategories = []string{
	"Residential",
	"Commercial",
	"Industrial",
	"Renovation",
	"New Construction",
	"Mixed Use",
}

// PlaceholderProjectImage is used when a project is created without an
// uploaded image.
const PlaceholderProjectImage = "https://via.placeholder.com/400x250/6366f1/ffffff?text=Project"
