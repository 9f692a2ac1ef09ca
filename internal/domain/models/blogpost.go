// internal/domain/models/blogpost.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost represents a post shown on the public blog page and managed
// from the admin panel.
//
// Kind distinguishes how the post was authored:
//   - manual: written in the admin editor; Content holds the Markdown body
//   - external-video: points at a YouTube video; Content is empty and
//     VideoURL holds the pasted link
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"` // short teaser shown on cards
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`     // public image URL
	Content     string             `bson:"content,omitempty" json:"content,omitempty"`
	Kind        string             `bson:"kind" json:"kind"`
	VideoURL    string             `bson:"video_url,omitempty" json:"video_url,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Blog post kinds
const (
	BlogKindManual        = "manual"
	BlogKindExternalVideo = "external-video"
)

// IsValidBlogKind checks if a kind is valid.
func IsValidBlogKind(kind string) bool {
	return kind == BlogKindManual || kind == BlogKindExternalVideo
}

// IsVideo returns true for posts that embed an external video.
func (p *BlogPost) IsVideo() bool {
	return p.Kind == BlogKindExternalVideo
}

// PlaceholderBlogThumbnail is used when a post is created without an
// uploaded thumbnail.
const PlaceholderBlogThumbnail = "https://via.placeholder.com/400x250/6366f1/ffffff?text=Blog+Post"
