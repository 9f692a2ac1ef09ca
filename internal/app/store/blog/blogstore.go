// internal/app/store/blog/blogstore.go
package blog

import (
	"context"
	"time"

	"github.com/raiconsult/web/internal/app/store/storeutil"
	"github.com/raiconsult/web/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the blogs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new blog post store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("blogs"),
	}
}

// EnsureIndexes creates necessary indexes for the collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "kind", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// CreateInput contains the input for creating a blog post. Thumbnail must
// already be a resolved URL (uploaded image or placeholder); the store
// never touches blob storage.
type CreateInput struct {
	Title       string
	Description string
	Thumbnail   string
	Content     string
	Kind        string
	VideoURL    string
}

// Create inserts a new post. CreatedAt is assigned here, server-side, and
// is never modified afterwards.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.BlogPost, error) {
	post := models.BlogPost{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Thumbnail:   input.Thumbnail,
		Content:     input.Content,
		Kind:        input.Kind,
		VideoURL:    input.VideoURL,
		CreatedAt:   time.Now(),
	}

	if _, err := s.c.InsertOne(ctx, post); err != nil {
		return nil, err
	}

	return &post, nil
}

// GetByID retrieves a post by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateInput contains the full replacement field set for a post. Edit
// forms submit every field, so all values are overwritten unconditionally;
// there are no partial updates. Thumbnail carries either the newly
// uploaded URL or the previous one when no new image was supplied.
type UpdateInput struct {
	Title       string
	Description string
	Thumbnail   string
	Content     string
	Kind        string
	VideoURL    string
}

// Update overwrites a post's fields. CreatedAt is left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) error {
	now := time.Now()
	set := bson.M{
		"title":       input.Title,
		"description": input.Description,
		"thumbnail":   input.Thumbnail,
		"content":     input.Content,
		"kind":        input.Kind,
		"video_url":   input.VideoURL,
		"updated_at":  now,
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a post.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns all posts, newest first. An empty collection yields an
// empty slice, not nil.
func (s *Store) List(ctx context.Context) ([]models.BlogPost, error) {
	cursor, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// ListPage returns one page of posts, newest first, using a 1-based page
// number. An empty page yields an empty slice, not nil.
func (s *Store) ListPage(ctx context.Context, limit, page int64) ([]models.BlogPost, error) {
	opts := storeutil.Paginate(limit, page).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Count returns the number of posts.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// ListRecent returns up to limit posts, newest first. Used for the
// landing page preview.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	cursor, err := s.c.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}
