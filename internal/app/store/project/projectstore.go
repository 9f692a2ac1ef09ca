// Package project persists the portfolio of completed projects.
package project

import (
	"context"
	"time"

	"github.com/raiconsult/web/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides CRUD operations over the projects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a project store backed by db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// EnsureIndexes creates the indexes the store relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

// CreateInput carries the fields for a new project.
type CreateInput struct {
	Title       string
	Description string
	Image       string
	Category    string
	Location    string
	Year        string
	Client      string
	Services    []string
	Details     string
}

// Create inserts a new project. The creation timestamp is assigned here
// and never modified afterwards.
func (s *Store) Create(ctx context.Context, in CreateInput) (*models.Project, error) {
	p := &models.Project{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Location:    in.Location,
		Year:        in.Year,
		Client:      in.Client,
		Services:    in.Services,
		Details:     in.Details,
		CreatedAt:   time.Now(),
	}
	if p.Services == nil {
		p.Services = []string{}
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns the project with the given id, or mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateInput carries the full replacement state of a project. Every
// field overwrites the stored value; Image holds either a freshly
// uploaded URL or the previously stored one.
type UpdateInput struct {
	Title       string
	Description string
	Image       string
	Category    string
	Location    string
	Year        string
	Client      string
	Services    []string
	Details     string
}

// Update overwrites all mutable fields of the project. The original
// creation timestamp is left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	services := in.Services
	if services == nil {
		services = []string{}
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":       in.Title,
		"description": in.Description,
		"image":       in.Image,
		"category":    in.Category,
		"location":    in.Location,
		"year":        in.Year,
		"client":      in.Client,
		"services":    services,
		"details":     in.Details,
		"updated_at":  time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the project with the given id.
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

// List returns all projects, newest first. An empty collection yields
// an empty slice.
func (s *Store) List(ctx context.Context) ([]models.Project, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Count returns the number of projects.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// ListRecent returns up to limit projects, newest first. Used by the
// landing page's featured projects section.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.Project, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
