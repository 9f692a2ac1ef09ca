// Package service persists the consultancy's service offerings.
package service

import (
	"context"
	"time"

	"github.com/raiconsult/web/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides CRUD operations over the services collection.
type Store struct {
	c *mongo.Collection
}

// New creates a service store backed by db.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// EnsureIndexes creates the indexes the store relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// CreateInput carries the fields for a new service.
type CreateInput struct {
	Title       string
	Description string
	Image       string
	Features    []string
	Benefits    string
}

// Create inserts a new service. The creation timestamp is assigned here
// and never modified afterwards.
func (s *Store) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	svc := &models.Service{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Features:    in.Features,
		Benefits:    in.Benefits,
		CreatedAt:   time.Now(),
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	if _, err := s.c.InsertOne(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetByID returns the service with the given id, or mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateInput carries the full replacement state of a service. Every
// field overwrites the stored value; Image holds either a freshly
// uploaded URL or the previously stored one.
type UpdateInput struct {
	Title       string
	Description string
	Image       string
	Features    []string
	Benefits    string
}

// Update overwrites all mutable fields of the service. The original
// creation timestamp is left untouched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) error {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":       in.Title,
		"description": in.Description,
		"image":       in.Image,
		"features":    features,
		"benefits":    in.Benefits,
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

// Delete removes the service with the given id.
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

// List returns all services, newest first. An empty collection yields
// an empty slice.
func (s *Store) List(ctx context.Context) ([]models.Service, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	services := []models.Service{}
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Count returns the number of services.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
