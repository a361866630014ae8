package webinarRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/database"
	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// WebinarRepository defines data access for webinars.
type WebinarRepository interface {
	Create(webinar *models.Webinar) error
	// GetByID returns a webinar, or (nil, nil) when missing.
	GetByID(id string) (*models.Webinar, error)
	// List returns all webinars, soonest first, with creator summaries attached.
	List() ([]models.WebinarDetail, error)
	// AddAttendee registers a user; returns false when already registered.
	AddAttendee(id, userID string) (bool, error)
	Delete(id string) (bool, error)
}

// MongoWebinarRepo is the MongoDB-backed webinar repository.
type MongoWebinarRepo struct {
	coll *mongo.Collection
}

// NewMongoWebinarRepo returns a repository bound to the webinars collection.
func NewMongoWebinarRepo() *MongoWebinarRepo {
	return &MongoWebinarRepo{coll: database.GetCollection("webinars")}
}

// Create inserts a new webinar document.
func (repo *MongoWebinarRepo) Create(webinar *models.Webinar) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, webinar); err != nil {
		return fmt.Errorf("error creating webinar: %w", err)
	}
	return nil
}

// GetByID retrieves a webinar by its ID.
func (repo *MongoWebinarRepo) GetByID(id string) (*models.Webinar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var webinar models.Webinar
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&webinar)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching webinar %s: %w", id, err)
	}
	return &webinar, nil
}

// List returns all webinars, soonest first, with creator summaries attached.
func (repo *MongoWebinarRepo) List() ([]models.WebinarDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "createdBy",
			"foreignField": "id",
			"as":           "creator",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$creator",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"date": 1}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("webinar aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var webinars []models.WebinarDetail
	if err := cursor.All(ctx, &webinars); err != nil {
		return nil, fmt.Errorf("error decoding webinars: %w", err)
	}
	return webinars, nil
}

// AddAttendee registers a user for the webinar. Returns false when the user
// is already on the attendee list.
func (repo *MongoWebinarRepo) AddAttendee(id, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$addToSet": bson.M{"attendees": userID}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("error registering attendee: %w", err)
	}
	if res.MatchedCount == 0 {
		return false, fmt.Errorf("webinar %s not found", id)
	}
	return res.ModifiedCount > 0, nil
}

// Delete removes the webinar document. Returns false when the id does not resolve.
func (repo *MongoWebinarRepo) Delete(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting webinar %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
