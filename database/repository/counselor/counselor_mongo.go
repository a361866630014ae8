package counselorRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/database"
	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounselorRepo is the MongoDB-backed counselor repository.
type MongoCounselorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounselorRepo returns a repository bound to the counselors collection.
func NewMongoCounselorRepo() *MongoCounselorRepo {
	return &MongoCounselorRepo{coll: database.GetCollection("counselors")}
}

// EnsureIndexes creates the unique email index.
func (repo *MongoCounselorRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create counselor indexes: %w", err)
	}
	return nil
}

// Create inserts a new counselor document.
func (repo *MongoCounselorRepo) Create(counselor *models.Counselor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, counselor); err != nil {
		return fmt.Errorf("error creating counselor: %w", err)
	}
	return nil
}

// GetByID retrieves a counselor by its ID.
func (repo *MongoCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	return repo.findOne(bson.M{"id": id})
}

// GetByEmail retrieves a counselor by email.
func (repo *MongoCounselorRepo) GetByEmail(email string) (*models.Counselor, error) {
	return repo.findOne(bson.M{"email": email})
}

func (repo *MongoCounselorRepo) findOne(filter bson.M) (*models.Counselor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var counselor models.Counselor
	err := repo.coll.FindOne(ctx, filter).Decode(&counselor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching counselor: %w", err)
	}
	return &counselor, nil
}

// List returns active counselors matching the filter, newest first.
func (repo *MongoCounselorRepo) List(filter ListFilter) ([]models.Counselor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if filter.Institution != "" && filter.Institution != "All" {
		query["institution"] = filter.Institution
	}
	if filter.Specialty != "" {
		query["specialties"] = bson.M{"$in": []string{filter.Specialty}}
	}
	if filter.Language != "" {
		query["languages"] = bson.M{"$in": []string{filter.Language}}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing counselors: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	if err := cursor.All(ctx, &counselors); err != nil {
		return nil, fmt.Errorf("error decoding counselors: %w", err)
	}
	return counselors, nil
}

// Update applies a partial update and returns the updated record.
func (repo *MongoCounselorRepo) Update(id string, fields bson.M) (*models.Counselor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("error updating counselor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return repo.GetByID(id)
}

// SoftDelete flips isActive to false. Returns false when the id does not resolve.
func (repo *MongoCounselorRepo) SoftDelete(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("error deleting counselor %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
