package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func counselorLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "counselors",
			"localField":   "counselorId",
			"foreignField": "id",
			"as":           "counselor",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$counselor",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func userLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (repo *MongoAppointmentRepo) aggregateDetails(pipeline mongo.Pipeline) ([]models.AppointmentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AppointmentDetail
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	return results, nil
}

// GetByID retrieves one appointment with both counselor and user summaries
// attached. Returns (nil, nil) when no document matches.
func (repo *MongoAppointmentRepo) GetByID(id string) (*models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id": id}}},
	}
	pipeline = append(pipeline, counselorLookupStages()...)
	pipeline = append(pipeline, userLookupStages()...)

	results, err := repo.aggregateDetails(pipeline)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ListByUser returns a user's appointments, newest appointment date first,
// with counselor summaries attached.
func (repo *MongoAppointmentRepo) ListByUser(userID string) ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
	}
	pipeline = append(pipeline, counselorLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"appointmentDate": -1}}})
	return repo.aggregateDetails(pipeline)
}

// ListByCounselor returns a counselor's appointments, newest appointment date
// first, with user summaries attached.
func (repo *MongoAppointmentRepo) ListByCounselor(counselorID string) ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"counselorId": counselorID}}},
	}
	pipeline = append(pipeline, userLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"appointmentDate": -1}}})
	return repo.aggregateDetails(pipeline)
}

// ListAll returns every appointment, newest created first, with both
// summaries attached.
func (repo *MongoAppointmentRepo) ListAll() ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, counselorLookupStages()...)
	pipeline = append(pipeline, userLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}})
	return repo.aggregateDetails(pipeline)
}

// TakenSlots returns the time slots held by non-cancelled appointments for a
// counselor on a calendar date.
func (repo *MongoAppointmentRepo) TakenSlots(counselorID string, date time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"counselorId":     counselorID,
		"appointmentDate": date,
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	}
	raw, err := repo.coll.Distinct(ctx, "timeSlot", filter)
	if err != nil {
		return nil, fmt.Errorf("error listing taken slots: %w", err)
	}
	slots := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			slots = append(slots, s)
		}
	}
	return slots, nil
}
