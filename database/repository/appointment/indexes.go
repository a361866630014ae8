package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the appointment collection indexes. The compound
// unique index is partial, scoped to active statuses, so a cancelled
// appointment never blocks re-booking the same slot and two concurrent
// creates for the same coordinates cannot both insert.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeStatuses := []string{
		models.AppointmentPending,
		models.AppointmentConfirmed,
		models.AppointmentCompleted,
	}

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "counselorId", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "timeSlot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": activeStatuses},
				}),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "appointmentDate", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "counselorId", Value: 1},
				{Key: "appointmentDate", Value: 1},
			},
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
