package appointmentRepo

import (
	"errors"

	"mindcare/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken reports that the (counselor, date, slot) coordinates are
// already held by an active appointment. It is surfaced both by the
// pre-insert existence check and by the partial unique index when two
// concurrent creates race past the check.
var ErrSlotTaken = errors.New("time slot already booked")

// MongoAppointmentRepo is the MongoDB-backed appointment repository.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a repository bound to the appointments collection.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.GetCollection("appointments")}
}
