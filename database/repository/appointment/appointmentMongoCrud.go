package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new appointment document. Duplicate-key failures from the
// partial unique slot index are mapped to ErrSlotTaken.
func (repo *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetRaw retrieves an appointment by its ID without attached summaries.
// Returns (nil, nil) when no document matches.
func (repo *MongoAppointmentRepo) GetRaw(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// FindActiveBySlot returns the non-cancelled appointment occupying the given
// coordinates, or (nil, nil) when the slot is open.
func (repo *MongoAppointmentRepo) FindActiveBySlot(counselorID string, date time.Time, slot string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"counselorId":     counselorID,
		"appointmentDate": date,
		"timeSlot":        slot,
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	}
	var appt models.Appointment
	err := repo.coll.FindOne(ctx, filter).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking slot occupancy: %w", err)
	}
	return &appt, nil
}

// UpdateStatus sets status and session notes, then returns the updated record
// with the counselor summary attached.
func (repo *MongoAppointmentRepo) UpdateStatus(id, status, sessionNotes string) (*models.AppointmentDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":       status,
		"sessionNotes": sessionNotes,
		"updatedAt":    time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return repo.GetByID(id)
}

// SetStatus sets only the status field.
func (repo *MongoAppointmentRepo) SetStatus(id, status string) error {
	return repo.setField(id, "status", status)
}

// SetPaymentStatus sets only the payment status field.
func (repo *MongoAppointmentRepo) SetPaymentStatus(id, paymentStatus string) error {
	return repo.setField(id, "paymentStatus", paymentStatus)
}

func (repo *MongoAppointmentRepo) setField(id, field, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
