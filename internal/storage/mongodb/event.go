package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"meetbooker/internal/models"
	"meetbooker/internal/storage"
)

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	res, err := s.db.Collection(eventsCollection).InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create event: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	event.ID = id

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event

	err := s.db.Collection(eventsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	cur, err := s.db.Collection(eventsCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err = cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	return events, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Event, error) {
	var event models.Event

	err := s.db.Collection(eventsCollection).
		FindOneAndDelete(ctx, bson.M{"_id": eventID, "user_id": userID}).
		Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	return &event, nil
}

// FindEventByBooking returns the event whose booking list references the
// given booking.
func (s *Storage) FindEventByBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Event, error) {
	var event models.Event

	err := s.db.Collection(eventsCollection).
		FindOne(ctx, bson.M{"user_id": userID, "booking_ids": bookingID}).
		Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find event by booking: %w", err)
	}

	return &event, nil
}

func (s *Storage) PushBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error {
	return s.updateEventRefs(ctx, eventID, bson.M{"$push": bson.M{"booking_ids": bookingID}})
}

func (s *Storage) PullBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error {
	return s.updateEventRefs(ctx, eventID, bson.M{"$pull": bson.M{"booking_ids": bookingID}})
}

func (s *Storage) updateEventRefs(ctx context.Context, eventID primitive.ObjectID, update bson.M) error {
	res, err := s.db.Collection(eventsCollection).UpdateOne(ctx, bson.M{"_id": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to update event references: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}
