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

func (s *Storage) CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	booking.CreatedAt = time.Now()

	res, err := s.db.Collection(bookingsCollection).InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create booking: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	booking.ID = id

	return id, nil
}

func (s *Storage) GetBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Collection(bookingsCollection).
		FindOne(ctx, bson.M{"_id": bookingID, "user_id": userID}).
		Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrBookingNotFound
		}

		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) GetBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	cur, err := s.db.Collection(bookingsCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err = cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := s.db.Collection(bookingsCollection).
		FindOneAndDelete(ctx, bson.M{"_id": bookingID, "user_id": userID}).
		Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrBookingNotFound
		}

		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &booking, nil
}
