package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetbooker/internal/models"
	"meetbooker/internal/storage"
)

// UpsertAvailability replaces the user's weekly availability, creating the
// document on first update.
func (s *Storage) UpsertAvailability(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{"$set": bson.M{
		"user_id":          availability.UserID,
		"day_availability": availability.DayAvailability,
		"minimum_gap":      availability.MinimumGap,
	}}

	var updated models.Availability

	err := s.db.Collection(availabilitiesCollection).
		FindOneAndUpdate(ctx, bson.M{"user_id": availability.UserID}, update, opts).
		Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert availability: %w", err)
	}

	return &updated, nil
}

func (s *Storage) GetAvailabilityByUser(ctx context.Context, userID primitive.ObjectID) (*models.Availability, error) {
	var availability models.Availability

	err := s.db.Collection(availabilitiesCollection).
		FindOne(ctx, bson.M{"user_id": userID}).
		Decode(&availability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrAvailabilityNotFound
		}

		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	return &availability, nil
}
