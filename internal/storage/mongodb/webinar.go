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

func (s *Storage) CreateWebinar(ctx context.Context, webinar *models.Webinar) (primitive.ObjectID, error) {
	webinar.CreatedAt = time.Now()

	res, err := s.db.Collection(webinarsCollection).InsertOne(ctx, webinar)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create webinar: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	webinar.ID = id

	return id, nil
}

func (s *Storage) GetWebinar(ctx context.Context, webinarID primitive.ObjectID) (*models.Webinar, error) {
	var webinar models.Webinar

	err := s.db.Collection(webinarsCollection).
		FindOne(ctx, bson.M{"_id": webinarID}).
		Decode(&webinar)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrWebinarNotFound
		}

		return nil, fmt.Errorf("failed to get webinar: %w", err)
	}

	return &webinar, nil
}

func (s *Storage) GetWebinarByOwner(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error) {
	var webinar models.Webinar

	err := s.db.Collection(webinarsCollection).
		FindOne(ctx, bson.M{"_id": webinarID, "user_id": userID}).
		Decode(&webinar)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrWebinarNotFound
		}

		return nil, fmt.Errorf("failed to get webinar: %w", err)
	}

	return &webinar, nil
}

func (s *Storage) GetWebinarsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Webinar, error) {
	cur, err := s.db.Collection(webinarsCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get webinars: %w", err)
	}
	defer cur.Close(ctx)

	var webinars []models.Webinar
	if err = cur.All(ctx, &webinars); err != nil {
		return nil, fmt.Errorf("failed to decode webinars: %w", err)
	}

	return webinars, nil
}

func (s *Storage) DeleteWebinar(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error) {
	var webinar models.Webinar

	err := s.db.Collection(webinarsCollection).
		FindOneAndDelete(ctx, bson.M{"_id": webinarID, "user_id": userID}).
		Decode(&webinar)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrWebinarNotFound
		}

		return nil, fmt.Errorf("failed to delete webinar: %w", err)
	}

	return &webinar, nil
}

// PushJoinedUser appends an attendee entry unless one already exists for the
// same user.
func (s *Storage) PushJoinedUser(ctx context.Context, webinarID primitive.ObjectID, joined models.JoinedUser) error {
	res, err := s.db.Collection(webinarsCollection).UpdateOne(ctx,
		bson.M{
			"_id":                  webinarID,
			"joined_users.user_id": bson.M{"$ne": joined.UserID},
		},
		bson.M{"$push": bson.M{"joined_users": joined}},
	)
	if err != nil {
		return fmt.Errorf("failed to add joined user: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrAlreadyJoined
	}

	return nil
}
