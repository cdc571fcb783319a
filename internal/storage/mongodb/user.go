package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"meetbooker/internal/models"
	"meetbooker/internal/storage"
)

func (s *Storage) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"user_name": username})
}

func (s *Storage) GetUserByOneLink(ctx context.Context, oneLinkID string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"one_link_id": oneLinkID})
}

func (s *Storage) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := s.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SaveMeetingToken persists a refreshed or newly issued OAuth token set onto
// the user record.
func (s *Storage) SaveMeetingToken(ctx context.Context, userID primitive.ObjectID, token models.MeetingToken) error {
	res, err := s.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"meeting_token": token}},
	)
	if err != nil {
		return fmt.Errorf("failed to save meeting token: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func (s *Storage) PushEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error {
	return s.updateUserRefs(ctx, userID, bson.M{"$push": bson.M{"event_ids": eventID}})
}

func (s *Storage) PullEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error {
	return s.updateUserRefs(ctx, userID, bson.M{"$pull": bson.M{"event_ids": eventID}})
}

func (s *Storage) PushWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error {
	return s.updateUserRefs(ctx, userID, bson.M{"$push": bson.M{"webinar_ids": webinarID}})
}

func (s *Storage) PullWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error {
	return s.updateUserRefs(ctx, userID, bson.M{"$pull": bson.M{"webinar_ids": webinarID}})
}

func (s *Storage) updateUserRefs(ctx context.Context, userID primitive.ObjectID, update bson.M) error {
	res, err := s.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update user references: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
