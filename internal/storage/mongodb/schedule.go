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

func (s *Storage) CreateSchedule(ctx context.Context, schedule *models.Schedule) (primitive.ObjectID, error) {
	schedule.CreatedAt = time.Now()

	res, err := s.db.Collection(schedulesCollection).InsertOne(ctx, schedule)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create schedule: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	schedule.ID = id

	return id, nil
}

func (s *Storage) GetSchedule(ctx context.Context, scheduleID primitive.ObjectID) (*models.Schedule, error) {
	var schedule models.Schedule

	err := s.db.Collection(schedulesCollection).
		FindOne(ctx, bson.M{"_id": scheduleID}).
		Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrScheduleNotFound
		}

		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return &schedule, nil
}

func (s *Storage) GetSchedulesByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error) {
	return s.findSchedules(ctx, bson.M{"user_id": userID})
}

func (s *Storage) GetSchedulesByRequester(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error) {
	return s.findSchedules(ctx, bson.M{"requester_id": userID})
}

func (s *Storage) findSchedules(ctx context.Context, filter bson.M) ([]models.Schedule, error) {
	cur, err := s.db.Collection(schedulesCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer cur.Close(ctx)

	var schedules []models.Schedule
	if err = cur.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}

	return schedules, nil
}

func (s *Storage) DeleteSchedule(ctx context.Context, userID, scheduleID primitive.ObjectID) (*models.Schedule, error) {
	var schedule models.Schedule

	err := s.db.Collection(schedulesCollection).
		FindOneAndDelete(ctx, bson.M{"_id": scheduleID, "user_id": userID}).
		Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrScheduleNotFound
		}

		return nil, fmt.Errorf("failed to delete schedule: %w", err)
	}

	return &schedule, nil
}

// UpdateScheduleRequests replaces the pending request list and the accepted
// booking in one write, so accept-one-clear-rest is a single mutation.
func (s *Storage) UpdateScheduleRequests(ctx context.Context, scheduleID primitive.ObjectID, requestedBy []models.SlotRequest, bookedBy *models.SlotRequest) error {
	update := bson.M{"$set": bson.M{
		"requested_by": requestedBy,
		"booked_by":    bookedBy,
	}}

	res, err := s.db.Collection(schedulesCollection).
		UpdateOne(ctx, bson.M{"_id": scheduleID}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule requests: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrScheduleNotFound
	}

	return nil
}

func (s *Storage) PushSlotRequest(ctx context.Context, scheduleID primitive.ObjectID, request models.SlotRequest) error {
	res, err := s.db.Collection(schedulesCollection).UpdateOne(ctx,
		bson.M{"_id": scheduleID},
		bson.M{"$push": bson.M{"requested_by": request}},
	)
	if err != nil {
		return fmt.Errorf("failed to add slot request: %w", err)
	}

	if res.MatchedCount == 0 {
		return storage.ErrScheduleNotFound
	}

	return nil
}
