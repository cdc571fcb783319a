package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventTypePublic   EventType = "Public"
	EventTypePrivate  EventType = "Private"
	EventTypePitchDay EventType = "Pitch Day"
)

// Event is an owner-defined bookable meeting template, not a single occurrence.
type Event struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID   `bson:"user_id" json:"user_id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Duration    int                  `bson:"duration" json:"duration"`
	EventType   EventType            `bson:"event_type" json:"event_type"`
	Price       float64              `bson:"price" json:"price"`
	Discount    float64              `bson:"discount" json:"discount"`
	BookingIDs  []primitive.ObjectID `bson:"booking_ids,omitempty" json:"booking_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}
