package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is one confirmed meeting scheduled against an Event. Start and End
// are wall-clock timestamps ("2006-01-02T15:04:05") in Asia/Kolkata, the same
// representation sent to the calendar provider.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	EventID        primitive.ObjectID `bson:"event_id" json:"event_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Title          string             `bson:"title" json:"title"`
	Date           string             `bson:"date" json:"date"`
	Start          string             `bson:"start" json:"start"`
	End            string             `bson:"end" json:"end"`
	AdditionalInfo string             `bson:"additional_info" json:"additional_info"`
	MeetingLink    string             `bson:"meeting_link" json:"meeting_link"`
	GoogleEventID  string             `bson:"google_event_id" json:"google_event_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
