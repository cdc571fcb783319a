package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotRequest is one competing request filed against an open schedule slot.
type SlotRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	CompanyName string             `bson:"company_name,omitempty" json:"company_name,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	OneLink     string             `bson:"one_link,omitempty" json:"one_link,omitempty"`
	Start       time.Time          `bson:"start" json:"start"`
	End         time.Time          `bson:"end" json:"end"`
}

// Schedule is an owner-proposed open time window, distinct from the
// Event/Booking mechanism. It holds zero or more pending requests until the
// owner accepts exactly one, which clears the rest.
type Schedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	RequesterID primitive.ObjectID `bson:"requester_id" json:"requester_id"`
	Title       string             `bson:"title" json:"title"`
	Agenda      string             `bson:"agenda" json:"agenda"`
	Doc         string             `bson:"doc,omitempty" json:"doc,omitempty"`
	Start       time.Time          `bson:"start" json:"start"`
	End         time.Time          `bson:"end" json:"end"`
	MeetingLink string             `bson:"meeting_link" json:"meeting_link"`
	GoogleID    string             `bson:"google_id,omitempty" json:"google_id,omitempty"`
	RequestedBy []SlotRequest      `bson:"requested_by,omitempty" json:"requested_by,omitempty"`
	BookedBy    *SlotRequest       `bson:"booked_by,omitempty" json:"booked_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Booked reports whether the slot already has an accepted request.
func (s Schedule) Booked() bool {
	return s.BookedBy != nil && s.BookedBy.Name != ""
}
