package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentPaid        PaymentStatus = "Paid"
	PaymentFailed      PaymentStatus = "Failed"
	PaymentNotRequired PaymentStatus = "Not Required"
	PaymentCancelled   PaymentStatus = "Cancelled"
)

type JoinedUser struct {
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	PaymentStatus PaymentStatus      `bson:"payment_status" json:"payment_status"`
	PaymentID     string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	PaymentAmount float64            `bson:"payment_amount" json:"payment_amount"`
}

type Webinar struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	WebinarType     EventType          `bson:"webinar_type" json:"webinar_type"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Date            string             `bson:"date" json:"date"`
	StartTime       string             `bson:"start_time" json:"start_time"`
	EndTime         string             `bson:"end_time" json:"end_time"`
	Duration        int                `bson:"duration" json:"duration"`
	Link            string             `bson:"link" json:"link"`
	GoogleWebinarID string             `bson:"google_webinar_id" json:"google_webinar_id"`
	Price           float64            `bson:"price" json:"price"`
	Discount        float64            `bson:"discount" json:"discount"`
	JoinedUsers     []JoinedUser       `bson:"joined_users,omitempty" json:"joined_users,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// Free reports whether joining requires no payment.
func (w Webinar) Free() bool {
	return w.Price-w.Discount <= 0
}
