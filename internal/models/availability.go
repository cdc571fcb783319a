package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type DayAvailability struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
	Enabled   bool   `bson:"enabled" json:"enabled"`
}

// Availability is a user's weekly bookable window set, shown on the public
// schedule page.
type Availability struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	DayAvailability []DayAvailability  `bson:"day_availability" json:"day_availability"`
	MinimumGap      int                `bson:"minimum_gap" json:"minimum_gap"`
}
