package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MeetingToken holds the Google OAuth credentials used for calendar calls.
// ExpireIn is a wall-clock timestamp ("2006-01-02T15:04:05") in Asia/Kolkata.
type MeetingToken struct {
	AccessToken  string `bson:"access_token" json:"access_token"`
	RefreshToken string `bson:"refresh_token" json:"refresh_token"`
	IDToken      string `bson:"id_token,omitempty" json:"id_token,omitempty"`
	ExpireIn     string `bson:"expire_in" json:"expire_in"`
}

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserName     string               `bson:"user_name" json:"user_name"`
	FirstName    string               `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName     string               `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email        string               `bson:"email" json:"email"`
	OneLinkID    string               `bson:"one_link_id,omitempty" json:"one_link_id,omitempty"`
	MeetingToken *MeetingToken        `bson:"meeting_token,omitempty" json:"-"`
	EventIDs     []primitive.ObjectID `bson:"event_ids,omitempty" json:"event_ids,omitempty"`
	WebinarIDs   []primitive.ObjectID `bson:"webinar_ids,omitempty" json:"webinar_ids,omitempty"`
}
