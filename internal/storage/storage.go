package storage

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrWebinarNotFound      = errors.New("webinar not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrAlreadyJoined        = errors.New("user already joined webinar")
)
