package notify

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TypeMeetingRequest = "meetingRequest"

// Notifier is the notification collaborator. Calls are fire-and-forget:
// callers log failures but never fail the triggering operation on them.
type Notifier interface {
	AddNotification(ctx context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error
	DeleteNotification(ctx context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error
}

// LogNotifier records notifications to the log. It stands in for the real
// notification service, which lives outside this module.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) AddNotification(_ context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error {
	n.log.Info("notification added",
		slog.String("recipient", recipient.Hex()),
		slog.String("type", notifType),
		slog.String("ref", ref.Hex()),
	)

	return nil
}

func (n *LogNotifier) DeleteNotification(_ context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error {
	n.log.Info("notification deleted",
		slog.String("recipient", recipient.Hex()),
		slog.String("type", notifType),
		slog.String("ref", ref.Hex()),
	)

	return nil
}
