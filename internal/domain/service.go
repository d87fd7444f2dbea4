// Package domain defines the business logic for the extracurricular activities service.
package domain

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
)

var (
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled is returned when the student is already on the roster.
	ErrAlreadyEnrolled = errors.New("student already signed up for this activity")
	// ErrNotEnrolled is returned when withdrawing a student who is not on the roster.
	ErrNotEnrolled = errors.New("student is not signed up for this activity")
)

const (
	operationSignUp     = "signup"
	operationUnregister = "unregister"
)

// Registry holds the activities and their rosters.
type Registry interface {
	List(ctx context.Context) (Catalog, error)
	Get(ctx context.Context, name string) (Activity, error)
	Enroll(ctx context.Context, name, email string) (Activity, error)
	Withdraw(ctx context.Context, name, email string) (Activity, error)
}

// Service orchestrates enrollment workflows.
type Service struct {
	registry  Registry
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a Service. A nil publisher or logger disables that concern.
func NewService(registry Registry, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		registry:  registry,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListActivities returns every activity in registration order.
func (s *Service) ListActivities(ctx context.Context) (Catalog, error) {
	return s.registry.List(ctx)
}

// SignUp adds email to the roster of the named activity.
//
// Capacity is reported but not enforced: a roster that grows past MaxParticipants is logged.
func (s *Service) SignUp(ctx context.Context, activityName, email string) (Activity, error) {
	activity, err := s.registry.Enroll(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(operationSignUp, rejectionReason(err))
		return Activity{}, err
	}

	observability.RecordSignUp(activity.Name, len(activity.Participants), s.now())
	if activity.SpotsLeft() < 0 {
		s.logger.Warn("activity roster exceeds capacity",
			zap.String("activity", activity.Name),
			zap.Int("participants", len(activity.Participants)),
			zap.Int("max_participants", activity.MaxParticipants),
		)
	}
	s.publish(ctx, events.TypeSignUp, activity, email)
	return activity, nil
}

// Unregister removes email from the roster of the named activity.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (Activity, error) {
	activity, err := s.registry.Withdraw(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(operationUnregister, rejectionReason(err))
		return Activity{}, err
	}

	observability.RecordUnregistration(activity.Name, len(activity.Participants), s.now())
	s.publish(ctx, events.TypeUnregister, activity, email)
	return activity, nil
}

// SyncRosterMetrics publishes the current roster sizes, used once after seeding.
func (s *Service) SyncRosterMetrics(ctx context.Context) error {
	catalog, err := s.registry.List(ctx)
	if err != nil {
		return err
	}
	for _, activity := range catalog {
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}
	return nil
}

// publish never fails the caller; the roster change has already been applied.
func (s *Service) publish(ctx context.Context, eventType string, activity Activity, email string) {
	evt := events.NewEnrollmentChanged(eventType, activity.Name, email, len(activity.Participants), activity.MaxParticipants, s.now())
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("failed to publish enrollment event",
			zap.String("event_type", eventType),
			zap.String("activity", activity.Name),
			zap.String("event_id", evt.EventID),
			zap.Error(err),
		)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "already_enrolled"
	case errors.Is(err, ErrNotEnrolled):
		return "not_enrolled"
	default:
		return "error"
	}
}
