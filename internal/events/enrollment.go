// Package events defines enrollment event payloads and their delivery.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types emitted on roster changes.
const (
	TypeSignUp     = "activity.signup"
	TypeUnregister = "activity.unregister"
)

// EnrollmentChanged is emitted after a student signs up for or leaves an activity.
type EnrollmentChanged struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	Activity         string    `json:"activity"`
	Email            string    `json:"email"`
	ParticipantCount int       `json:"participant_count"`
	MaxParticipants  int       `json:"max_participants"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// NewEnrollmentChanged builds an event with a fresh ID.
func NewEnrollmentChanged(eventType, activity, email string, participantCount, maxParticipants int, occurredAt time.Time) EnrollmentChanged {
	return EnrollmentChanged{
		EventID:          uuid.NewString(),
		EventType:        eventType,
		Activity:         activity,
		Email:            email,
		ParticipantCount: participantCount,
		MaxParticipants:  maxParticipants,
		OccurredAt:       occurredAt.UTC(),
	}
}
