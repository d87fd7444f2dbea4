// Package registry holds the in-memory activity registry.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// Memory stores activities in process memory. It lives for the lifetime of the server.
type Memory struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*domain.Activity
}

// NewMemory builds a registry holding the given activities in order.
// A name that appears twice keeps its first definition.
func NewMemory(activities ...domain.Activity) *Memory {
	r := &Memory{
		order:      make([]string, 0, len(activities)),
		activities: make(map[string]*domain.Activity, len(activities)),
	}
	for _, activity := range activities {
		if _, exists := r.activities[activity.Name]; exists {
			continue
		}
		stored := activity.Clone()
		r.activities[activity.Name] = &stored
		r.order = append(r.order, activity.Name)
	}
	return r
}

// NewSeeded builds a registry populated with the school's activity catalog.
func NewSeeded() *Memory {
	return NewMemory(Seed()...)
}

// List implements domain.Registry.
func (r *Memory) List(ctx context.Context) (domain.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(domain.Catalog, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out, nil
}

// Get implements domain.Registry.
func (r *Memory) Get(ctx context.Context, name string) (domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Enroll implements domain.Registry. It appends email to the end of the roster.
func (r *Memory) Enroll(ctx context.Context, name, email string) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.Activity{}, domain.ErrAlreadyEnrolled
	}

	activity.Participants = append(activity.Participants, email)
	return activity.Clone(), nil
}

// Withdraw implements domain.Registry. Remaining participants keep their order.
func (r *Memory) Withdraw(ctx context.Context, name, email string) (domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.Activity{}, domain.ErrNotEnrolled
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	return activity.Clone(), nil
}
