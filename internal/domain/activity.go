package domain

import (
	"bytes"
	"encoding/json"
)

// Activity is an extracurricular offering and its current roster.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy. The participant slice is never nil so it encodes as [].
func (a Activity) Clone() Activity {
	out := a
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SpotsLeft is capacity minus roster size. It goes negative once the roster overflows.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Catalog is the ordered set of activities held by a registry.
type Catalog []Activity

// Lookup finds an activity by name.
func (c Catalog) Lookup(name string) (Activity, bool) {
	for _, a := range c {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// MarshalJSON encodes the catalog as an object keyed by activity name, keeping catalog order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, activity := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(activity.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(activity.Clone())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
