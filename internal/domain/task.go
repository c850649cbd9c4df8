// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a work unit tracked by Workasana.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ProjectID      string    `json:"projectId"`
	TeamID         string    `json:"teamId"`
	Status         Status    `json:"status"`
	Owners         []string  `json:"owners"`       // User IDs
	OwnerDetails   []User    `json:"ownerDetails"` // Resolved by the backend
	Tags           []string  `json:"tags"`
	TimeToComplete float64   `json:"timeToComplete"` // Estimated days, > 0
}

// HasOwner returns true if the given user ID is one of the task's owners.
func (t *Task) HasOwner(userID string) bool {
	for _, id := range t.Owners {
		if id == userID {
			return true
		}
	}
	return false
}

// HasAnyTag returns true if the task carries at least one of the given tags.
func (t *Task) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range t.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Priority returns the priority derived from the task's time estimate.
func (t *Task) Priority() Priority {
	return PriorityFor(t.TimeToComplete)
}
