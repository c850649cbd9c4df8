package domain

import "time"

// Project groups tasks under a shared goal.
type Project struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
