package domain

import "time"

// Team is a group of users tasks can be assigned to.
type Team struct {
	CreatedAt   time.Time    `json:"createdAt"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []TeamMember `json:"members"`
}

// TeamMember is a user's membership in a team. Role is a free-form label
// (e.g. "Member", "Lead"), not an enum.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
