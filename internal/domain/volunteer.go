package domain

import "time"

// Volunteer application statuses.
const (
	ApplicationPending   = "pending"
	ApplicationContacted = "contacted"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
)

type VolunteerApplication struct {
	ID               uint       `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	PositionInterest string     `json:"position_interest"`
	Source           string     `json:"source"`
	Notes            string     `json:"notes"`
	ContactedAt      *time.Time `json:"contacted_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ApplicationFilter narrows admin listings of volunteer applications.
// An empty Status (or "all") matches every status; Search matches
// first name, last name or email, case-insensitively.
type ApplicationFilter struct {
	Status string
	Search string
}
