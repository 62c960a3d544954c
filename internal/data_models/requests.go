package dto

import "time"

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type JobRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Deadline    time.Time `json:"deadline"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
}

type ApplyRequest struct {
	Proposal         string     `json:"proposal"`
	ProposedAmount   float64    `json:"proposedAmount"`
	ProposedDeadline *time.Time `json:"proposedDeadline"`
}

type ReviewRequest struct {
	RevieweeID string `json:"revieweeId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AdminUserUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type EmailRequest struct {
	Email string `json:"email"`
}
