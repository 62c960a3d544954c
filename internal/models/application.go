package model

import (
	"time"

	"promarket.com/promarket/internal/constants"
)

type Application struct {
	ID               string                      `gorm:"primaryKey;size:36" json:"id"`
	Proposal         string                      `gorm:"not null" json:"proposal"`
	ProposedAmount   float64                     `gorm:"not null" json:"proposedAmount"`
	ProposedDeadline *time.Time                  `json:"proposedDeadline,omitempty"`
	Status           constants.ApplicationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	JobID            string                      `gorm:"size:36;not null;index" json:"jobId"`
	Job              *Job                        `gorm:"foreignKey:JobID" json:"job,omitempty"`
	TaskerID         string                      `gorm:"size:36;not null;index" json:"taskerId"`
	Tasker           *User                       `gorm:"foreignKey:TaskerID" json:"tasker,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

func (a *Application) IsPending() bool {
	return a.Status == constants.ApplicationPending
}

func (a *Application) IsAccepted() bool {
	return a.Status == constants.ApplicationAccepted
}
