package model

import (
	"time"

	"promarket.com/promarket/internal/constants"
)

type Job struct {
	ID               string              `gorm:"primaryKey;size:36" json:"id"`
	Title            string              `gorm:"size:200;not null" json:"title"`
	Description      string              `gorm:"not null" json:"description"`
	Budget           float64             `gorm:"not null" json:"budget"`
	Deadline         time.Time           `gorm:"not null" json:"deadline"`
	Location         string              `gorm:"size:100" json:"location,omitempty"`
	Skills           []string            `gorm:"serializer:json" json:"skills"`
	Status           constants.JobStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	RequesterID      string              `gorm:"size:36;not null;index" json:"requesterId"`
	Requester        *User               `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	AssignedTaskerID *string             `gorm:"size:36;index" json:"assignedTaskerId,omitempty"`
	AssignedTasker   *User               `gorm:"foreignKey:AssignedTaskerID" json:"assignedTasker,omitempty"`
	CompletedAt      *time.Time          `json:"completedAt,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func (j *Job) IsOpen() bool {
	return j.Status == constants.JobOpen
}

func (j *Job) IsInProgress() bool {
	return j.Status == constants.JobInProgress
}

func (j *Job) IsCompleted() bool {
	return j.Status == constants.JobCompleted
}

// IsOverdue derives the overdue flag; it is never stored.
func (j *Job) IsOverdue() bool {
	return j.Deadline.Before(time.Now()) && !j.IsCompleted()
}
