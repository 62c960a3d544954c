package model

import "time"

type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewerID string    `gorm:"size:36;not null;index" json:"reviewerId"`
	RevieweeID string    `gorm:"size:36;not null;index" json:"revieweeId"`
	JobID      *string   `gorm:"size:36;index" json:"jobId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
