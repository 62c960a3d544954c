package model

import "time"

type FileResource struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	FileName     string    `gorm:"not null" json:"fileName"`
	ContentType  string    `gorm:"size:100;not null" json:"contentType"`
	Size         int64     `gorm:"not null" json:"size"`
	JobID        *string   `gorm:"size:36;index" json:"jobId,omitempty"`
	UserID       *string   `gorm:"size:36;index" json:"userId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
