package model

import (
	"time"

	"promarket.com/promarket/internal/constants"
)

type User struct {
	ID            string               `gorm:"primaryKey;size:36" json:"id"`
	FirstName     string               `gorm:"size:50;not null" json:"firstName"`
	LastName      string               `gorm:"size:50;not null" json:"lastName"`
	Email         string               `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string               `gorm:"size:255;not null" json:"-"`
	Phone         string               `gorm:"size:20" json:"phone,omitempty"`
	Location      string               `gorm:"size:100" json:"location,omitempty"`
	Bio           string               `json:"bio,omitempty"`
	Avatar        string               `gorm:"size:255" json:"avatar,omitempty"`
	Role          constants.Role       `gorm:"type:varchar(20);not null" json:"role"`
	Status        constants.UserStatus `gorm:"type:varchar(20);not null" json:"status"`
	EmailVerified bool                 `gorm:"not null;default:false" json:"emailVerified"`
	LastLoginAt   *time.Time           `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsActive() bool {
	return u.Status == constants.UserActive
}

func (u *User) IsRequester() bool {
	return u.Role == constants.RoleRequester
}

func (u *User) IsTasker() bool {
	return u.Role == constants.RoleTasker
}

func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
