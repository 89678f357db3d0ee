package models

import (
	"gorm.io/gorm"
)

// User represents a platform member. Only the display fields are ever handed
// to the messaging layer, through UserResponse.
type User struct {
	gorm.Model
	FirstName    string  `gorm:"not null" json:"first_name"`
	LastName     string  `gorm:"not null" json:"last_name"`
	ProfilePhoto *string `json:"profile_photo"`
	Email        string  `gorm:"unique;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Password     string  `gorm:"-" json:"password"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfilePhoto: user.ProfilePhoto,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfilePhoto: user.ProfilePhoto,
	}
}
