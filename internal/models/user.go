package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const DefaultAvatarURL = "https://i.pinimg.com/736x/9e/83/75/9e837528f01cf3f42119c5aeeed1b336.jpg"

type User struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Username    string     `json:"username" gorm:"size:50;uniqueIndex;not null"`
	DisplayName string     `json:"display_name" gorm:"size:50;not null"`
	Password    string     `json:"-"` // Store hashed password, ignore for JSON serialization
	Role        string     `json:"role" gorm:"size:20;not null;default:'user'"`
	Bio         string     `json:"bio"`
	AvatarURL   string     `json:"avatar_url"`
	MusicLink   string     `json:"music_link,omitempty"`
	StatusNote  string     `json:"status_note,omitempty" gorm:"size:50"`
	FirebaseUID *string    `json:"-" gorm:"uniqueIndex"` // Link to Firebase User UID
	LastActive  *time.Time `json:"last_active,omitempty" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserCompact is the author block embedded in posts, comments and messages.
type UserCompact struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	StatusNote  string `json:"status_note,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		StatusNote:  u.StatusNote,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"omitempty,max=50"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50,alphanum"`
	DisplayName string `json:"display_name" validate:"omitempty,max=50"`
	Bio         string `json:"bio" validate:"max=1000"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
	MusicLink   string `json:"music_link" validate:"omitempty,url"`
	StatusNote  string `json:"status_note" validate:"max=50"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
