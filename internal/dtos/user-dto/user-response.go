package user_dto

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserEnvelope / UsersEnvelope: die Benutzer-Endpunkte benennen ihre Payload
// als "user" bzw. "users" innerhalb von data.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UsersEnvelope struct {
	Users []UserResponse `json:"users"`
}
