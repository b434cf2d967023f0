package auth_dto

import "time"

// AuthUserResponse ist das "user"-Objekt der Auth-Antworten: Konto plus
// Profilfelder, Rolle fällt ohne Profil auf "user" zurück.
type AuthUserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name,omitempty"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsActive  bool    `json:"is_active"`
}

// SessionResponse ist das "session"-Objekt: die serverseitig verfolgte
// Sitzung hinter dem Access-Token.
type SessionResponse struct {
	ID           string    `json:"id"` // = jti
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Device       string    `json:"device,omitempty"`
}

type RegisterUserResponse struct {
	User    AuthUserResponse `json:"user"`
	Token   string           `json:"token"`
	Session SessionResponse  `json:"session"`
}

type LoginUserResponse struct {
	User    AuthUserResponse `json:"user"`
	Token   string           `json:"token"`
	Session SessionResponse  `json:"session"`
}

type RefreshTokenResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// ListSessionsResponse repräsentiert eine aktive Sitzung in der Geräteliste.
type ListSessionsResponse struct {
	ID        string    `json:"id"`
	Device    string    `json:"device"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	LoginAt   time.Time `json:"login_at"`
	Current   bool      `json:"current"`
}
