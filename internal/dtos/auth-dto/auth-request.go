package auth_dto

// RegisterUserRequest repräsentiert die Daten für die Registrierung. Nur
// E-Mail und Passwort sind Pflicht; Name und Bestätigung werden geprüft,
// wenn sie mitkommen.
type RegisterUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"omitempty,eqfield=Password"`
}

// LoginUserRequest repräsentiert die Daten für die Anmeldung.
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest tauscht ein Refresh-Token gegen ein frisches
// Access-Token. Rotation: das alte Refresh-Token verfällt dabei.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginMetadata trägt die Geräte-Infos des Logins in die Session.
type LoginMetadata struct {
	UserAgent string
	Device    string
	IP        string
}
