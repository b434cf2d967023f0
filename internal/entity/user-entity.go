package entity

import "time"

// UserEntity repräsentiert das Identitäts-Konto in der Datenbank. Das Profil
// liegt separat und darf fehlen.
type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileEntity ist der optionale Anzeige-Datensatz zu einem Konto. Fehlt er,
// behandelt die Auth-Schicht den Benutzer als Rolle "user".
type ProfileEntity struct {
	ID        string    `json:"id"` // = users.id
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}

	return false
}

// RoleOrdinal ordnet Rollen auf ihre Rangstufe ab. Unbekannte oder leere
// Rollen zählen als einfacher Benutzer.
func RoleOrdinal(role UserRole) int {
	switch role {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	default:
		return 1
	}
}

// Principal ist die request-gebundene Identität nach bestandenem Auth-Gate.
// Sie wird nie persistiert. Profile darf fehlen; Role fällt dann auf "user".
type Principal struct {
	UserID  string
	Email   string
	JTI     string
	Profile *ProfileEntity
}

func (p Principal) Role() UserRole {
	if p.Profile == nil {
		return RoleUser
	}
	return p.Profile.Role
}

// CanManage entscheidet die Besitzer-oder-Moderator-Frage für Inhalte mit
// Eigentümer. ownerID nil (Konto gelöscht) lässt nur Moderatoren durch.
func (p Principal) CanManage(ownerID *string) bool {
	if RoleOrdinal(p.Role()) >= RoleOrdinal(RoleModerator) {
		return true
	}
	return ownerID != nil && *ownerID == p.UserID
}

// UserListFilter repräsentiert die Filterkriterien der Benutzerliste.
type UserListFilter struct {
	Role   *UserRole
	Search *string
}

// UserAccount ist das Lesemodell Konto+Profil für Admin-Listen und
// Detailansichten. Role ist bereits auf "user" zurückgefallen, wenn kein
// Profil existiert.
type UserAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      UserRole  `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
