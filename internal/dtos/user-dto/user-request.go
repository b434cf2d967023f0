package user_dto

type ParamUserID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// UpdateProfileRequest: partielle Selbst-Aktualisierung, nil-Felder bleiben
// unangetastet. Rolle und E-Mail sind hier bewusst nicht änderbar.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// AdminUpdateUserRequest: Admin-Aktualisierung eines fremden Kontos,
// einschließlich Rolle und Aktiv-Status.
type AdminUpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type ListUsersQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Role   string `query:"role" validate:"omitempty,oneof=user moderator admin"`
	Search string `query:"search" validate:"omitempty,max=100"`
}
