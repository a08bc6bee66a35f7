package dto

import "time"

// SignUpRequest registro público: cuenta + perfil de negocio con rol user.
type SignUpRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	BusinessName  string `json:"business_name" validate:"required,min=1,max=255"`
	OwnerName     string `json:"owner_name" validate:"required,min=1,max=255"`
	OwnerMobile   string `json:"owner_mobile" validate:"required,max=32"`
	ManagerMobile string `json:"manager_mobile" validate:"omitempty,max=32"`
}

// CreateUserRequest alta desde el panel de usuarios; permite fijar el rol.
type CreateUserRequest struct {
	SignUpRequest
	Role string `json:"role" validate:"omitempty,oneof=admin manager staff user"`
}

// UpdateProfileRequest edición parcial del perfil desde el panel de usuarios.
type UpdateProfileRequest struct {
	BusinessName  *string `json:"business_name" validate:"omitempty,min=1,max=255"`
	OwnerName     *string `json:"owner_name" validate:"omitempty,min=1,max=255"`
	OwnerMobile   *string `json:"owner_mobile" validate:"omitempty,max=32"`
	ManagerMobile *string `json:"manager_mobile" validate:"omitempty,max=32"`
	Role          *string `json:"role" validate:"omitempty,oneof=admin manager staff user"`
}

// LoginRequest credenciales: nombre del negocio o email, más contraseña.
type LoginRequest struct {
	BusinessName string `json:"business_name" validate:"required_without=Email,max=255"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required"`
}

// Identifier el dato usado para ubicar la cuenta (y para el freno de intentos).
func (r LoginRequest) Identifier() string {
	if r.BusinessName != "" {
		return r.BusinessName
	}
	return r.Email
}

// ProfileResponse perfil de negocio (sin is_admin: el rol es la única autoridad).
type ProfileResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	BusinessName  string    `json:"business_name"`
	OwnerName     string    `json:"owner_name"`
	OwnerMobile   string    `json:"owner_mobile"`
	ManagerMobile string    `json:"manager_mobile"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserListResponse lista del panel de usuarios.
type UserListResponse struct {
	Items    []ProfileResponse `json:"items"`
	Controls *PanelControls    `json:"controls,omitempty"`
}

// AuthResponse token de sesión más el perfil.
type AuthResponse struct {
	Token   string          `json:"token"`
	Email   string          `json:"email"`
	Profile *ProfileResponse `json:"profile"`
}

// MeResponse identidad de la sesión con su rol vigente.
type MeResponse struct {
	UserID          string               `json:"user_id"`
	Email           string               `json:"email"`
	Role            string               `json:"role"`
	Profile         *ProfileResponse     `json:"profile"`
	Permissions     []PermissionResponse `json:"permissions"`
	CanEnterConsole bool                 `json:"can_enter_console"`
}
