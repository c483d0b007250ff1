package dto

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario + secciones permitidas.
type LoginResponse struct {
	Token    string       `json:"token"`
	User     UserResponse `json:"user"`
	Sections []string     `json:"sections"`
	Landing  string       `json:"landing"`
}

// MeResponse usuario autenticado y su menú.
type MeResponse struct {
	User     UserResponse `json:"user"`
	Sections []string     `json:"sections"`
	Landing  string       `json:"landing"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// RegisterUserRequest alta de usuario (solo admin).
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}
