package dto

// LoginRequest entrada para login por nombre de usuario.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión (8 horas) y los datos básicos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest entrada de PUT /api/auth/me. Password vacío conserva la clave actual.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequestRequest entrada del paso 1 de recuperación de clave.
type ResetRequestRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
}

// ResetRequestResponse salida del paso 1. Code viaja en la respuesta porque el
// envío de correo es simulado (se registra en el log del servidor).
type ResetRequestResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ResetPasswordRequest entrada del paso 2: valida el código y fija la nueva clave.
type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
