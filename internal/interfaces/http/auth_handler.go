package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/myfoodtruck/pos-api/internal/application/auth"
	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain"
)

// AuthHandler maneja login, perfil y recuperación de clave.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	_ = c.BodyParser(&in) // cuerpo malformado se trata como vacío
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuario o contraseña incorrectos."})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuario o contraseña incorrectos."})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Mi perfil
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Usuario no encontrado."})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Editar mi perfil
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "name, email, password opcional"
// @Success      200   {object}  dto.AckResponse
// @Router       /api/auth/me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	_ = c.BodyParser(&in)
	if err := h.uc.UpdateProfile(GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Usuario no encontrado."})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "Perfil actualizado con éxito."})
}

// ResetRequest godoc
// @Summary      Solicitar código de recuperación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequestRequest  true  "usernameOrEmail"
// @Success      200   {object}  dto.ResetRequestResponse
// @Router       /api/auth/reset-request [post]
func (h *AuthHandler) ResetRequest(c *fiber.Ctx) error {
	var in dto.ResetRequestRequest
	_ = c.BodyParser(&in)
	out, err := h.uc.RequestReset(in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Validar código y cambiar clave
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "username, token, newPassword"
// @Success      200   {object}  dto.AckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	_ = c.BodyParser(&in)
	if err := h.uc.ResetPassword(in); err != nil {
		if errors.Is(err, domain.ErrInvalidResetCode) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "El código es inválido o ha expirado."})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.AckResponse{Message: "Contraseña actualizada con éxito."})
}

// internalError registra el detalle en el log del servidor y responde un
// mensaje genérico: el texto del error puede filtrar SQL o internos.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor."})
}
