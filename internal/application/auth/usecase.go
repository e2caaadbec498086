package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
	"github.com/myfoodtruck/pos-api/pkg/jwt"
	"github.com/myfoodtruck/pos-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // 480 = 8 horas
	Issuer     string
}

const resetCodeTTL = time.Hour

// AuthUseCase casos de uso de sesión y perfil: login, mi perfil y recuperación de clave.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password contra el hash bcrypt y emite un JWT de 8 horas.
// Nunca compara la clave en claro: solo bcrypt.CompareHashAndPassword.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Me devuelve los datos actuales del usuario autenticado (sin la credencial).
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// UpdateProfile edita nombre/email del usuario autenticado. Si envía una clave
// nueva de al menos 6 caracteres se rehashea; si no, el hash actual se conserva.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.Email = in.Email
	if pw := strings.TrimSpace(in.Password); len(pw) >= 6 {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// RequestReset genera un código de 6 dígitos con vigencia de 1 hora y simula su
// envío por correo escribiéndolo en el log. Si el usuario no existe responde
// igual que si existiera, sin código, para no revelar cuentas.
func (uc *AuthUseCase) RequestReset(in dto.ResetRequestRequest) (*dto.ResetRequestResponse, error) {
	const msg = "Si el usuario existe, se ha generado un código."

	user, err := uc.userRepo.GetByUsernameOrEmail(in.UsernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.ResetRequestResponse{Message: msg}, nil
	}

	code, err := generateResetCode()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(resetCodeTTL)
	if err := uc.userRepo.SetResetCode(user.ID, code, expires); err != nil {
		return nil, err
	}

	// Envío de correo simulado: el código queda en el log del servidor.
	uc.log.Info().
		Str("user", user.Username).
		Str("email", user.Email).
		Str("code", code).
		Msg("código de recuperación generado (envío simulado)")

	return &dto.ResetRequestResponse{Message: msg, Code: code}, nil
}

// ResetPassword valida username + código no expirado y fija la nueva clave,
// eliminando el código temporal. Con código inválido o vencido el hash
// existente queda intacto.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return err
	}
	if user == nil || user.ResetCode == "" || user.ResetCode != in.Token {
		return domain.ErrInvalidResetCode
	}
	if user.ResetExpires == nil || !user.ResetExpires.After(time.Now()) {
		return domain.ErrInvalidResetCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordAndClearReset(user.ID, string(hash))
}

// generateResetCode produce un código numérico de 6 dígitos (100000-999999).
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// ToUserResponse mapea la entidad a su representación pública (sin hash ni código de reset).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
