package auth

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
	"github.com/puntoventa/minimarket-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, logRepo repository.ActivityLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, logRepo: logRepo, jwtCfg: jwtCfg}
}

// Login verifica login/password, genera JWT y retorna token + usuario.
// El campo email del request trae el login del usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByLogin(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Login, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	// Último acceso y rastro de actividad son best effort; un fallo aquí
	// no debe impedir la sesión.
	_ = uc.userRepo.UpdateLastAccess(user.ID)
	_ = uc.logRepo.Create(&entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Action:      entity.ActionLogin,
		Category:    entity.CategoryAuth,
		Description: fmt.Sprintf("Inicio de sesión de %s", user.Login),
	})
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetProfile devuelve los datos públicos del usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Login: u.Login,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
