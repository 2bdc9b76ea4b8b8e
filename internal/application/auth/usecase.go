package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
	"github.com/age26/age26-backend/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase caso de uso de autenticação: login com emissão de token.
// Com passwordCheck desligado qualquer senha é aceita para um email
// existente — atalho de desenvolvimento herdado do build original,
// controlado por configuração explícita (AUTH_PASSWORD_CHECK).
type AuthUseCase struct {
	userRepo      repository.UserRepository
	jwtCfg        JWTConfig
	passwordCheck bool
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, passwordCheck bool) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, passwordCheck: passwordCheck}
}

// Login procura o usuário pelo email, confere a senha quando habilitado e
// devolve o usuário (sem senha) com um token vinculado ao seu id.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if uc.passwordCheck {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User:  *toUserResponse(user),
		Token: token,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
