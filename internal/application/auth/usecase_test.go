package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/age26/age26-backend/internal/application/auth"
	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	pkgjwt "github.com/age26/age26-backend/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "age26-backend-test"
)

// MockUserRepository implementação mock do porto UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*entity.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListWithCounts() ([]*entity.UserWithCounts, error) {
	args := m.Called()
	if l := args.Get(0); l != nil {
		return l.([]*entity.UserWithCounts), args.Error(1)
	}
	return nil, args.Error(1)
}

func jwtCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpDays: 7, Issuer: testIssuer}
}

func hashedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 8)
	require.NoError(t, err)
	return &entity.User{ID: 1, Name: "Admin", Email: "admin@age26.com", PasswordHash: string(hash), Role: "ADMIN"}
}

func TestLogin_EmailInexistente(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewAuthUseCase(repo, jwtCfg(), true)

	repo.On("GetByEmail", "ninguem@x.com").Return(nil, nil)

	out, err := uc.Login(dto.LoginRequest{Email: "ninguem@x.com", Password: "pw"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SenhaErradaComVerificacaoLigada(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewAuthUseCase(repo, jwtCfg(), true)

	repo.On("GetByEmail", "admin@age26.com").Return(hashedUser(t, "correta"), nil)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@age26.com", Password: "errada"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SenhaCorretaEmiteTokenVinculadoAoUsuario(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewAuthUseCase(repo, jwtCfg(), true)

	repo.On("GetByEmail", "admin@age26.com").Return(hashedUser(t, "correta"), nil)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@age26.com", Password: "correta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "admin@age26.com", email)
	assert.Equal(t, int64(1), out.User.ID)
}

func TestLogin_VerificacaoDesligadaAceitaQualquerSenha(t *testing.T) {
	repo := new(MockUserRepository)
	uc := auth.NewAuthUseCase(repo, jwtCfg(), false)

	repo.On("GetByEmail", "admin@age26.com").Return(hashedUser(t, "correta"), nil)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@age26.com", Password: "qualquer-coisa"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}
