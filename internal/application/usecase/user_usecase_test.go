package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/application/usecase"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
)

func TestUserCreate_HashBcryptEPapelPadrao(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUseCase(repo)

	repo.On("GetByEmail", "ana@x.com").Return(nil, nil)
	var created *entity.User
	repo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.User)
		created.ID = 7
	}).Return(nil)

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@x.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "USER", out.Role, "papel padrão deve ser USER")

	// A senha persiste como hash bcrypt, nunca em claro.
	require.NotNil(t, created)
	assert.NotEqual(t, "pw", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw")))
	repo.AssertExpectations(t)
}

func TestUserCreate_EmailDuplicadoNaoEscreve(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUseCase(repo)

	repo.On("GetByEmail", "ana@x.com").Return(&entity.User{ID: 1, Email: "ana@x.com"}, nil)

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@x.com", Password: "pw"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserCreate_PapelExplicitoEPreservado(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUseCase(repo)

	repo.On("GetByEmail", "root@x.com").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	out, err := uc.Create(dto.CreateUserRequest{Name: "Root", Email: "root@x.com", Password: "pw", Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", out.Role)
}

func TestUserList_IncluiTotais(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUseCase(repo)

	repo.On("ListWithCounts").Return([]*entity.UserWithCounts{
		{User: entity.User{ID: 1, Name: "Ana", Email: "ana@x.com", Role: "USER"}, StoreCount: 2, SupplierCount: 3},
		{User: entity.User{ID: 2, Name: "Bia", Email: "bia@x.com", Role: "ADMIN"}},
	}, nil)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].Count.Stores)
	assert.Equal(t, int64(3), out[0].Count.ManagedSuppliers)
	assert.Equal(t, int64(0), out[1].Count.Stores)
}
