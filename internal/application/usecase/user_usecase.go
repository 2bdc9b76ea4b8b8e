package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

// Custo bcrypt herdado do build original.
const bcryptCost = 8

// UserUseCase aplica as regras de negócio de usuários.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devolve todos os usuários com os totais de lojas e fornecedores.
func (uc *UserUseCase) List() ([]dto.UserListItem, error) {
	users, err := uc.repo.ListWithCounts()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserListItem{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
			Count: dto.UserCount{
				Stores:           u.StoreCount,
				ManagedSuppliers: u.SupplierCount,
			},
		})
	}
	return out, nil
}

// Create cria um usuário: recusa email duplicado antes de escrever, faz o hash
// bcrypt da senha e aplica o papel padrão USER.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
