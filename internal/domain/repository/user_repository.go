package repository

import "github.com/age26/age26-backend/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	// Create persiste o usuário e preenche ID/CreatedAt/UpdatedAt gerados pelo banco.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// ListWithCounts devolve todos os usuários com totais de lojas e fornecedores.
	ListWithCounts() ([]*entity.UserWithCounts, error)
}
