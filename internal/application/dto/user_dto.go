package dto

import "time"

// CreateUserRequest entrada para criar um usuário (senha em texto, o use case faz o hash).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// UserResponse saída de um usuário (sem a senha).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCount totais de relações do usuário na listagem.
type UserCount struct {
	Stores           int64 `json:"stores"`
	ManagedSuppliers int64 `json:"managedSuppliers"`
}

// UserListItem item da listagem de usuários com totais de relações.
type UserListItem struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Count UserCount `json:"_count"`
}
