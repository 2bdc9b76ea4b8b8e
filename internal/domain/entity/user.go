package entity

import "time"

// Papéis válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa um usuário do sistema. Pode ser dono de lojas e
// responsável por fornecedores.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Role         string // USER, ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithCounts é o modelo de leitura da listagem: usuário mais os totais
// de lojas próprias e fornecedores sob sua responsabilidade.
type UserWithCounts struct {
	User
	StoreCount    int64
	SupplierCount int64
}
