package repository

import "github.com/age26/age26-backend/internal/domain/entity"

// StoreRepository define o porto de persistência para Store (DIP).
type StoreRepository interface {
	// Create persiste a loja e preenche ID/CreatedAt/UpdatedAt gerados pelo banco.
	Create(store *entity.Store) error
	// ListWithOwner devolve todas as lojas com o resumo do dono.
	ListWithOwner() ([]*entity.StoreWithOwner, error)
}
