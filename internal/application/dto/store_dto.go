package dto

import "time"

// CreateStoreRequest entrada para criar uma loja.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	OwnerID int64  `json:"ownerId" validate:"required"`
}

// OwnerSummary resumo do dono embutido na listagem de lojas.
type OwnerSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreResponse saída de uma loja. Owner só é preenchido na listagem.
type StoreResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	OwnerID   int64         `json:"ownerId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
}
