package entity

import "time"

// Store representa uma loja. Toda loja tem exatamente um dono (User).
type Store struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreWithOwner é o modelo de leitura da listagem: loja mais o resumo do dono.
type StoreWithOwner struct {
	Store
	OwnerName  string
	OwnerEmail string
}
