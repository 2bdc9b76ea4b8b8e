package repository

import "github.com/age26/age26-backend/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	// Create persiste o produto e preenche ID/CreatedAt/UpdatedAt gerados pelo banco.
	Create(product *entity.Product) error
	// List devolve produtos ordenados por nome, opcionalmente filtrados por
	// fornecedor (supplierID nil = todos), cada um com o nome fantasia do fornecedor.
	List(supplierID *int64) ([]*entity.ProductWithSupplier, error)
}
