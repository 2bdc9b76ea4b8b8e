package repository

import "github.com/age26/age26-backend/internal/domain/entity"

// SupplierRepository define o porto de persistência para Supplier (DIP).
type SupplierRepository interface {
	// Create persiste o fornecedor e preenche ID/CreatedAt/UpdatedAt gerados pelo banco.
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	// ListByManagerWithCounts devolve os fornecedores do responsável com
	// totais de produtos e ciclos de compra.
	ListByManagerWithCounts(managerID int64) ([]*entity.SupplierWithCounts, error)
}
