package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
// Preços ausentes valem 0; itemsPerBox ausente (ou 0) vale 1.
type CreateProductRequest struct {
	SupplierID  int64           `json:"supplierId" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	ItemsPerBox int             `json:"itemsPerBox"`
	BoxPrice    decimal.Decimal `json:"boxPrice"`
}

// ProductSupplier resumo do fornecedor embutido na listagem de produtos.
type ProductSupplier struct {
	TradeName string `json:"tradeName"`
}

// ProductResponse saída de um produto. Supplier só é preenchido na listagem.
type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	CostPrice   decimal.Decimal  `json:"costPrice"`
	SalePrice   decimal.Decimal  `json:"salePrice"`
	ItemsPerBox int              `json:"itemsPerBox"`
	BoxPrice    decimal.Decimal  `json:"boxPrice"`
	Stock       int              `json:"stock"`
	Active      bool             `json:"active"`
	SupplierID  int64            `json:"supplierId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Supplier    *ProductSupplier `json:"supplier,omitempty"`
}
