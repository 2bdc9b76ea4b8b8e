package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto de um fornecedor. Preços em decimal
// (NUMERIC no banco); ItemsPerBox relaciona preço de caixa e unitário.
type Product struct {
	ID          int64
	Name        string
	CostPrice   decimal.Decimal
	SalePrice   decimal.Decimal
	ItemsPerBox int
	BoxPrice    decimal.Decimal
	Stock       int
	Active      bool
	SupplierID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductWithSupplier é o modelo de leitura da listagem: produto anotado
// com o nome fantasia do fornecedor dono.
type ProductWithSupplier struct {
	Product
	SupplierTradeName string
}
