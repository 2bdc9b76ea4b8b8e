package entity

import "time"

// Supplier representa um fornecedor. Tem exatamente um responsável (User)
// e zero ou mais produtos. CorporateName (razão social) cai para TradeName
// quando não informado na criação.
type Supplier struct {
	ID            int64
	TradeName     string // nome fantasia
	CorporateName string // razão social
	CNPJ          string
	Email         string
	Address       string
	Phone1        string
	Phone2        string
	ContactName1  string
	ContactName2  string
	Notes         string
	IsActive      bool
	ManagerID     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SupplierWithCounts é o modelo de leitura da listagem: fornecedor mais os
// totais de produtos e ciclos de compra relacionados.
type SupplierWithCounts struct {
	Supplier
	ProductCount       int64
	PurchaseCycleCount int64
}
