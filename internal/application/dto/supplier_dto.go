package dto

import "time"

// CreateSupplierRequest entrada para criar um fornecedor.
// corporateName em branco cai para tradeName no use case.
type CreateSupplierRequest struct {
	TradeName     string `json:"tradeName" validate:"required,min=1,max=200"`
	CorporateName string `json:"corporateName"`
	CNPJ          string `json:"cnpj" validate:"required"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Phone1        string `json:"phone1"`
	Phone2        string `json:"phone2"`
	ContactName1  string `json:"contactName1"`
	ContactName2  string `json:"contactName2"`
	Notes         string `json:"notes"`
	ManagerID     int64  `json:"managerId" validate:"required"`
}

// SupplierCount totais de relações do fornecedor na listagem.
type SupplierCount struct {
	Products       int64 `json:"products"`
	PurchaseCycles int64 `json:"purchaseCycles"`
}

// SupplierResponse saída de um fornecedor. Count só é preenchido na listagem.
type SupplierResponse struct {
	ID            int64          `json:"id"`
	TradeName     string         `json:"tradeName"`
	CorporateName string         `json:"corporateName"`
	CNPJ          string         `json:"cnpj"`
	Email         string         `json:"email"`
	Address       string         `json:"address"`
	Phone1        string         `json:"phone1"`
	Phone2        string         `json:"phone2"`
	ContactName1  string         `json:"contactName1"`
	ContactName2  string         `json:"contactName2"`
	Notes         string         `json:"notes"`
	IsActive      bool           `json:"isActive"`
	ManagerID     int64          `json:"managerId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Count         *SupplierCount `json:"_count,omitempty"`
}
