package usecase

import (
	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

// ProductUseCase aplica as regras de negócio de produtos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso com o porto de persistência.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devolve produtos ordenados por nome, opcionalmente filtrados por
// fornecedor, cada um anotado com o nome fantasia do fornecedor.
func (uc *ProductUseCase) List(supplierID *int64) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := toProductResponse(&p.Product)
		resp.Supplier = &dto.ProductSupplier{TradeName: p.SupplierTradeName}
		out = append(out, *resp)
	}
	return out, nil
}

// Create cria um produto ativo. Preços ausentes valem 0 (zero value do
// decimal); itemsPerBox ausente ou 0 vale 1.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	itemsPerBox := in.ItemsPerBox
	if itemsPerBox <= 0 {
		itemsPerBox = 1
	}
	product := &entity.Product{
		Name:        in.Name,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		ItemsPerBox: itemsPerBox,
		BoxPrice:    in.BoxPrice,
		Stock:       0,
		Active:      true,
		SupplierID:  in.SupplierID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		ItemsPerBox: p.ItemsPerBox,
		BoxPrice:    p.BoxPrice,
		Stock:       p.Stock,
		Active:      p.Active,
		SupplierID:  p.SupplierID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
