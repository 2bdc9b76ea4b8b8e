package usecase

import (
	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

// SupplierUseCase aplica as regras de negócio de fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso com o porto de persistência.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List devolve os fornecedores do responsável (identidade do chamador),
// com totais de produtos e ciclos de compra.
func (uc *SupplierUseCase) List(managerID int64) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.ListByManagerWithCounts(managerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		resp := toSupplierResponse(&s.Supplier)
		resp.Count = &dto.SupplierCount{
			Products:       s.ProductCount,
			PurchaseCycles: s.PurchaseCycleCount,
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Create cria um fornecedor ativo. Razão social em branco recebe o nome fantasia.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	corporateName := in.CorporateName
	if corporateName == "" {
		corporateName = in.TradeName
	}
	supplier := &entity.Supplier{
		TradeName:     in.TradeName,
		CorporateName: corporateName,
		CNPJ:          in.CNPJ,
		Email:         in.Email,
		Address:       in.Address,
		Phone1:        in.Phone1,
		Phone2:        in.Phone2,
		ContactName1:  in.ContactName1,
		ContactName2:  in.ContactName2,
		Notes:         in.Notes,
		IsActive:      true,
		ManagerID:     in.ManagerID,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// ToggleActive inverte o isActive do fornecedor e devolve o registro atualizado.
func (uc *SupplierUseCase) ToggleActive(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	supplier.IsActive = !supplier.IsActive
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		TradeName:     s.TradeName,
		CorporateName: s.CorporateName,
		CNPJ:          s.CNPJ,
		Email:         s.Email,
		Address:       s.Address,
		Phone1:        s.Phone1,
		Phone2:        s.Phone2,
		ContactName1:  s.ContactName1,
		ContactName2:  s.ContactName2,
		Notes:         s.Notes,
		IsActive:      s.IsActive,
		ManagerID:     s.ManagerID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
