package usecase

import (
	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

// StoreUseCase aplica as regras de negócio de lojas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase constrói o caso de uso com o porto de persistência.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// List devolve todas as lojas com o resumo do dono.
func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	stores, err := uc.repo.ListWithOwner()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{
			ID:        s.ID,
			Name:      s.Name,
			OwnerID:   s.OwnerID,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
			Owner: &dto.OwnerSummary{
				ID:    s.OwnerID,
				Name:  s.OwnerName,
				Email: s.OwnerEmail,
			},
		})
	}
	return out, nil
}

// Create cria uma loja. O ownerId não é validado aqui: uma referência
// inexistente estoura na FK do banco e sobe como erro de persistência.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &entity.Store{
		Name:    in.Name,
		OwnerID: in.OwnerID,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return &dto.StoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		OwnerID:   store.OwnerID,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}, nil
}
