package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/age26/age26-backend/internal/application/dto"
	"github.com/age26/age26-backend/internal/application/usecase"
	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
)

func TestSupplierCreate_RazaoSocialCaiParaNomeFantasia(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := usecase.NewSupplierUseCase(repo)

	repo.On("Create", mock.AnythingOfType("*entity.Supplier")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Supplier).ID = 1
	}).Return(nil)

	out, err := uc.Create(dto.CreateSupplierRequest{
		TradeName: "Forn A",
		CNPJ:      "11.111.111/0001-11",
		ManagerID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Forn A", out.CorporateName, "corporateName em branco deve copiar tradeName")
	assert.True(t, out.IsActive, "fornecedor nasce ativo")
	repo.AssertExpectations(t)
}

func TestSupplierCreate_RazaoSocialExplicitaEPreservada(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := usecase.NewSupplierUseCase(repo)

	repo.On("Create", mock.AnythingOfType("*entity.Supplier")).Return(nil)

	out, err := uc.Create(dto.CreateSupplierRequest{
		TradeName:     "Forn A",
		CorporateName: "Fornecedor A LTDA",
		CNPJ:          "11.111.111/0001-11",
		ManagerID:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fornecedor A LTDA", out.CorporateName)
}

func TestSupplierToggleActive_DuasVezesVoltaAoOriginal(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := usecase.NewSupplierUseCase(repo)

	supplier := &entity.Supplier{ID: 5, TradeName: "Forn A", IsActive: true}
	repo.On("GetByID", int64(5)).Return(supplier, nil)
	repo.On("Update", supplier).Return(nil)

	out, err := uc.ToggleActive(5)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.ToggleActive(5)
	require.NoError(t, err)
	assert.True(t, out.IsActive, "dois toggles devem voltar ao valor original")
}

func TestSupplierToggleActive_IdInexistenteRetornaNotFound(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := usecase.NewSupplierUseCase(repo)

	repo.On("GetByID", int64(99)).Return(nil, nil)

	out, err := uc.ToggleActive(99)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestSupplierList_EscopadaPorResponsavel(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := usecase.NewSupplierUseCase(repo)

	repo.On("ListByManagerWithCounts", int64(1)).Return([]*entity.SupplierWithCounts{
		{
			Supplier:           entity.Supplier{ID: 1, TradeName: "Forn A", ManagerID: 1, IsActive: true},
			ProductCount:       2,
			PurchaseCycleCount: 0,
		},
	}, nil)

	out, err := uc.List(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Count)
	assert.Equal(t, int64(2), out[0].Count.Products)
	assert.Equal(t, int64(0), out[0].Count.PurchaseCycles)
}
