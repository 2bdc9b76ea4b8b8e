package usecase_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/age26/age26-backend/internal/domain/entity"
)

// MockUserRepository implementação mock do porto UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*entity.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListWithCounts() ([]*entity.UserWithCounts, error) {
	args := m.Called()
	if l := args.Get(0); l != nil {
		return l.([]*entity.UserWithCounts), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockStoreRepository implementação mock do porto StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(store *entity.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) ListWithOwner() ([]*entity.StoreWithOwner, error) {
	args := m.Called()
	if l := args.Get(0); l != nil {
		return l.([]*entity.StoreWithOwner), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSupplierRepository implementação mock do porto SupplierRepository.
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(supplier *entity.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByID(id int64) (*entity.Supplier, error) {
	args := m.Called(id)
	if s := args.Get(0); s != nil {
		return s.(*entity.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Update(supplier *entity.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) ListByManagerWithCounts(managerID int64) ([]*entity.SupplierWithCounts, error) {
	args := m.Called(managerID)
	if l := args.Get(0); l != nil {
		return l.([]*entity.SupplierWithCounts), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockProductRepository implementação mock do porto ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) List(supplierID *int64) ([]*entity.ProductWithSupplier, error) {
	args := m.Called(supplierID)
	if l := args.Get(0); l != nil {
		return l.([]*entity.ProductWithSupplier), args.Error(1)
	}
	return nil, args.Error(1)
}
