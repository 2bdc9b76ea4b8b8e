package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador de persistência para fornecedores. Passar pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste um novo fornecedor; o banco gera ID e timestamps.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (trade_name, corporate_name, cnpj, email, address,
			phone1, phone2, contact_name1, contact_name2, notes, is_active, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		supplier.TradeName, supplier.CorporateName, supplier.CNPJ, supplier.Email,
		supplier.Address, supplier.Phone1, supplier.Phone2, supplier.ContactName1,
		supplier.ContactName2, supplier.Notes, supplier.IsActive, supplier.ManagerID,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Devolve nil sem erro quando não existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, trade_name, corporate_name, cnpj, email, address,
		       phone1, phone2, contact_name1, contact_name2, notes, is_active,
		       manager_id, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TradeName, &s.CorporateName, &s.CNPJ, &s.Email, &s.Address,
		&s.Phone1, &s.Phone2, &s.ContactName1, &s.ContactName2, &s.Notes, &s.IsActive,
		&s.ManagerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update atualiza o fornecedor (hoje apenas is_active muda após a criação).
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET trade_name = $2, corporate_name = $3, cnpj = $4,
			email = $5, address = $6, phone1 = $7, phone2 = $8,
			contact_name1 = $9, contact_name2 = $10, notes = $11, is_active = $12,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(context.Background(), query,
		supplier.ID, supplier.TradeName, supplier.CorporateName, supplier.CNPJ,
		supplier.Email, supplier.Address, supplier.Phone1, supplier.Phone2,
		supplier.ContactName1, supplier.ContactName2, supplier.Notes, supplier.IsActive,
	).Scan(&supplier.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByManagerWithCounts lista os fornecedores do responsável com totais de
// produtos e ciclos de compra relacionados.
func (r *SupplierRepo) ListByManagerWithCounts(managerID int64) ([]*entity.SupplierWithCounts, error) {
	query := `
		SELECT f.id, f.trade_name, f.corporate_name, f.cnpj, f.email, f.address,
		       f.phone1, f.phone2, f.contact_name1, f.contact_name2, f.notes, f.is_active,
		       f.manager_id, f.created_at, f.updated_at,
		       (SELECT COUNT(*) FROM products p WHERE p.supplier_id = f.id),
		       (SELECT COUNT(*) FROM purchase_cycles c WHERE c.supplier_id = f.id)
		FROM suppliers f
		WHERE f.manager_id = $1
		ORDER BY f.id`
	rows, err := r.q.Query(context.Background(), query, managerID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierWithCounts
	for rows.Next() {
		var s entity.SupplierWithCounts
		if err := rows.Scan(&s.ID, &s.TradeName, &s.CorporateName, &s.CNPJ, &s.Email,
			&s.Address, &s.Phone1, &s.Phone2, &s.ContactName1, &s.ContactName2,
			&s.Notes, &s.IsActive, &s.ManagerID, &s.CreatedAt, &s.UpdatedAt,
			&s.ProductCount, &s.PurchaseCycleCount); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
