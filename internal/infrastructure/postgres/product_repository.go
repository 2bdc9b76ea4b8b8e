package postgres

import (
	"context"
	"fmt"

	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto; o banco gera ID e timestamps.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, cost_price, sale_price, items_per_box, box_price,
			stock, active, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.CostPrice, product.SalePrice, product.ItemsPerBox,
		product.BoxPrice, product.Stock, product.Active, product.SupplierID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List lista produtos ordenados por nome, com o nome fantasia do fornecedor.
// supplierID nil devolve todos; não nil filtra por fornecedor.
func (r *ProductRepo) List(supplierID *int64) ([]*entity.ProductWithSupplier, error) {
	query := `
		SELECT p.id, p.name, p.cost_price, p.sale_price, p.items_per_box, p.box_price,
		       p.stock, p.active, p.supplier_id, p.created_at, p.updated_at,
		       f.trade_name
		FROM products p
		JOIN suppliers f ON f.id = p.supplier_id
		WHERE $1::bigint IS NULL OR p.supplier_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithSupplier
	for rows.Next() {
		var p entity.ProductWithSupplier
		if err := rows.Scan(&p.ID, &p.Name, &p.CostPrice, &p.SalePrice, &p.ItemsPerBox,
			&p.BoxPrice, &p.Stock, &p.Active, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
			&p.SupplierTradeName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
