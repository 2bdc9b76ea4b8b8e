package postgres

import (
	"context"
	"fmt"

	"github.com/age26/age26-backend/internal/domain"
	"github.com/age26/age26-backend/internal/domain/entity"
	"github.com/age26/age26-backend/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementação do porto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository constrói o adaptador de persistência para lojas. Passar pool ou tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste uma nova loja; o banco gera ID e timestamps.
// O owner_id não é validado antes: violação de FK vira domain.ErrForeignKey.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		store.Name, store.OwnerID,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// ListWithOwner lista todas as lojas com o resumo do dono (id, nome, email).
func (r *StoreRepo) ListWithOwner() ([]*entity.StoreWithOwner, error) {
	query := `
		SELECT s.id, s.name, s.owner_id, s.created_at, s.updated_at,
		       u.name, u.email
		FROM stores s
		JOIN users u ON u.id = s.owner_id
		ORDER BY s.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreWithOwner
	for rows.Next() {
		var s entity.StoreWithOwner
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
			&s.OwnerName, &s.OwnerEmail); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
