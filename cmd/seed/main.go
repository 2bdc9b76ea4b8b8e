package main

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/age26/age26-backend/internal/infrastructure/postgres"
	"github.com/age26/age26-backend/pkg/config"
	"github.com/age26/age26-backend/pkg/logger"
)

// Carga de dados de demonstração: usuário admin, dono de loja, uma loja e um
// fornecedor com dois produtos. Reexecutável: usuários são upsert por email e
// loja/fornecedor só são criados se ainda não existirem.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	adminID, err := upsertUser(ctx, pool, "Admin User", "admin@age26.com", "managed_hash_password", "ADMIN")
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	ownerID, err := upsertUser(ctx, pool, "Dono Loja 01", "loja01@age26.com", "password123", "USER")
	if err != nil {
		log.Fatal().Err(err).Msg("seed dono da loja")
	}

	if err := ensureStore(ctx, pool, "Loja Exemplo 01", ownerID); err != nil {
		log.Fatal().Err(err).Msg("seed loja")
	}

	supplierID, created, err := ensureSupplier(ctx, pool, adminID)
	if err != nil {
		log.Fatal().Err(err).Msg("seed fornecedor")
	}
	if created {
		if err := seedProducts(ctx, pool, supplierID); err != nil {
			log.Fatal().Err(err).Msg("seed produtos")
		}
	}

	log.Info().
		Int64("admin_id", adminID).
		Int64("owner_id", ownerID).
		Int64("supplier_id", supplierID).
		Msg("seed concluído")
}

func upsertUser(ctx context.Context, pool *pgxpool.Pool, name, email, password, role string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 8)
	if err != nil {
		return 0, err
	}
	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		name, email, string(hash), role,
	).Scan(&id)
	return id, err
}

func ensureStore(ctx context.Context, pool *pgxpool.Pool, name string, ownerID int64) error {
	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE name = $1 AND owner_id = $2)`,
		name, ownerID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err := pool.Exec(ctx, `INSERT INTO stores (name, owner_id) VALUES ($1, $2)`, name, ownerID)
	return err
}

// ensureSupplier cria o fornecedor de demonstração se o CNPJ ainda não existir.
// Devolve o id e se houve criação (para semear os produtos uma única vez).
func ensureSupplier(ctx context.Context, pool *pgxpool.Pool, managerID int64) (int64, bool, error) {
	const cnpj = "00.000.000/0001-00"
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM suppliers WHERE cnpj = $1 LIMIT 1`, cnpj).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, err
	}
	err = pool.QueryRow(ctx, `
		INSERT INTO suppliers (trade_name, corporate_name, cnpj, phone1, contact_name1, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		"Fornecedor Atacadista A", "Atacadista A LTDA", cnpj, "11999999999", "João Silva", managerID,
	).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool, supplierID int64) error {
	products := []struct {
		name        string
		costPrice   decimal.Decimal
		salePrice   decimal.Decimal
		itemsPerBox int
		boxPrice    decimal.Decimal
		stock       int
	}{
		{"Produto A1 (Caixa)", decimal.NewFromFloat(15.00), decimal.NewFromFloat(25.00), 10, decimal.NewFromFloat(150.00), 100},
		{"Produto B2 (Unidade)", decimal.NewFromFloat(12.50), decimal.NewFromFloat(20.00), 1, decimal.NewFromFloat(12.50), 500},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (name, cost_price, sale_price, items_per_box, box_price, stock, active, supplier_id)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)`,
			p.name, p.costPrice, p.salePrice, p.itemsPerBox, p.boxPrice, p.stock, supplierID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
