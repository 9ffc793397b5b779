package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a Store implementation backed by a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an established connection pool.
// The caller owns the pool lifecycle.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) FetchByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, description, price, image FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, fmt.Errorf("fetch product %d: %w", id, err)
	}
	return p, nil
}

func (s *PostgresStore) FetchPage(ctx context.Context, page, pageSize int) ([]Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, description, price, image FROM products ORDER BY id LIMIT $1 OFFSET $2`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch products page %d: %w", page, err)
	}
	defer rows.Close()

	out := make([]Product, 0, pageSize)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products page %d: %w", page, err)
	}
	return out, nil
}

func (s *PostgresStore) Create(ctx context.Context, p Product) (Product, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, image) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Description, p.Price, p.Image,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}
