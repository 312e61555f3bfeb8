package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports an id with no stored product. Absence is an ordinary
// result, not a store failure.
var ErrNotFound = errors.New("product not found")

// Repository is the persistence contract shared by the memory and postgres
// stores. Merge logic happens upstream; Update receives the merged entity.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, draft Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type pgRepository struct {
	db *pgxpool.Pool
}

// NewRepository returns the PostgreSQL-backed store. Every call runs as its
// own implicit transaction; no operation spans more than one call.
func NewRepository(db *pgxpool.Pool) Repository {
	return &pgRepository{db: db}
}

const productColumns = `id, name, description, price, stock, created_at, updated_at`

func (r *pgRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("products: scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *pgRepository) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get id=%d: %w", id, err)
	}
	return p, nil
}

func (r *pgRepository) Create(ctx context.Context, draft Product) (Product, error) {
	query := `INSERT INTO products (name, description, price, stock, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now().UTC()
	if err := r.db.QueryRow(ctx, query, draft.Name, draft.Description, draft.Price, draft.Stock, now).Scan(&draft.ID); err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	draft.CreatedAt = now
	draft.UpdatedAt = nil
	return draft, nil
}

func (r *pgRepository) Update(ctx context.Context, id int64, product Product) (Product, error) {
	query := `UPDATE products SET name = $1, description = $2, price = $3, stock = $4, updated_at = $5 WHERE id = $6 RETURNING created_at`
	now := time.Now().UTC()
	err := r.db.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.Stock, now, id).
		Scan(&product.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: update id=%d: %w", id, err)
	}
	product.ID = id
	product.UpdatedAt = &now
	return product, nil
}

func (r *pgRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
