package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepo implements ports.ProductRepository.
type ProductRepo struct {
	pool Pool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(pool Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create inserts a new product into the database.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, merchant_id, name, price, discount_price, quantity, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.MerchantID, p.Name, p.Price, p.DiscountPrice,
		p.Quantity, p.LowStockThreshold, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by its UUID (without locking).
func (r *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT id, merchant_id, name, price, discount_price, quantity, low_stock_threshold, created_at, updated_at
		FROM products WHERE id = $1`

	p := &domain.Product{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.MerchantID, &p.Name, &p.Price, &p.DiscountPrice,
		&p.Quantity, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a product by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT id, merchant_id, name, price, discount_price, quantity, low_stock_threshold, created_at, updated_at
		FROM products WHERE id = $1 FOR UPDATE`

	p := &domain.Product{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.MerchantID, &p.Name, &p.Price, &p.DiscountPrice,
		&p.Quantity, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateQuantity updates a product's stock level within a transaction.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, tx pgx.Tx, productID uuid.UUID, quantity int) error {
	query := `UPDATE products SET quantity = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, quantity, productID)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", productID)
	}
	return nil
}
