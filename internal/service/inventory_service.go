package service

import (
	"context"
	"fmt"

	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// InventoryServiceImpl implements ports.InventoryService.
type InventoryServiceImpl struct {
	productRepo ports.ProductRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewInventoryService creates a new InventoryServiceImpl.
func NewInventoryService(
	productRepo ports.ProductRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		productRepo: productRepo,
		transactor:  transactor,
		log:         log,
	}
}

// AdjustStock applies delta to the product quantity in its own
// transaction. See AdjustStockTx.
func (s *InventoryServiceImpl) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (int, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	quantity, err := s.AdjustStockTx(ctx, dbTx, productID, delta)
	if err != nil {
		return 0, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return quantity, nil
}

// AdjustStockTx applies delta under the product row lock inside the
// caller's transaction. A result below zero fails with insufficient
// stock and writes nothing.
func (s *InventoryServiceImpl) AdjustStockTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, delta int) (int, error) {
	product, err := s.productRepo.GetByIDForUpdate(ctx, tx, productID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock product: %w", err))
	}
	if product == nil {
		return 0, apperror.ErrNotFound("product")
	}

	newQuantity := product.Quantity + delta
	if newQuantity < 0 {
		return 0, apperror.ErrInsufficientStock(product.Name)
	}

	if err := s.productRepo.UpdateQuantity(ctx, tx, productID, newQuantity); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("update quantity: %w", err))
	}

	if newQuantity <= product.LowStockThreshold {
		s.log.Warn().
			Str("product_id", productID.String()).
			Int("quantity", newQuantity).
			Int("threshold", product.LowStockThreshold).
			Msg("product stock at or below threshold")
	}

	return newQuantity, nil
}

// SetStock overwrites the product quantity. Negative values are rejected.
func (s *InventoryServiceImpl) SetStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return apperror.Validation("stock quantity cannot be negative")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	product, err := s.productRepo.GetByIDForUpdate(ctx, dbTx, productID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock product: %w", err))
	}
	if product == nil {
		return apperror.ErrNotFound("product")
	}

	if err := s.productRepo.UpdateQuantity(ctx, dbTx, productID, quantity); err != nil {
		return apperror.InternalError(fmt.Errorf("update quantity: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("product_id", productID.String()).
		Int("quantity", quantity).
		Msg("stock level set")
	return nil
}
