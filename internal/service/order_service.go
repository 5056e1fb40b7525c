package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orderRepo   ports.OrderRepository
	productRepo ports.ProductRepository
	walletRepo  ports.WalletRepository
	inventory   ports.InventoryService
	wallets     ports.WalletService
	log         zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	orderRepo ports.OrderRepository,
	productRepo ports.ProductRepository,
	walletRepo ports.WalletRepository,
	inventory ports.InventoryService,
	wallets ports.WalletService,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		walletRepo:  walletRepo,
		inventory:   inventory,
		wallets:     wallets,
		log:         log,
	}
}

// PlaceTx reserves stock for every requested item, snapshots effective
// prices and creates the order in PENDING. The whole placement runs in
// the caller's transaction: any reservation failure rolls back the
// reservations already made.
func (s *OrderServiceImpl) PlaceTx(ctx context.Context, tx pgx.Tx, req ports.PlaceOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperror.Validation("order must contain at least one item")
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, apperror.Validationf("invalid quantity %d for product %s", line.Quantity, line.ProductID)
		}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		Status:     domain.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, line := range req.Items {
		product, err := s.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock product: %w", err))
		}
		if product == nil {
			return nil, apperror.ErrNotFound("product")
		}

		// Price is snapshotted here, before the reservation, and never
		// re-read from the catalog.
		price := product.EffectivePrice()

		if _, err := s.inventory.AdjustStockTx(ctx, tx, line.ProductID, -line.Quantity); err != nil {
			return nil, err
		}

		order.Items = append(order.Items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
		order.TotalPrice += price * int64(line.Quantity)
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", req.CustomerID.String()).
		Int("items", len(order.Items)).
		Int64("total", order.TotalPrice).
		Msg("order placed")
	return order, nil
}

// FulfillTx charges the customer wallet and moves the order to PAID.
// On insufficient funds the order stays PENDING and the error
// propagates unchanged.
func (s *OrderServiceImpl) FulfillTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.Status != domain.OrderStatusPending {
		return nil, apperror.Validationf("order %s is not pending (status %s)", order.ID, order.Status)
	}

	if err := s.wallets.ProcessOrderPaymentTx(ctx, tx, order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, domain.OrderStatusPaid, ""); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order status: %w", err))
	}
	order.Status = domain.OrderStatusPaid

	s.log.Info().
		Str("order_id", order.ID.String()).
		Int64("total", order.TotalPrice).
		Msg("order paid")
	return order, nil
}

// CancelTx restocks every item and, for a PAID order, refunds the full
// total to the customer wallet. Allowed from PENDING and PAID only.
func (s *OrderServiceImpl) CancelTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, reason string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if !order.IsCancellable() {
		return nil, apperror.Validationf("order %s cannot be cancelled (status %s)", order.ID, order.Status)
	}

	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load order items: %w", err))
	}

	for _, item := range items {
		if _, err := s.inventory.AdjustStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if order.Status == domain.OrderStatusPaid {
		wallet, err := s.walletRepo.GetByUserID(ctx, order.CustomerID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("find customer wallet: %w", err))
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("customer wallet")
		}
		if _, err := s.wallets.TransferTx(ctx, tx, ports.TransferRequest{
			DestWalletID: wallet.ID,
			Amount:       order.TotalPrice,
			Type:         domain.TransactionTypeRefund,
			Label:        domain.LabelWalletDeposit,
			OrderID:      &order.ID,
			Description:  fmt.Sprintf("Refund for cancelled order %s", order.ID),
		}); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, domain.OrderStatusCancelled, reason); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order status: %w", err))
	}
	order.Status = domain.OrderStatusCancelled
	order.CancelReason = reason

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("reason", reason).
		Msg("order cancelled")
	return order, nil
}

// MarkShippedTx moves a PAID order to SHIPPED.
func (s *OrderServiceImpl) MarkShippedTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	return s.transitionTx(ctx, tx, orderID, domain.OrderStatusShipped)
}

// MarkDeliveredTx moves a SHIPPED order to DELIVERED.
func (s *OrderServiceImpl) MarkDeliveredTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error {
	return s.transitionTx(ctx, tx, orderID, domain.OrderStatusDelivered)
}

func (s *OrderServiceImpl) transitionTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, next domain.OrderStatus) error {
	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("order")
	}
	if !order.Status.CanTransitionTo(next) {
		return apperror.Validationf("order %s cannot move from %s to %s", order.ID, order.Status, next)
	}
	if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, next, ""); err != nil {
		return apperror.InternalError(fmt.Errorf("update order status: %w", err))
	}
	return nil
}

// GetByID returns the order with its items.
func (s *OrderServiceImpl) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	items, err := s.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load order items: %w", err))
	}
	order.Items = items
	return order, nil
}
