package service

import (
	"context"
	"fmt"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SagaCoordinatorImpl implements ports.SagaCoordinator. It owns exactly
// one transaction per operation and composes the Tx-variants of the
// underlying services, so every step either fully commits or leaves no
// trace.
type SagaCoordinatorImpl struct {
	orders     ports.OrderService
	deliveries ports.DeliveryService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewSagaCoordinator creates a new SagaCoordinatorImpl.
func NewSagaCoordinator(
	orders ports.OrderService,
	deliveries ports.DeliveryService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SagaCoordinatorImpl {
	return &SagaCoordinatorImpl{
		orders:     orders,
		deliveries: deliveries,
		transactor: transactor,
		log:        log,
	}
}

// PlaceOrder reserves stock for every line and creates the PENDING
// order atomically.
func (s *SagaCoordinatorImpl) PlaceOrder(ctx context.Context, req ports.PlaceOrderRequest) (*domain.Order, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.PlaceTx(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return order, nil
}

// FulfillOrder charges the customer, moves the order to PAID and
// initializes its delivery record, all in one transaction. A payment
// failure leaves the order PENDING and no delivery behind.
func (s *SagaCoordinatorImpl) FulfillOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.FulfillTx(ctx, dbTx, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.deliveries.CreateTx(ctx, dbTx, order); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("order_id", order.ID.String()).Msg("order fulfilled")
	return order, nil
}

// ShipOrder marks the delivery ready for pickup and the order SHIPPED
// in one transaction. Only PAID orders ship.
func (s *SagaCoordinatorImpl) ShipOrder(ctx context.Context, orderID uuid.UUID, merchantNotes string) (*domain.Order, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.deliveries.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.deliveries.MarkReadyTx(ctx, dbTx, delivery.ID, merchantNotes); err != nil {
		return nil, err
	}
	if err := s.orders.MarkShippedTx(ctx, dbTx, orderID); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("order_id", orderID.String()).Msg("order shipped")
	return order, nil
}

// MarkDelivered verifies the handoff code and completes the saga:
// delivery DELIVERED, order DELIVERED, merchant payout settled. The
// delivery service owns that transaction.
func (s *SagaCoordinatorImpl) MarkDelivered(ctx context.Context, deliveryID uuid.UUID, code string) (*domain.Delivery, error) {
	return s.deliveries.CompleteDelivery(ctx, deliveryID, code)
}

// CancelOrder cancels the order (restock + refund when PAID) and its
// delivery, when one exists and is still live, in one transaction.
func (s *SagaCoordinatorImpl) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orders.CancelTx(ctx, dbTx, orderID, reason)
	if err != nil {
		return nil, err
	}

	delivery, err := s.deliveries.GetByOrderID(ctx, orderID)
	if err != nil && !apperror.IsCode(err, apperror.CodeNotFound) {
		return nil, err
	}
	if delivery != nil && !delivery.Status.IsTerminal() {
		if _, err := s.deliveries.CancelTx(ctx, dbTx, delivery.ID, reason); err != nil {
			return nil, err
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("reason", reason).
		Msg("order cancelled via saga")
	return order, nil
}
