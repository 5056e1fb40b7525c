package service

import (
	"context"
	"testing"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/internal/core/ports/mocks"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderTestDeps struct {
	svc         *OrderServiceImpl
	orderRepo   *mocks.MockOrderRepository
	productRepo *mocks.MockProductRepository
	walletRepo  *mocks.MockWalletRepository
	inventory   *mocks.MockInventoryService
	wallets     *mocks.MockWalletService
	ctrl        *gomock.Controller
}

func setupOrderService(t *testing.T) *orderTestDeps {
	ctrl := gomock.NewController(t)
	d := &orderTestDeps{
		orderRepo:   mocks.NewMockOrderRepository(ctrl),
		productRepo: mocks.NewMockProductRepository(ctrl),
		walletRepo:  mocks.NewMockWalletRepository(ctrl),
		inventory:   mocks.NewMockInventoryService(ctrl),
		wallets:     mocks.NewMockWalletService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewOrderService(
		d.orderRepo, d.productRepo, d.walletRepo,
		d.inventory, d.wallets, zerolog.Nop(),
	)
	return d
}

// ==================== PlaceTx Tests ====================

func TestOrderService_PlaceTx_Success(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	customerID := uuid.New()
	productID := uuid.New()
	discount := int64(40000)

	d.productRepo.EXPECT().GetByIDForUpdate(ctx, tx, productID).Return(&domain.Product{
		ID: productID, Name: "Widget", Price: 50000, DiscountPrice: &discount, Quantity: 10,
	}, nil)
	d.inventory.EXPECT().AdjustStockTx(ctx, tx, productID, -2).Return(8, nil)
	d.orderRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	order, err := d.svc.PlaceTx(ctx, tx, ports.PlaceOrderRequest{
		CustomerID: customerID,
		Items:      []ports.OrderLine{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	// The discounted price is snapshotted at placement.
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(40000), order.Items[0].Price)
	assert.Equal(t, int64(80000), order.TotalPrice)
}

func TestOrderService_PlaceTx_EmptyOrder(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	order, err := d.svc.PlaceTx(context.Background(), &mockTx{}, ports.PlaceOrderRequest{
		CustomerID: uuid.New(),
	})
	assert.Nil(t, order)
	assertAppError(t, err, apperror.CodeValidation)
}

func TestOrderService_PlaceTx_NonPositiveQuantity(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	order, err := d.svc.PlaceTx(context.Background(), &mockTx{}, ports.PlaceOrderRequest{
		CustomerID: uuid.New(),
		Items:      []ports.OrderLine{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.Nil(t, order)
	assertAppError(t, err, apperror.CodeValidation)
}

func TestOrderService_PlaceTx_InsufficientStockPropagates(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	productID := uuid.New()

	d.productRepo.EXPECT().GetByIDForUpdate(ctx, tx, productID).Return(&domain.Product{
		ID: productID, Name: "Widget", Price: 50000, Quantity: 5,
	}, nil)
	d.inventory.EXPECT().AdjustStockTx(ctx, tx, productID, -10).Return(0, apperror.ErrInsufficientStock("Widget"))

	order, err := d.svc.PlaceTx(ctx, tx, ports.PlaceOrderRequest{
		CustomerID: uuid.New(),
		Items:      []ports.OrderLine{{ProductID: productID, Quantity: 10}},
	})
	assert.Nil(t, order)
	assertAppError(t, err, apperror.CodeInsufficientStock)
}

// ==================== FulfillTx Tests ====================

func TestOrderService_FulfillTx_Success(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()
	order := &domain.Order{ID: orderID, Status: domain.OrderStatusPending, TotalPrice: 50000}

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(order, nil)
	d.wallets.EXPECT().ProcessOrderPaymentTx(ctx, tx, order).Return(nil)
	d.orderRepo.EXPECT().UpdateStatus(ctx, tx, orderID, domain.OrderStatusPaid, "").Return(nil)

	result, err := d.svc.FulfillTx(ctx, tx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, result.Status)
}

func TestOrderService_FulfillTx_NotPending(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderStatusPaid,
	}, nil)

	result, err := d.svc.FulfillTx(ctx, tx, orderID)
	assert.Nil(t, result)
	assertAppError(t, err, apperror.CodeValidation)
}

func TestOrderService_FulfillTx_PaymentFailureLeavesPending(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()
	order := &domain.Order{ID: orderID, Status: domain.OrderStatusPending, TotalPrice: 999999}

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(order, nil)
	d.wallets.EXPECT().ProcessOrderPaymentTx(ctx, tx, order).Return(apperror.ErrInsufficientFunds())
	// No UpdateStatus call: the order stays PENDING.

	result, err := d.svc.FulfillTx(ctx, tx, orderID)
	assert.Nil(t, result)
	assertAppError(t, err, apperror.CodeInsufficientFunds)
}

// ==================== CancelTx Tests ====================

func TestOrderService_CancelTx_PendingRestocksOnly(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()
	productID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderStatusPending,
	}, nil)
	d.orderRepo.EXPECT().GetItems(ctx, orderID).Return([]domain.OrderItem{
		{ProductID: productID, Quantity: 3, Price: 10000},
	}, nil)
	d.inventory.EXPECT().AdjustStockTx(ctx, tx, productID, 3).Return(8, nil)
	// No refund for a PENDING order: nothing was charged.
	d.orderRepo.EXPECT().UpdateStatus(ctx, tx, orderID, domain.OrderStatusCancelled, "changed my mind").Return(nil)

	order, err := d.svc.CancelTx(ctx, tx, orderID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelTx_PaidRefundsFullTotal(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()
	customerID := uuid.New()
	walletID := uuid.New()
	productID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, CustomerID: customerID, Status: domain.OrderStatusPaid, TotalPrice: 50000,
	}, nil)
	d.orderRepo.EXPECT().GetItems(ctx, orderID).Return([]domain.OrderItem{
		{ProductID: productID, Quantity: 1, Price: 50000},
	}, nil)
	d.inventory.EXPECT().AdjustStockTx(ctx, tx, productID, 1).Return(6, nil)
	d.walletRepo.EXPECT().GetByUserID(ctx, customerID).Return(&domain.Wallet{ID: walletID, UserID: customerID}, nil)
	d.wallets.EXPECT().TransferTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, req ports.TransferRequest) ([]domain.Transaction, error) {
			assert.Nil(t, req.SourceWalletID)
			assert.Equal(t, walletID, req.DestWalletID)
			assert.Equal(t, int64(50000), req.Amount)
			assert.Equal(t, domain.TransactionTypeRefund, req.Type)
			assert.Equal(t, domain.LabelWalletDeposit, req.Label)
			return []domain.Transaction{{Amount: 50000}}, nil
		})
	d.orderRepo.EXPECT().UpdateStatus(ctx, tx, orderID, domain.OrderStatusCancelled, "damaged").Return(nil)

	order, err := d.svc.CancelTx(ctx, tx, orderID, "damaged")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelTx_ShippedRejected(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderStatusShipped,
	}, nil)

	order, err := d.svc.CancelTx(ctx, tx, orderID, "too late")
	assert.Nil(t, order)
	assertAppError(t, err, apperror.CodeValidation)
}

// ==================== Transition Tests ====================

func TestOrderService_MarkShippedTx_RequiresPaid(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderStatusPending,
	}, nil)

	err := d.svc.MarkShippedTx(ctx, tx, orderID)
	assertAppError(t, err, apperror.CodeValidation)
}

func TestOrderService_MarkDeliveredTx_Success(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	orderID := uuid.New()

	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, orderID).Return(&domain.Order{
		ID: orderID, Status: domain.OrderStatusShipped,
	}, nil)
	d.orderRepo.EXPECT().UpdateStatus(ctx, tx, orderID, domain.OrderStatusDelivered, "").Return(nil)

	err := d.svc.MarkDeliveredTx(ctx, tx, orderID)
	require.NoError(t, err)
}
