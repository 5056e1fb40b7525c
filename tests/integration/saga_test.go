package integration

import (
	"context"
	"testing"
	"time"

	redisStorage "marketplace-core/internal/adapter/storage/redis"
	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/internal/service"
	"marketplace-core/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack against in-memory repos and a
// miniredis-backed live location store.
type testEnv struct {
	userRepo     *inMemoryUserRepo
	productRepo  *inMemoryProductRepo
	walletRepo   *inMemoryWalletRepo
	txRepo       *inMemoryTransactionRepo
	orderRepo    *inMemoryOrderRepo
	deliveryRepo *inMemoryDeliveryRepo

	inventory   ports.InventoryService
	wallets     ports.WalletService
	orders      ports.OrderService
	deliveries  ports.DeliveryService
	coordinator ports.SagaCoordinator

	customer domain.User
	merchant domain.User
	driver   domain.User
	product  domain.Product

	customerWallet domain.Wallet
	merchantWallet domain.Wallet
	platformWallet domain.Wallet
}

const (
	initialBalance = int64(100000) // 1000.00 in minor units
	productPrice   = int64(50000)  // 500.00
	initialStock   = 5
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	env := &testEnv{
		userRepo:     newInMemoryUserRepo(),
		productRepo:  newInMemoryProductRepo(),
		walletRepo:   newInMemoryWalletRepo(),
		txRepo:       newInMemoryTransactionRepo(),
		orderRepo:    newInMemoryOrderRepo(),
		deliveryRepo: newInMemoryDeliveryRepo(),
	}
	transactor := newInMemoryTransactor()

	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	locations := redisStorage.NewDriverLocationStore(client, 2*time.Minute)

	now := time.Now().UTC()
	env.customer = domain.User{ID: uuid.New(), Username: "alice", Role: domain.RoleCustomer, Active: true, Address: "1 Customer St", Phone: "+33600000001", CreatedAt: now}
	env.merchant = domain.User{ID: uuid.New(), Username: "bob-store", Role: domain.RoleMerchant, Active: true, Address: "2 Merchant Ave", StoreName: "Bob's", CreatedAt: now}
	env.driver = domain.User{ID: uuid.New(), Username: "carol", Role: domain.RoleDriver, Active: true, Address: "3 Driver Rd", CreatedAt: now}
	platform := domain.User{ID: uuid.New(), Username: "platform", Role: domain.RoleMerchant, Active: true, CreatedAt: now}
	for _, u := range []domain.User{env.customer, env.merchant, env.driver, platform} {
		require.NoError(t, env.userRepo.Create(ctx, &u))
	}

	env.customerWallet = domain.Wallet{ID: uuid.New(), UserID: env.customer.ID, Balance: initialBalance, CreatedAt: now, UpdatedAt: now}
	env.merchantWallet = domain.Wallet{ID: uuid.New(), UserID: env.merchant.ID, Balance: 0, CreatedAt: now, UpdatedAt: now}
	env.platformWallet = domain.Wallet{ID: uuid.New(), UserID: platform.ID, Balance: 0, CreatedAt: now, UpdatedAt: now}
	for _, w := range []domain.Wallet{env.customerWallet, env.merchantWallet, env.platformWallet} {
		require.NoError(t, env.walletRepo.Create(ctx, &w))
	}

	env.product = domain.Product{
		ID: uuid.New(), MerchantID: env.merchant.ID, Name: "Widget",
		Price: productPrice, Quantity: initialStock, LowStockThreshold: 1,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, env.productRepo.Create(ctx, &env.product))

	log := zerolog.Nop()
	engine := service.NewCommissionEngine(&domain.Commission{Name: "standard", RateBps: 1000, Active: true})
	geocoder := service.NewOfflineGeocoder(48.8566, 2.3522, 50000, 10000)

	env.inventory = service.NewInventoryService(env.productRepo, transactor, log)
	env.wallets = service.NewWalletService(
		env.walletRepo, env.txRepo, env.orderRepo, env.productRepo,
		engine, transactor, env.platformWallet.ID, log,
	)
	env.orders = service.NewOrderService(
		env.orderRepo, env.productRepo, env.walletRepo,
		env.inventory, env.wallets, log,
	)
	env.deliveries = service.NewDeliveryService(
		env.deliveryRepo, env.orderRepo, env.userRepo, env.productRepo,
		env.orders, env.wallets, geocoder, locations, transactor, log,
	)
	env.coordinator = service.NewSagaCoordinator(env.orders, env.deliveries, transactor, log)

	return env
}

func (env *testEnv) balance(t *testing.T, walletID uuid.UUID) int64 {
	t.Helper()
	balance, err := env.wallets.GetBalance(context.Background(), walletID)
	require.NoError(t, err)
	return balance
}

func (env *testEnv) stock(t *testing.T) int {
	t.Helper()
	p, err := env.productRepo.GetByID(context.Background(), env.product.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

// placeAndFulfill runs the saga up to a PAID order with its delivery.
func (env *testEnv) placeAndFulfill(t *testing.T, quantity int) (*domain.Order, *domain.Delivery) {
	t.Helper()
	ctx := context.Background()

	order, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
		CustomerID: env.customer.ID,
		Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: quantity}},
	})
	require.NoError(t, err)

	order, err = env.coordinator.FulfillOrder(ctx, order.ID)
	require.NoError(t, err)

	delivery, err := env.deliveries.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	return order, delivery
}

// deliverToCustomer pushes a PAID order through handoff completion.
func (env *testEnv) deliverToCustomer(t *testing.T, order *domain.Order, delivery *domain.Delivery) *domain.Delivery {
	t.Helper()
	ctx := context.Background()

	_, err := env.coordinator.ShipOrder(ctx, order.ID, "packed")
	require.NoError(t, err)

	_, err = env.deliveries.AssignDriver(ctx, delivery.ID, &env.driver.ID)
	require.NoError(t, err)

	_, err = env.deliveries.PickupPackage(ctx, delivery.ID, "on the way")
	require.NoError(t, err)

	result, err := env.coordinator.MarkDelivered(ctx, delivery.ID, delivery.DeliveryCode)
	require.NoError(t, err)
	return result
}

func TestSaga_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, initialStock-1, env.stock(t))
	assert.Equal(t, initialBalance-productPrice, env.balance(t, env.customerWallet.ID))

	result := env.deliverToCustomer(t, order, delivery)
	assert.Equal(t, domain.DeliveryStatusDelivered, result.Status)

	final, err := env.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, final.Status)

	// 500.00 revenue at 10%: merchant gets 450.00, platform 50.00.
	assert.Equal(t, int64(50000), env.balance(t, env.customerWallet.ID))
	assert.Equal(t, int64(45000), env.balance(t, env.merchantWallet.ID))
	assert.Equal(t, int64(5000), env.balance(t, env.platformWallet.ID))
}

// Every wallet balance must equal the sum of its COMPLETED ledger
// entries after a full saga run.
func TestSaga_LedgerMatchesBalances(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 2)
	env.deliverToCustomer(t, order, delivery)

	for _, walletID := range []uuid.UUID{env.customerWallet.ID, env.merchantWallet.ID, env.platformWallet.ID} {
		records, err := env.wallets.ListTransactions(ctx, walletID)
		require.NoError(t, err)

		var sum int64
		for _, record := range records {
			if record.CountsTowardBalance() {
				sum += record.Amount
			}
		}
		// Customer starts with seeded funds not present in the ledger.
		if walletID == env.customerWallet.ID {
			sum += initialBalance
		}
		assert.Equal(t, env.balance(t, walletID), sum, "wallet %s", walletID)
	}
}

func TestSaga_InsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
		CustomerID: env.customer.ID,
		Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: initialStock + 5}},
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	// Stock and balance untouched.
	assert.Equal(t, initialStock, env.stock(t))
	assert.Equal(t, initialBalance, env.balance(t, env.customerWallet.ID))
}

// A multi-item placement is all-or-nothing: when a later line cannot be
// reserved, reservations already taken for earlier lines are rolled
// back with the transaction.
func TestSaga_PlacementFailureRestoresEarlierReservations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	now := time.Now().UTC()
	soldOut := domain.Product{
		ID: uuid.New(), MerchantID: env.merchant.ID, Name: "Gadget",
		Price: 30000, Quantity: 0, LowStockThreshold: 1,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, env.productRepo.Create(ctx, &soldOut))

	_, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
		CustomerID: env.customer.ID,
		Items: []ports.OrderLine{
			{ProductID: env.product.ID, Quantity: 1},
			{ProductID: soldOut.ID, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientStock), "unexpected error: %v", err)

	// The first line's reservation must not survive the rollback.
	assert.Equal(t, initialStock, env.stock(t))
}

func TestSaga_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 3 x 500.00 = 1500.00 against a 1000.00 balance.
	order, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
		CustomerID: env.customer.ID,
		Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	_, err = env.coordinator.FulfillOrder(ctx, order.ID)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInsufficientFunds, appErr.Code)

	// The order stays PENDING, nothing was charged and no delivery
	// record exists.
	result, err := env.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, result.Status)
	assert.Equal(t, initialBalance, env.balance(t, env.customerWallet.ID))

	delivery, err := env.deliveryRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, delivery)
}

func TestSaga_CancelPaidOrderRefunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, _ := env.placeAndFulfill(t, 1)
	assert.Equal(t, initialBalance-productPrice, env.balance(t, env.customerWallet.ID))

	cancelled, err := env.coordinator.CancelOrder(ctx, order.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	// Stock restored, full total refunded.
	assert.Equal(t, initialStock, env.stock(t))
	assert.Equal(t, initialBalance, env.balance(t, env.customerWallet.ID))

	delivery, err := env.deliveryRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, delivery)
	assert.Equal(t, domain.DeliveryStatusCancelled, delivery.Status)
}

func TestSaga_CancelPendingOrderNoRefundRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
		CustomerID: env.customer.ID,
		Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, initialStock-1, env.stock(t))

	_, err = env.coordinator.CancelOrder(ctx, order.ID, "typo")
	require.NoError(t, err)
	assert.Equal(t, initialStock, env.stock(t))

	// Nothing was charged, so nothing may be refunded.
	records, err := env.txRepo.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaga_WrongDeliveryCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)
	_, err := env.coordinator.ShipOrder(ctx, order.ID, "")
	require.NoError(t, err)
	_, err = env.deliveries.AssignDriver(ctx, delivery.ID, &env.driver.ID)
	require.NoError(t, err)
	_, err = env.deliveries.PickupPackage(ctx, delivery.ID, "")
	require.NoError(t, err)

	_, err = env.coordinator.MarkDelivered(ctx, delivery.ID, "WRONG")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// No state change, no payout.
	current, err := env.deliveryRepo.GetByID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusInTransit, current.Status)
	assert.Equal(t, int64(0), env.balance(t, env.merchantWallet.ID))

	// The correct code still completes the handoff afterwards.
	result, err := env.coordinator.MarkDelivered(ctx, delivery.ID, delivery.DeliveryCode)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusDelivered, result.Status)
	assert.Equal(t, int64(45000), env.balance(t, env.merchantWallet.ID))
}

func TestSaga_SettlementRunsExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)
	env.deliverToCustomer(t, order, delivery)
	assert.Equal(t, int64(45000), env.balance(t, env.merchantWallet.ID))

	// A repeat completion is rejected: the delivery is terminal.
	_, err := env.coordinator.MarkDelivered(ctx, delivery.ID, delivery.DeliveryCode)
	require.Error(t, err)
	assert.Equal(t, int64(45000), env.balance(t, env.merchantWallet.ID))
	assert.Equal(t, int64(5000), env.balance(t, env.platformWallet.ID))
}

func TestSaga_DeliveryCreationIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)

	tx := newMemTx()
	again, err := env.deliveries.CreateTx(ctx, tx, order)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	assert.Equal(t, delivery.ID, again.ID)
	assert.Equal(t, delivery.DeliveryCode, again.DeliveryCode)
}

func TestSaga_DriverAutoAssignmentPicksNearest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)
	_, err := env.coordinator.ShipOrder(ctx, order.ID, "")
	require.NoError(t, err)

	assigned, err := env.deliveries.AssignDriver(ctx, delivery.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, assigned.DriverID)
	assert.Equal(t, env.driver.ID, *assigned.DriverID)
}
