package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent transfers in opposite directions between the same two
// wallets must not deadlock: both transactions lock the wallet rows in
// ascending ID order.
func TestConcurrency_OppositeTransfersNoDeadlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Give the merchant something to send back.
	_, err := env.wallets.DepositFunds(ctx, env.merchantWallet.ID, initialBalance, "seed")
	require.NoError(t, err)

	const rounds = 50
	const amount = int64(100)

	var wg sync.WaitGroup
	transferLoop := func(from, to domain.Wallet) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := env.wallets.Transfer(ctx, ports.TransferRequest{
				SourceWalletID: &from.ID,
				DestWalletID:   to.ID,
				Amount:         amount,
				Type:           domain.TransactionTypeTransfer,
				Label:          domain.LabelManualAdjustment,
				Description:    "stress transfer",
			})
			assert.NoError(t, err)
		}
	}

	wg.Add(2)
	go transferLoop(env.customerWallet, env.merchantWallet)
	go transferLoop(env.merchantWallet, env.customerWallet)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("transfers deadlocked")
	}

	// Equal traffic both ways nets to zero.
	assert.Equal(t, initialBalance, env.balance(t, env.customerWallet.ID))
	assert.Equal(t, initialBalance, env.balance(t, env.merchantWallet.ID))
}

// Two customers racing for the last unit: the product row lock
// serializes them, exactly one placement succeeds and stock never goes
// negative.
func TestConcurrency_LastItemGoesToOneOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.inventory.SetStock(ctx, env.product.ID, 1))

	const racers = 2
	errs := make([]error, racers)
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
				CustomerID: env.customer.ID,
				Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: 1}},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientStock), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, env.stock(t))
}

// Completing a handoff and cancelling the same order race on the order
// and delivery rows. Both lock the order row before the delivery row,
// so they serialize instead of deadlocking. Reachable when the delivery
// is driven standalone while the order stays PAID.
func TestConcurrency_CancelVsCompleteNoDeadlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	order, delivery := env.placeAndFulfill(t, 1)

	_, err := env.deliveries.MarkReady(ctx, delivery.ID, "")
	require.NoError(t, err)
	_, err = env.deliveries.AssignDriver(ctx, delivery.ID, &env.driver.ID)
	require.NoError(t, err)
	_, err = env.deliveries.PickupPackage(ctx, delivery.ID, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var cancelErr, completeErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, cancelErr = env.coordinator.CancelOrder(ctx, order.ID, "late cancel")
	}()
	go func() {
		defer wg.Done()
		_, completeErr = env.coordinator.MarkDelivered(ctx, delivery.ID, delivery.DeliveryCode)
	}()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("cancel and complete deadlocked")
	}

	// The order never reached SHIPPED, so completion fails its order
	// transition and cancellation wins in every interleaving.
	require.NoError(t, cancelErr)
	require.Error(t, completeErr)

	final, err := env.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, final.Status)

	current, err := env.deliveryRepo.GetByID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusCancelled, current.Status)

	// Full refund, no payout.
	assert.Equal(t, initialBalance, env.balance(t, env.customerWallet.ID))
	assert.Equal(t, int64(0), env.balance(t, env.merchantWallet.ID))
}

// Concurrent fulfillments against one wallet that can only cover some
// of them: the wallet row lock serializes the balance checks, the
// affordable count succeeds and the balance drains to exactly zero.
func TestConcurrency_FulfillmentsSerializeOnWallet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Three orders of 500.00 against a 1000.00 balance: two can pay.
	const orders = 3
	orderIDs := make([]uuid.UUID, 0, orders)
	for i := 0; i < orders; i++ {
		order, err := env.coordinator.PlaceOrder(ctx, ports.PlaceOrderRequest{
			CustomerID: env.customer.ID,
			Items:      []ports.OrderLine{{ProductID: env.product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		orderIDs = append(orderIDs, order.ID)
	}

	errs := make([]error, orders)
	var wg sync.WaitGroup
	wg.Add(orders)
	for i, id := range orderIDs {
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, errs[i] = env.coordinator.FulfillOrder(ctx, id)
		}(i, id)
	}
	wg.Wait()

	paid := 0
	for _, err := range errs {
		if err == nil {
			paid++
		} else {
			assert.True(t, apperror.IsCode(err, apperror.CodeInsufficientFunds), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 2, paid)
	assert.Equal(t, int64(0), env.balance(t, env.customerWallet.ID))
}
