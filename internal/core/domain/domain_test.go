package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to paid", OrderStatusPending, OrderStatusPaid, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"paid to shipped", OrderStatusPaid, OrderStatusShipped, true},
		{"paid to cancelled", OrderStatusPaid, OrderStatusCancelled, true},
		{"paid to delivered", OrderStatusPaid, OrderStatusDelivered, false},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped to cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrder_IsCancellable(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderStatusPending, true},
		{OrderStatusPaid, true},
		{OrderStatusShipped, false},
		{OrderStatusDelivered, false},
		{OrderStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			o := &Order{Status: tt.status}
			assert.Equal(t, tt.want, o.IsCancellable())
		})
	}
}

func TestDeliveryStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status DeliveryStatus
		want   bool
	}{
		{DeliveryStatusPending, false},
		{DeliveryStatusReadyForPickup, false},
		{DeliveryStatusPickedUp, false},
		{DeliveryStatusInTransit, false},
		{DeliveryStatusDelivered, true},
		{DeliveryStatusCancelled, true},
		{DeliveryStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestDeliveryStatus_InTransitPhase(t *testing.T) {
	assert.True(t, DeliveryStatusPickedUp.InTransitPhase())
	assert.True(t, DeliveryStatusInTransit.InTransitPhase())
	assert.False(t, DeliveryStatusPending.InTransitPhase())
	assert.False(t, DeliveryStatusReadyForPickup.InTransitPhase())
	assert.False(t, DeliveryStatusDelivered.InTransitPhase())
}

func TestDelivery_CanAssignDriver(t *testing.T) {
	assert.True(t, (&Delivery{Status: DeliveryStatusPending}).CanAssignDriver())
	assert.True(t, (&Delivery{Status: DeliveryStatusReadyForPickup}).CanAssignDriver())
	assert.True(t, (&Delivery{Status: DeliveryStatusInTransit}).CanAssignDriver())
	assert.False(t, (&Delivery{Status: DeliveryStatusDelivered}).CanAssignDriver())
	assert.False(t, (&Delivery{Status: DeliveryStatusCancelled}).CanAssignDriver())
}

func TestProduct_EffectivePrice(t *testing.T) {
	discount := int64(40000)
	p := &Product{Price: 50000}
	assert.Equal(t, int64(50000), p.EffectivePrice())

	p.DiscountPrice = &discount
	assert.Equal(t, int64(40000), p.EffectivePrice())
}

func TestProduct_IsLowStock(t *testing.T) {
	p := &Product{Quantity: 5, LowStockThreshold: 5}
	assert.True(t, p.IsLowStock())
	p.Quantity = 6
	assert.False(t, p.IsLowStock())
}

func TestTransaction_Helpers(t *testing.T) {
	debit := &Transaction{Amount: -100, Status: TransactionStatusCompleted}
	assert.True(t, debit.IsDebit())
	assert.True(t, debit.CountsTowardBalance())

	pending := &Transaction{Amount: 100, Status: TransactionStatusPending}
	assert.False(t, pending.IsDebit())
	assert.False(t, pending.CountsTowardBalance())
}

func TestUser_IsAvailableDriver(t *testing.T) {
	assert.True(t, (&User{Role: RoleDriver, Active: true}).IsAvailableDriver())
	assert.False(t, (&User{Role: RoleDriver, Active: false}).IsAvailableDriver())
	assert.False(t, (&User{Role: RoleCustomer, Active: true}).IsAvailableDriver())
}
