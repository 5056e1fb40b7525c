package ports

import (
	"context"
	"time"

	"marketplace-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// Geocoder is the geocoding/distance collaborator. The core treats it as
// a black box: address to coordinates, coordinates to distance, distance
// to fee.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat float64, lng float64, err error)
	DistanceKm(aLat, aLng, bLat, bLng float64) float64
	DeliveryFee(distanceKm float64) int64
}

// DriverLocation is a live coordinate sample for a driver.
type DriverLocation struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DriverLocationStore keeps short-lived live driver coordinates.
// Entries expire; a nil result means no fresh sample exists.
type DriverLocationStore interface {
	Set(ctx context.Context, driverID uuid.UUID, lat, lng float64) error
	Get(ctx context.Context, driverID uuid.UUID) (*DriverLocation, error)
}

// --- Service Ports (Business Logic) ---

// InventoryService is the stock ledger: every quantity change goes
// through it, under a product row lock.
type InventoryService interface {
	// AdjustStock applies delta (negative = reservation, positive =
	// restock) and returns the new quantity. Fails with an insufficient
	// stock error, leaving quantity unchanged, if the result would be
	// negative.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (int, error)
	AdjustStockTx(ctx context.Context, tx pgx.Tx, productID uuid.UUID, delta int) (int, error)
	SetStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

// TransferRequest holds validated input for a wallet transfer.
// A nil SourceWalletID models funds entering the system: only the
// credit-side record is produced.
type TransferRequest struct {
	SourceWalletID *uuid.UUID
	DestWalletID   uuid.UUID
	Amount         int64 // minor units, must be positive
	Type           domain.TransactionType
	Label          domain.TransactionLabel
	OrderID        *uuid.UUID
	Description    string
}

// WalletService is the monetary ledger: deadlock-safe transfers and the
// order payment/settlement operations.
type WalletService interface {
	Transfer(ctx context.Context, req TransferRequest) ([]domain.Transaction, error)
	TransferTx(ctx context.Context, tx pgx.Tx, req TransferRequest) ([]domain.Transaction, error)
	DepositFunds(ctx context.Context, walletID uuid.UUID, amount int64, description string) (*domain.Transaction, error)
	// ProcessOrderPaymentTx debits the customer wallet by the order
	// total; funds are held by the platform until settlement.
	ProcessOrderPaymentTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	// SettleMerchantPayoutTx splits each merchant's revenue into payout
	// and platform commission. Runs once per order, after handoff.
	SettleMerchantPayoutTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	GetBalance(ctx context.Context, walletID uuid.UUID) (int64, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
}

// CommissionEngine resolves the active commission rate and splits
// revenue deterministically.
type CommissionEngine interface {
	// ActiveRateBps returns the active rate in basis points, 0 if none.
	ActiveRateBps() int64
	// Split returns (merchantShare, commission); the two always sum to
	// amount exactly.
	Split(amount int64) (int64, int64)
}

// OrderLine is one requested product/quantity pair at placement.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrderRequest holds validated input for order placement.
type PlaceOrderRequest struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	Items      []OrderLine `json:"items"`
}

// OrderService owns the order state machine and item/price snapshots.
type OrderService interface {
	PlaceTx(ctx context.Context, tx pgx.Tx, req PlaceOrderRequest) (*domain.Order, error)
	FulfillTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Order, error)
	CancelTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, reason string) (*domain.Order, error)
	MarkShippedTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
	MarkDeliveredTx(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

// DriverCandidate is a ranked driver for assignment.
type DriverCandidate struct {
	Driver     domain.User `json:"driver"`
	DistanceKm float64     `json:"distance_km"`
}

// DeliveryService owns the delivery state machine, the OTP handoff and
// driver assignment.
type DeliveryService interface {
	// CreateTx is idempotent: an existing delivery for the order is
	// returned as-is, with no second geocoding side effect.
	CreateTx(ctx context.Context, tx pgx.Tx, order *domain.Order) (*domain.Delivery, error)
	FindAvailableDrivers(ctx context.Context, pickupLat, pickupLng float64, limit int) ([]DriverCandidate, error)
	// AssignDriver auto-selects the nearest available driver when
	// driverID is nil. Reassignment before pickup is allowed.
	AssignDriver(ctx context.Context, deliveryID uuid.UUID, driverID *uuid.UUID) (*domain.Delivery, error)
	MarkReady(ctx context.Context, deliveryID uuid.UUID, merchantNotes string) (*domain.Delivery, error)
	MarkReadyTx(ctx context.Context, tx pgx.Tx, deliveryID uuid.UUID, merchantNotes string) (*domain.Delivery, error)
	PickupPackage(ctx context.Context, deliveryID uuid.UUID, driverNotes string) (*domain.Delivery, error)
	UpdateDriverLocation(ctx context.Context, deliveryID uuid.UUID, lat, lng float64) error
	CompleteDelivery(ctx context.Context, deliveryID uuid.UUID, code string) (*domain.Delivery, error)
	Cancel(ctx context.Context, deliveryID uuid.UUID, reason string) (*domain.Delivery, error)
	CancelTx(ctx context.Context, tx pgx.Tx, deliveryID uuid.UUID, reason string) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error)
}

// SagaCoordinator orchestrates the purchase lifecycle. Each operation is
// one transactional boundary; the first failure rolls the whole step
// back and propagates unchanged.
type SagaCoordinator interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error)
	FulfillOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ShipOrder(ctx context.Context, orderID uuid.UUID, merchantNotes string) (*domain.Order, error)
	MarkDelivered(ctx context.Context, deliveryID uuid.UUID, code string) (*domain.Delivery, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, error)
}
