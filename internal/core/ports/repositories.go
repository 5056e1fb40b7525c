package ports

import (
	"context"

	"marketplace-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// ListActiveByRole returns active users holding the given role,
	// e.g. the pool of available drivers.
	ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// ProductRepository defines persistence operations for products.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Product, error)
	UpdateQuantity(ctx context.Context, tx pgx.Tx, productID uuid.UUID, quantity int) error
}

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance int64) error
}

// TransactionRepository defines persistence for the immutable ledger.
// There are deliberately no update or delete operations.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Transaction, error)
}

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus, cancelReason string) error
}

// DeliveryRepository defines persistence operations for deliveries.
type DeliveryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, delivery *domain.Delivery) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Delivery, error)
	Update(ctx context.Context, tx pgx.Tx, delivery *domain.Delivery) error
	// ListUnassignedReady returns READY_FOR_PICKUP deliveries without a
	// driver, for the background assignment job.
	ListUnassignedReady(ctx context.Context, limit int) ([]domain.Delivery, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
