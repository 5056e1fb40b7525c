package integration

import (
	"context"
	"fmt"
	"sync"

	"marketplace-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos emulate the row-locking behavior the services
// rely on: every ForUpdate read takes a per-row mutex that is held
// until the owning transaction commits or rolls back. Lock-ordering
// bugs in the services therefore show up here as real deadlocks.

// lockTable hands out one mutex per row ID.
type lockTable struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *lockTable) get(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.locks[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	l.locks[id] = m
	return m
}

// memTx is a pgx.Tx that tracks acquired row locks and journals every
// write. Rollback undoes the journaled writes in reverse order before
// releasing the locks, so a failed multi-step operation leaves no trace,
// matching real transaction semantics. Re-acquiring a row already held
// by the same transaction is a no-op, matching FOR UPDATE semantics.
type memTx struct {
	mu   sync.Mutex
	held map[*sync.Mutex]bool
	undo []func()
	done bool
}

func newMemTx() *memTx {
	return &memTx{held: make(map[*sync.Mutex]bool)}
}

func (t *memTx) journal(fn func()) {
	t.mu.Lock()
	t.undo = append(t.undo, fn)
	t.mu.Unlock()
}

func (t *memTx) acquire(rowMu *sync.Mutex) {
	t.mu.Lock()
	if t.held[rowMu] {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	rowMu.Lock()

	t.mu.Lock()
	t.held[rowMu] = true
	t.mu.Unlock()
}

func (t *memTx) finish(rollback bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	if rollback {
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
	}
	t.undo = nil
	for rowMu := range t.held {
		rowMu.Unlock()
	}
}

func (t *memTx) Commit(ctx context.Context) error   { t.finish(false); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.finish(true); return nil }

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

func lockRow(tx pgx.Tx, rowMu *sync.Mutex) {
	if m, ok := tx.(*memTx); ok {
		m.acquire(rowMu)
	}
}

func journalUndo(tx pgx.Tx, fn func()) {
	if m, ok := tx.(*memTx); ok {
		m.journal(fn)
	}
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return newMemTx(), nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *inMemoryUserRepo) ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []domain.User
	for _, u := range r.users {
		if u.Role == role && u.Active {
			users = append(users, u)
		}
	}
	return users, nil
}

// --- In-Memory Product Repo ---

type inMemoryProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]domain.Product
	rows     *lockTable
}

func newInMemoryProductRepo() *inMemoryProductRepo {
	return &inMemoryProductRepo{
		products: make(map[uuid.UUID]domain.Product),
		rows:     newLockTable(),
	}
}

func (r *inMemoryProductRepo) Create(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *inMemoryProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *inMemoryProductRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Product, error) {
	lockRow(tx, r.rows.get(id))
	return r.GetByID(ctx, id)
}

func (r *inMemoryProductRepo) UpdateQuantity(ctx context.Context, tx pgx.Tx, productID uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product not found")
	}
	prev := p
	journalUndo(tx, func() {
		r.mu.Lock()
		r.products[productID] = prev
		r.mu.Unlock()
	})
	p.Quantity = quantity
	r.products[productID] = p
	return nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]domain.Wallet
	rows    *lockTable
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{
		wallets: make(map[uuid.UUID]domain.Wallet),
		rows:    newLockTable(),
	}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = *w
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *inMemoryWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID {
			w := w
			return &w, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	lockRow(tx, r.rows.get(id))
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	prev := w
	journalUndo(tx, func() {
		r.mu.Lock()
		r.wallets[walletID] = prev
		r.mu.Unlock()
	})
	w.Balance = balance
	r.wallets[walletID] = w
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	records []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *t)
	id := t.ID
	journalUndo(tx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i := range r.records {
			if r.records[i].ID == id {
				r.records = append(r.records[:i], r.records[i+1:]...)
				break
			}
		}
	})
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.records {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.records {
		if t.WalletID == walletID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *inMemoryTransactionRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.records {
		if t.OrderID != nil && *t.OrderID == orderID {
			result = append(result, t)
		}
	}
	return result, nil
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.Order
	items  map[uuid.UUID][]domain.OrderItem
	rows   *lockTable
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{
		orders: make(map[uuid.UUID]domain.Order),
		items:  make(map[uuid.UUID][]domain.OrderItem),
		rows:   newLockTable(),
	}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *o
	stored.Items = nil
	r.orders[o.ID] = stored
	r.items[o.ID] = append([]domain.OrderItem(nil), o.Items...)
	id := o.ID
	journalUndo(tx, func() {
		r.mu.Lock()
		delete(r.orders, id)
		delete(r.items, id)
		r.mu.Unlock()
	})
	return nil
}

func (r *inMemoryOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *inMemoryOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	lockRow(tx, r.rows.get(id))
	return r.GetByID(ctx, id)
}

func (r *inMemoryOrderRepo) GetItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.OrderItem(nil), r.items[orderID]...), nil
}

func (r *inMemoryOrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus, cancelReason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	prev := o
	journalUndo(tx, func() {
		r.mu.Lock()
		r.orders[id] = prev
		r.mu.Unlock()
	})
	o.Status = status
	o.CancelReason = cancelReason
	r.orders[id] = o
	return nil
}

// --- In-Memory Delivery Repo ---

type inMemoryDeliveryRepo struct {
	mu         sync.RWMutex
	deliveries map[uuid.UUID]domain.Delivery
	rows       *lockTable
}

func newInMemoryDeliveryRepo() *inMemoryDeliveryRepo {
	return &inMemoryDeliveryRepo{
		deliveries: make(map[uuid.UUID]domain.Delivery),
		rows:       newLockTable(),
	}
}

func (r *inMemoryDeliveryRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID] = *d
	id := d.ID
	journalUndo(tx, func() {
		r.mu.Lock()
		delete(r.deliveries, id)
		r.mu.Unlock()
	})
	return nil
}

func (r *inMemoryDeliveryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deliveries[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *inMemoryDeliveryRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.deliveries {
		if d.OrderID == orderID {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (r *inMemoryDeliveryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Delivery, error) {
	lockRow(tx, r.rows.get(id))
	return r.GetByID(ctx, id)
}

func (r *inMemoryDeliveryRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.deliveries[d.ID]
	if !ok {
		return fmt.Errorf("delivery not found")
	}
	journalUndo(tx, func() {
		r.mu.Lock()
		r.deliveries[d.ID] = prev
		r.mu.Unlock()
	})
	r.deliveries[d.ID] = *d
	return nil
}

func (r *inMemoryDeliveryRepo) ListUnassignedReady(ctx context.Context, limit int) ([]domain.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Delivery
	for _, d := range r.deliveries {
		if d.Status == domain.DeliveryStatusReadyForPickup && d.DriverID == nil {
			result = append(result, d)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}
