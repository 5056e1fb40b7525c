package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. All balance changes
// happen under wallet row locks acquired in ascending wallet-ID order;
// that fixed global ordering is the deadlock-avoidance mechanism for
// concurrent multi-wallet operations.
type WalletServiceImpl struct {
	walletRepo       ports.WalletRepository
	txRepo           ports.TransactionRepository
	orderRepo        ports.OrderRepository
	productRepo      ports.ProductRepository
	engine           ports.CommissionEngine
	transactor       ports.DBTransactor
	platformWalletID uuid.UUID
	log              zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. platformWalletID is
// the wallet that receives the commission side of settlements.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	orderRepo ports.OrderRepository,
	productRepo ports.ProductRepository,
	engine ports.CommissionEngine,
	transactor ports.DBTransactor,
	platformWalletID uuid.UUID,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:       walletRepo,
		txRepo:           txRepo,
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		engine:           engine,
		transactor:       transactor,
		platformWalletID: platformWalletID,
		log:              log,
	}
}

// lockWallets acquires row locks on the given wallets in ascending ID
// order and returns them keyed by ID. Duplicate IDs are locked once.
func (s *WalletServiceImpl) lockWallets(ctx context.Context, tx pgx.Tx, ids ...uuid.UUID) (map[uuid.UUID]*domain.Wallet, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	sort.Slice(unique, func(i, j int) bool {
		return bytes.Compare(unique[i][:], unique[j][:]) < 0
	})

	wallets := make(map[uuid.UUID]*domain.Wallet, len(unique))
	for _, id := range unique {
		w, err := s.walletRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock wallet %s: %w", id, err))
		}
		if w == nil {
			return nil, apperror.ErrNotFound("wallet")
		}
		wallets[id] = w
	}
	return wallets, nil
}

// newReference builds a unique ledger reference.
func newReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Transfer moves funds in its own transaction. See TransferTx.
func (s *WalletServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) ([]domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	records, err := s.TransferTx(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("dest_wallet", req.DestWalletID.String()).
		Int64("amount", req.Amount).
		Str("label", string(req.Label)).
		Msg("transfer completed")
	return records, nil
}

// TransferTx moves Amount from the optional source wallet to the
// destination wallet inside the caller's transaction. One COMPLETED
// record per side is written: negative for the debit, positive for the
// credit, both carrying the same order reference and label. A nil
// source models funds entering the system; only the credit record is
// produced.
func (s *WalletServiceImpl) TransferTx(ctx context.Context, tx pgx.Tx, req ports.TransferRequest) ([]domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.SourceWalletID != nil && *req.SourceWalletID == req.DestWalletID {
		return nil, apperror.Validation("source and destination wallets must differ")
	}

	ids := []uuid.UUID{req.DestWalletID}
	if req.SourceWalletID != nil {
		ids = append(ids, *req.SourceWalletID)
	}
	wallets, err := s.lockWallets(ctx, tx, ids...)
	if err != nil {
		return nil, err
	}

	dest := wallets[req.DestWalletID]
	var source *domain.Wallet
	if req.SourceWalletID != nil {
		source = wallets[*req.SourceWalletID]
		if source.Balance < req.Amount {
			return nil, apperror.ErrInsufficientFunds()
		}
	}

	now := time.Now().UTC()
	ref := newReference("TRF")
	records := make([]domain.Transaction, 0, 2)

	if source != nil {
		if err := s.walletRepo.UpdateBalance(ctx, tx, source.ID, source.Balance-req.Amount); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("debit wallet: %w", err))
		}
		debit := domain.Transaction{
			ID:          uuid.New(),
			Reference:   ref + "-DR",
			WalletID:    source.ID,
			Amount:      -req.Amount,
			Type:        req.Type,
			Status:      domain.TransactionStatusCompleted,
			Label:       req.Label,
			OrderID:     req.OrderID,
			Description: req.Description,
			CreatedAt:   now,
		}
		if err := s.txRepo.Create(ctx, tx, &debit); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create debit record: %w", err))
		}
		records = append(records, debit)
	}

	if err := s.walletRepo.UpdateBalance(ctx, tx, dest.ID, dest.Balance+req.Amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
	}
	credit := domain.Transaction{
		ID:          uuid.New(),
		Reference:   ref + "-CR",
		WalletID:    dest.ID,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      domain.TransactionStatusCompleted,
		Label:       req.Label,
		OrderID:     req.OrderID,
		Description: req.Description,
		CreatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, tx, &credit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create credit record: %w", err))
	}
	records = append(records, credit)

	return records, nil
}

// DepositFunds credits a wallet from outside the system.
func (s *WalletServiceImpl) DepositFunds(ctx context.Context, walletID uuid.UUID, amount int64, description string) (*domain.Transaction, error) {
	records, err := s.Transfer(ctx, ports.TransferRequest{
		DestWalletID: walletID,
		Amount:       amount,
		Type:         domain.TransactionTypeDeposit,
		Label:        domain.LabelWalletDeposit,
		Description:  description,
	})
	if err != nil {
		return nil, err
	}
	return &records[len(records)-1], nil
}

// ProcessOrderPaymentTx debits the customer wallet by the order total.
// There is no destination record: the funds are held by the platform
// until settlement.
func (s *WalletServiceImpl) ProcessOrderPaymentTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	wallet, err := s.walletRepo.GetByUserID(ctx, order.CustomerID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find customer wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("customer wallet")
	}

	locked, err := s.lockWallets(ctx, tx, wallet.ID)
	if err != nil {
		return err
	}
	wallet = locked[wallet.ID]

	if wallet.Balance < order.TotalPrice {
		return apperror.ErrInsufficientFunds()
	}

	if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.ID, wallet.Balance-order.TotalPrice); err != nil {
		return apperror.InternalError(fmt.Errorf("debit customer wallet: %w", err))
	}

	payment := domain.Transaction{
		ID:          uuid.New(),
		Reference:   newReference("PAY"),
		WalletID:    wallet.ID,
		Amount:      -order.TotalPrice,
		Type:        domain.TransactionTypePayment,
		Status:      domain.TransactionStatusCompleted,
		Label:       domain.LabelOrderPayment,
		OrderID:     &order.ID,
		Description: fmt.Sprintf("Payment for order %s", order.ID),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, tx, &payment); err != nil {
		return apperror.InternalError(fmt.Errorf("create payment record: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", order.TotalPrice).
		Msg("order payment debited")
	return nil
}

// SettleMerchantPayoutTx splits each merchant's revenue for the order
// into a merchant payout and a platform commission. The per-merchant
// payout is credited to the merchant wallet; the commission is credited
// to the platform wallet with a record naming the merchant. Exactly-once
// execution is guaranteed by the delivery state machine: only the
// IN_TRANSIT -> DELIVERED transition triggers settlement.
func (s *WalletServiceImpl) SettleMerchantPayoutTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	items := order.Items
	if len(items) == 0 {
		loaded, err := s.orderRepo.GetItems(ctx, order.ID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load order items: %w", err))
		}
		items = loaded
	}
	if len(items) == 0 {
		return apperror.Validationf("order %s has no items to settle", order.ID)
	}

	// Group revenue by merchant.
	revenue := make(map[uuid.UUID]int64)
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load product %s: %w", item.ProductID, err))
		}
		if product == nil {
			return apperror.ErrNotFound("product")
		}
		revenue[product.MerchantID] += item.Price * int64(item.Quantity)
	}

	// Resolve merchant wallets, then lock every involved wallet in
	// ascending order in one pass.
	merchantIDs := make([]uuid.UUID, 0, len(revenue))
	for merchantID := range revenue {
		merchantIDs = append(merchantIDs, merchantID)
	}
	sort.Slice(merchantIDs, func(i, j int) bool {
		return bytes.Compare(merchantIDs[i][:], merchantIDs[j][:]) < 0
	})

	walletByMerchant := make(map[uuid.UUID]uuid.UUID, len(merchantIDs))
	lockIDs := []uuid.UUID{s.platformWalletID}
	for _, merchantID := range merchantIDs {
		wallet, err := s.walletRepo.GetByUserID(ctx, merchantID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("find merchant wallet: %w", err))
		}
		if wallet == nil {
			return apperror.ErrNotFound("merchant wallet")
		}
		walletByMerchant[merchantID] = wallet.ID
		lockIDs = append(lockIDs, wallet.ID)
	}

	wallets, err := s.lockWallets(ctx, tx, lockIDs...)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	platform := wallets[s.platformWalletID]

	for _, merchantID := range merchantIDs {
		merchantWallet := wallets[walletByMerchant[merchantID]]
		share, commission := s.engine.Split(revenue[merchantID])

		if err := s.walletRepo.UpdateBalance(ctx, tx, merchantWallet.ID, merchantWallet.Balance+share); err != nil {
			return apperror.InternalError(fmt.Errorf("credit merchant wallet: %w", err))
		}
		payout := domain.Transaction{
			ID:          uuid.New(),
			Reference:   newReference("PYT"),
			WalletID:    merchantWallet.ID,
			Amount:      share,
			Type:        domain.TransactionTypeTransfer,
			Status:      domain.TransactionStatusCompleted,
			Label:       domain.LabelMerchantPayout,
			OrderID:     &order.ID,
			Description: fmt.Sprintf("Payout for order %s", order.ID),
			CreatedAt:   now,
		}
		if err := s.txRepo.Create(ctx, tx, &payout); err != nil {
			return apperror.InternalError(fmt.Errorf("create payout record: %w", err))
		}

		if commission > 0 {
			platform.Balance += commission
			if err := s.walletRepo.UpdateBalance(ctx, tx, platform.ID, platform.Balance); err != nil {
				return apperror.InternalError(fmt.Errorf("credit platform wallet: %w", err))
			}
			commissionTx := domain.Transaction{
				ID:          uuid.New(),
				Reference:   newReference("COM"),
				WalletID:    platform.ID,
				Amount:      commission,
				Type:        domain.TransactionTypeTransfer,
				Status:      domain.TransactionStatusCompleted,
				Label:       domain.LabelCommission,
				OrderID:     &order.ID,
				Description: fmt.Sprintf("Commission on order %s, merchant %s", order.ID, merchantID),
				CreatedAt:   now,
			}
			if err := s.txRepo.Create(ctx, tx, &commissionTx); err != nil {
				return apperror.InternalError(fmt.Errorf("create commission record: %w", err))
			}
		}

		s.log.Info().
			Str("order_id", order.ID.String()).
			Str("merchant_id", merchantID.String()).
			Int64("payout", share).
			Int64("commission", commission).
			Msg("merchant payout settled")
	}

	return nil
}

// GetBalance returns the wallet balance.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID uuid.UUID) (int64, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return 0, apperror.ErrNotFound("wallet")
	}
	return wallet.Balance, nil
}

// ListTransactions returns the wallet's ledger entries, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	records, err := s.txRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return records, nil
}
