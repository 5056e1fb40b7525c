package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Only COMPLETED transactions contribute to wallet balances.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// TransactionLabel classifies what business event produced the record.
type TransactionLabel string

const (
	LabelOrderPayment     TransactionLabel = "ORDER_PAYMENT"
	LabelMerchantPayout   TransactionLabel = "MERCHANT_PAYOUT"
	LabelCommission       TransactionLabel = "COMMISSION"
	LabelWalletDeposit    TransactionLabel = "WALLET_DEPOSIT"
	LabelManualAdjustment TransactionLabel = "MANUAL_ADJUSTMENT"
)

// Transaction is an immutable ledger entry. Amount is signed: negative
// for debits, positive for credits. Records are created once and never
// updated or deleted.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	Reference   string            `json:"reference"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	Amount      int64             `json:"amount"` // signed, minor units
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Label       TransactionLabel  `json:"label"`
	OrderID     *uuid.UUID        `json:"order_id,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// IsDebit reports whether the entry removes funds from its wallet.
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// CountsTowardBalance reports whether the entry contributes to the
// wallet balance invariant.
func (t *Transaction) CountsTowardBalance() bool {
	return t.Status == TransactionStatusCompleted
}
