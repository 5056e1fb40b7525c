package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item with its stock level. Quantity is never
// mutated directly; every change goes through the inventory ledger.
type Product struct {
	ID                uuid.UUID `json:"id"`
	MerchantID        uuid.UUID `json:"merchant_id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`          // minor units
	DiscountPrice     *int64    `json:"discount_price"` // minor units, optional
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EffectivePrice returns the discounted price when one is set.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// IsLowStock reports whether the stock level sits at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
