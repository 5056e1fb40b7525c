package service

import (
	"marketplace-core/internal/core/domain"
)

// CommissionEngineImpl implements ports.CommissionEngine with a rate
// resolved from configuration at startup.
type CommissionEngineImpl struct {
	rate *domain.Commission
}

// NewCommissionEngine creates the engine. A nil rate means no active
// commission: merchants keep full revenue.
func NewCommissionEngine(rate *domain.Commission) *CommissionEngineImpl {
	return &CommissionEngineImpl{rate: rate}
}

// ActiveRateBps returns the active commission rate in basis points,
// or 0 when none is configured.
func (e *CommissionEngineImpl) ActiveRateBps() int64 {
	if e.rate == nil || !e.rate.Active {
		return 0
	}
	return e.rate.RateBps
}

// Split divides amount into merchant share and platform commission.
// The commission is rounded half-up at minor-unit precision, so
// share + commission == amount exactly.
func (e *CommissionEngineImpl) Split(amount int64) (int64, int64) {
	rateBps := e.ActiveRateBps()
	if amount <= 0 || rateBps == 0 {
		return amount, 0
	}
	commission := (amount*rateBps + 5000) / 10000
	return amount - commission, commission
}
