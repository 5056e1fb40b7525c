package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"marketplace-core/internal/core/domain"
	"marketplace-core/internal/core/ports"
	"marketplace-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// deliveryCodeBytes sets the OTP length: 4 random bytes hex-encoded
// give the 8-character uppercase code handed to the customer.
const deliveryCodeBytes = 4

// DeliveryServiceImpl implements ports.DeliveryService.
type DeliveryServiceImpl struct {
	deliveryRepo ports.DeliveryRepository
	orderRepo    ports.OrderRepository
	userRepo     ports.UserRepository
	productRepo  ports.ProductRepository
	orders       ports.OrderService
	wallets      ports.WalletService
	geocoder     ports.Geocoder
	locations    ports.DriverLocationStore
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewDeliveryService creates a new DeliveryServiceImpl.
func NewDeliveryService(
	deliveryRepo ports.DeliveryRepository,
	orderRepo ports.OrderRepository,
	userRepo ports.UserRepository,
	productRepo ports.ProductRepository,
	orders ports.OrderService,
	wallets ports.WalletService,
	geocoder ports.Geocoder,
	locations ports.DriverLocationStore,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *DeliveryServiceImpl {
	return &DeliveryServiceImpl{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		orders:       orders,
		wallets:      wallets,
		geocoder:     geocoder,
		locations:    locations,
		transactor:   transactor,
		log:          log,
	}
}

// generateDeliveryCode returns the handoff OTP: fixed-length uppercase
// hex from a cryptographically random source.
func generateDeliveryCode() (string, error) {
	buf := make([]byte, deliveryCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate delivery code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// CreateTx initializes the delivery for an order inside the caller's
// transaction. Idempotent: when the order already has a delivery it is
// returned unchanged, with no second geocoding side effect.
func (s *DeliveryServiceImpl) CreateTx(ctx context.Context, tx pgx.Tx, order *domain.Order) (*domain.Delivery, error) {
	existing, err := s.deliveryRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find delivery: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	customer, err := s.userRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load customer: %w", err))
	}
	if customer == nil {
		return nil, apperror.ErrNotFound("customer")
	}

	items := order.Items
	if len(items) == 0 {
		items, err = s.orderRepo.GetItems(ctx, order.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load order items: %w", err))
		}
	}
	if len(items) == 0 {
		return nil, apperror.Validationf("order %s has no items to deliver", order.ID)
	}

	product, err := s.productRepo.GetByID(ctx, items[0].ProductID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load product: %w", err))
	}
	if product == nil {
		return nil, apperror.ErrNotFound("product")
	}
	merchant, err := s.userRepo.GetByID(ctx, product.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}

	pickupLat, pickupLng, err := s.geocoder.Geocode(ctx, merchant.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("geocode pickup address: %w", err))
	}
	dropoffLat, dropoffLng, err := s.geocoder.Geocode(ctx, customer.Address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("geocode dropoff address: %w", err))
	}

	distance := s.geocoder.DistanceKm(pickupLat, pickupLng, dropoffLat, dropoffLng)
	code, err := generateDeliveryCode()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	now := time.Now().UTC()
	delivery := &domain.Delivery{
		ID:              uuid.New(),
		OrderID:         order.ID,
		Status:          domain.DeliveryStatusPending,
		DeliveryCode:    code,
		ShippingAddress: customer.Address,
		CustomerPhone:   customer.Phone,
		PickupLat:       pickupLat,
		PickupLng:       pickupLng,
		DropoffLat:      dropoffLat,
		DropoffLng:      dropoffLng,
		DistanceKm:      distance,
		Fee:             s.geocoder.DeliveryFee(distance),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.deliveryRepo.Create(ctx, tx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create delivery: %w", err))
	}

	s.log.Info().
		Str("delivery_id", delivery.ID.String()).
		Str("order_id", order.ID.String()).
		Float64("distance_km", distance).
		Int64("fee", delivery.Fee).
		Msg("delivery created")
	return delivery, nil
}

// FindAvailableDrivers ranks active drivers by great-circle distance
// from the pickup point. A fresh live location takes precedence over
// the driver's geocoded home address.
func (s *DeliveryServiceImpl) FindAvailableDrivers(ctx context.Context, pickupLat, pickupLng float64, limit int) ([]ports.DriverCandidate, error) {
	if limit <= 0 {
		return nil, apperror.Validation("driver limit must be positive")
	}

	drivers, err := s.userRepo.ListActiveByRole(ctx, domain.RoleDriver)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list drivers: %w", err))
	}

	candidates := make([]ports.DriverCandidate, 0, len(drivers))
	for _, driver := range drivers {
		var lat, lng float64

		live, err := s.locations.Get(ctx, driver.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("driver_id", driver.ID.String()).Msg("live location lookup failed, using home address")
		}
		if live != nil {
			lat, lng = live.Lat, live.Lng
		} else {
			lat, lng, err = s.geocoder.Geocode(ctx, driver.Address)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("geocode driver address: %w", err))
			}
		}

		candidates = append(candidates, ports.DriverCandidate{
			Driver:     driver,
			DistanceKm: s.geocoder.DistanceKm(pickupLat, pickupLng, lat, lng),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// AssignDriver sets or replaces the delivery's driver. A nil driverID
// auto-selects the nearest available driver.
func (s *DeliveryServiceImpl) AssignDriver(ctx context.Context, deliveryID uuid.UUID, driverID *uuid.UUID) (*domain.Delivery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, dbTx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	if !delivery.CanAssignDriver() {
		return nil, apperror.Validationf("delivery %s can no longer be assigned (status %s)", delivery.ID, delivery.Status)
	}

	var driver *domain.User
	if driverID != nil {
		driver, err = s.userRepo.GetByID(ctx, *driverID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load driver: %w", err))
		}
		if driver == nil {
			return nil, apperror.ErrNotFound("driver")
		}
		if !driver.IsAvailableDriver() {
			return nil, apperror.Validationf("user %s is not an available driver", driver.ID)
		}
	} else {
		candidates, err := s.FindAvailableDrivers(ctx, delivery.PickupLat, delivery.PickupLng, 1)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, apperror.ErrNotFound("available driver")
		}
		driver = &candidates[0].Driver
	}

	now := time.Now().UTC()
	delivery.DriverID = &driver.ID
	delivery.AssignedAt = &now
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, dbTx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("delivery_id", delivery.ID.String()).
		Str("driver_id", driver.ID.String()).
		Msg("driver assigned")
	return delivery, nil
}

// MarkReady transitions PENDING -> READY_FOR_PICKUP in its own
// transaction.
func (s *DeliveryServiceImpl) MarkReady(ctx context.Context, deliveryID uuid.UUID, merchantNotes string) (*domain.Delivery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.MarkReadyTx(ctx, dbTx, deliveryID, merchantNotes)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return delivery, nil
}

// MarkReadyTx is MarkReady inside the caller's transaction.
func (s *DeliveryServiceImpl) MarkReadyTx(ctx context.Context, tx pgx.Tx, deliveryID uuid.UUID, merchantNotes string) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, tx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	if delivery.Status != domain.DeliveryStatusPending {
		return nil, apperror.Validationf("delivery %s is not pending (status %s)", delivery.ID, delivery.Status)
	}

	now := time.Now().UTC()
	delivery.Status = domain.DeliveryStatusReadyForPickup
	delivery.ReadyAt = &now
	delivery.MerchantNotes = merchantNotes
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, tx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}

	s.log.Info().Str("delivery_id", delivery.ID.String()).Msg("delivery ready for pickup")
	return delivery, nil
}

// PickupPackage confirms the courier collected the package. The
// delivery passes through PICKED_UP straight into IN_TRANSIT as one
// atomic step.
func (s *DeliveryServiceImpl) PickupPackage(ctx context.Context, deliveryID uuid.UUID, driverNotes string) (*domain.Delivery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, dbTx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	if delivery.Status != domain.DeliveryStatusReadyForPickup {
		return nil, apperror.Validationf("delivery %s is not ready for pickup (status %s)", delivery.ID, delivery.Status)
	}
	if delivery.DriverID == nil {
		return nil, apperror.Validationf("delivery %s has no assigned driver", delivery.ID)
	}

	now := time.Now().UTC()
	delivery.Status = domain.DeliveryStatusInTransit
	delivery.PickedUpAt = &now
	delivery.DriverNotes = driverNotes
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, dbTx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("delivery_id", delivery.ID.String()).
		Str("driver_id", delivery.DriverID.String()).
		Msg("package picked up, in transit")
	return delivery, nil
}

// UpdateDriverLocation records a live coordinate sample. Permitted only
// while the package is moving. The redis live store is best-effort: a
// failed cache write never fails the update.
func (s *DeliveryServiceImpl) UpdateDriverLocation(ctx context.Context, deliveryID uuid.UUID, lat, lng float64) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, dbTx, deliveryID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return apperror.ErrNotFound("delivery")
	}
	if !delivery.Status.InTransitPhase() {
		return apperror.Validationf("delivery %s is not in transit (status %s)", delivery.ID, delivery.Status)
	}

	now := time.Now().UTC()
	delivery.CurrentLat = &lat
	delivery.CurrentLng = &lng
	delivery.LocationAt = &now
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, dbTx, delivery); err != nil {
		return apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if delivery.DriverID != nil {
		if err := s.locations.Set(ctx, *delivery.DriverID, lat, lng); err != nil {
			s.log.Warn().Err(err).Str("driver_id", delivery.DriverID.String()).Msg("failed to cache live driver location")
		}
	}
	return nil
}

// CompleteDelivery verifies the handoff OTP and finalizes the order.
// A wrong code fails with a validation error and changes nothing. On a
// match the delivery and its order become DELIVERED and the merchant
// payout settles, all in one transaction.
func (s *DeliveryServiceImpl) CompleteDelivery(ctx context.Context, deliveryID uuid.UUID, code string) (*domain.Delivery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the order row before the delivery row. Order cancellation
	// locks in the same sequence, so the two operations serialize
	// instead of deadlocking. The non-locking read only resolves the
	// order ID, which never changes.
	peek, err := s.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find delivery: %w", err))
	}
	if peek == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, peek.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, dbTx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	if delivery.Status != domain.DeliveryStatusInTransit {
		return nil, apperror.Validationf("delivery %s is not in transit (status %s)", delivery.ID, delivery.Status)
	}
	if code != delivery.DeliveryCode {
		return nil, apperror.Validation("incorrect delivery code")
	}

	now := time.Now().UTC()
	delivery.Status = domain.DeliveryStatusDelivered
	delivery.DeliveredAt = &now
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, dbTx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}

	if err := s.orders.MarkDeliveredTx(ctx, dbTx, delivery.OrderID); err != nil {
		return nil, err
	}

	if err := s.wallets.SettleMerchantPayoutTx(ctx, dbTx, order); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("delivery_id", delivery.ID.String()).
		Str("order_id", delivery.OrderID.String()).
		Msg("delivery completed, payout settled")
	return delivery, nil
}

// Cancel cancels the delivery in its own transaction.
func (s *DeliveryServiceImpl) Cancel(ctx context.Context, deliveryID uuid.UUID, reason string) (*domain.Delivery, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	delivery, err := s.CancelTx(ctx, dbTx, deliveryID, reason)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return delivery, nil
}

// CancelTx cancels the delivery inside the caller's transaction.
// Rejected once the delivery is DELIVERED or already CANCELLED.
func (s *DeliveryServiceImpl) CancelTx(ctx context.Context, tx pgx.Tx, deliveryID uuid.UUID, reason string) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByIDForUpdate(ctx, tx, deliveryID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	if delivery.Status == domain.DeliveryStatusDelivered || delivery.Status == domain.DeliveryStatusCancelled {
		return nil, apperror.Validationf("delivery %s can no longer be cancelled (status %s)", delivery.ID, delivery.Status)
	}

	now := time.Now().UTC()
	delivery.Status = domain.DeliveryStatusCancelled
	if delivery.DriverNotes != "" {
		delivery.DriverNotes += " | "
	}
	delivery.DriverNotes += "CANCELLED: " + reason
	delivery.UpdatedAt = now

	if err := s.deliveryRepo.Update(ctx, tx, delivery); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update delivery: %w", err))
	}

	s.log.Info().
		Str("delivery_id", delivery.ID.String()).
		Str("reason", reason).
		Msg("delivery cancelled")
	return delivery, nil
}

// GetByOrderID returns the delivery attached to an order.
func (s *DeliveryServiceImpl) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find delivery: %w", err))
	}
	if delivery == nil {
		return nil, apperror.ErrNotFound("delivery")
	}
	return delivery, nil
}
