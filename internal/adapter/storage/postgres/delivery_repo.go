package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DeliveryRepo implements ports.DeliveryRepository.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliveryColumns = `id, order_id, status, driver_id, delivery_code, shipping_address, customer_phone,
		pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, distance_km, fee,
		current_lat, current_lng, location_at, merchant_notes, driver_notes,
		assigned_at, ready_at, picked_up_at, delivered_at, created_at, updated_at`

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	d := &domain.Delivery{}
	err := row.Scan(
		&d.ID, &d.OrderID, &d.Status, &d.DriverID, &d.DeliveryCode,
		&d.ShippingAddress, &d.CustomerPhone,
		&d.PickupLat, &d.PickupLng, &d.DropoffLat, &d.DropoffLng,
		&d.DistanceKm, &d.Fee,
		&d.CurrentLat, &d.CurrentLng, &d.LocationAt,
		&d.MerchantNotes, &d.DriverNotes,
		&d.AssignedAt, &d.ReadyAt, &d.PickedUpAt, &d.DeliveredAt,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create inserts a delivery within a transaction.
func (r *DeliveryRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.Delivery) error {
	query := `INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.OrderID, d.Status, d.DriverID, d.DeliveryCode,
		d.ShippingAddress, d.CustomerPhone,
		d.PickupLat, d.PickupLng, d.DropoffLat, d.DropoffLng,
		d.DistanceKm, d.Fee,
		d.CurrentLat, d.CurrentLng, d.LocationAt,
		d.MerchantNotes, d.DriverNotes,
		d.AssignedAt, d.ReadyAt, d.PickedUpAt, d.DeliveredAt,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID fetches a delivery by its UUID (without locking).
func (r *DeliveryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	d, err := scanDelivery(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by id: %w", err)
	}
	return d, nil
}

// GetByOrderID fetches the delivery attached to an order.
func (r *DeliveryRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE order_id = $1`

	d, err := scanDelivery(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by order id: %w", err)
	}
	return d, nil
}

// GetByIDForUpdate fetches a delivery by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *DeliveryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1 FOR UPDATE`

	d, err := scanDelivery(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery for update: %w", err)
	}
	return d, nil
}

// Update rewrites the delivery row within a transaction.
func (r *DeliveryRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.Delivery) error {
	query := `UPDATE deliveries SET
		status = $1, driver_id = $2,
		current_lat = $3, current_lng = $4, location_at = $5,
		merchant_notes = $6, driver_notes = $7,
		assigned_at = $8, ready_at = $9, picked_up_at = $10, delivered_at = $11,
		updated_at = $12
		WHERE id = $13`

	tag, err := tx.Exec(ctx, query,
		d.Status, d.DriverID,
		d.CurrentLat, d.CurrentLng, d.LocationAt,
		d.MerchantNotes, d.DriverNotes,
		d.AssignedAt, d.ReadyAt, d.PickedUpAt, d.DeliveredAt,
		d.UpdatedAt,
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery %s not found", d.ID)
	}
	return nil
}

// ListUnassignedReady fetches READY_FOR_PICKUP deliveries without a
// driver, oldest first, for the background assignment job.
func (r *DeliveryRepo) ListUnassignedReady(ctx context.Context, limit int) ([]domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries
		WHERE status = $1 AND driver_id IS NULL ORDER BY ready_at LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.DeliveryStatusReadyForPickup, limit)
	if err != nil {
		return nil, fmt.Errorf("list unassigned deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		d := domain.Delivery{}
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.Status, &d.DriverID, &d.DeliveryCode,
			&d.ShippingAddress, &d.CustomerPhone,
			&d.PickupLat, &d.PickupLng, &d.DropoffLat, &d.DropoffLng,
			&d.DistanceKm, &d.Fee,
			&d.CurrentLat, &d.CurrentLng, &d.LocationAt,
			&d.MerchantNotes, &d.DriverNotes,
			&d.AssignedAt, &d.ReadyAt, &d.PickedUpAt, &d.DeliveredAt,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deliveries: %w", err)
	}
	return deliveries, nil
}
