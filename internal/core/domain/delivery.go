package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "PENDING"
	DeliveryStatusReadyForPickup DeliveryStatus = "READY_FOR_PICKUP"
	DeliveryStatusPickedUp       DeliveryStatus = "PICKED_UP"
	DeliveryStatusInTransit      DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusDelivered      DeliveryStatus = "DELIVERED"
	DeliveryStatusCancelled      DeliveryStatus = "CANCELLED"
	DeliveryStatusFailed         DeliveryStatus = "FAILED"
)

// IsTerminal reports whether the delivery reached a final state.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusCancelled || s == DeliveryStatusFailed
}

// InTransitPhase reports whether the driver is currently moving the
// package; live location updates are only accepted in this phase.
func (s DeliveryStatus) InTransitPhase() bool {
	return s == DeliveryStatusPickedUp || s == DeliveryStatusInTransit
}

// Delivery is the one-to-one shipment record of an order. DeliveryCode
// is the handoff OTP: a shared secret generated at creation and required
// to confirm delivery to the customer.
type Delivery struct {
	ID              uuid.UUID      `json:"id"`
	OrderID         uuid.UUID      `json:"order_id"`
	Status          DeliveryStatus `json:"status"`
	DriverID        *uuid.UUID     `json:"driver_id,omitempty"`
	DeliveryCode    string         `json:"-"` // OTP, never exposed in listings
	ShippingAddress string         `json:"shipping_address"`
	CustomerPhone   string         `json:"customer_phone"`
	PickupLat       float64        `json:"pickup_lat"`
	PickupLng       float64        `json:"pickup_lng"`
	DropoffLat      float64        `json:"dropoff_lat"`
	DropoffLng      float64        `json:"dropoff_lng"`
	DistanceKm      float64        `json:"distance_km"`
	Fee             int64          `json:"fee"` // minor units
	CurrentLat      *float64       `json:"current_lat,omitempty"`
	CurrentLng      *float64       `json:"current_lng,omitempty"`
	LocationAt      *time.Time     `json:"location_at,omitempty"`
	MerchantNotes   string         `json:"merchant_notes,omitempty"`
	DriverNotes     string         `json:"driver_notes,omitempty"`
	AssignedAt      *time.Time     `json:"assigned_at,omitempty"`
	ReadyAt         *time.Time     `json:"ready_at,omitempty"`
	PickedUpAt      *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CanAssignDriver reports whether a driver may still be assigned or
// replaced. Reassignment is allowed until the package is picked up.
func (d *Delivery) CanAssignDriver() bool {
	return d.Status != DeliveryStatusDelivered && d.Status != DeliveryStatusCancelled
}
