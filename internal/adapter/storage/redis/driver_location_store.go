package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-core/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DriverLocationStore implements ports.DriverLocationStore using Redis.
// Samples expire after the configured TTL, so a hit is always a fresh
// location and a miss falls back to the driver's home address.
type DriverLocationStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewDriverLocationStore creates a Redis-backed live location store.
func NewDriverLocationStore(client *goredis.Client, ttl time.Duration) *DriverLocationStore {
	return &DriverLocationStore{
		client: client,
		prefix: "driver_location:",
		ttl:    ttl,
	}
}

// Set stores a driver's latest coordinate sample with TTL.
func (s *DriverLocationStore) Set(ctx context.Context, driverID uuid.UUID, lat, lng float64) error {
	loc := ports.DriverLocation{Lat: lat, Lng: lng, UpdatedAt: time.Now().UTC()}
	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("marshal driver location: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+driverID.String(), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis driver location set: %w", err)
	}
	return nil
}

// Get retrieves a driver's live location.
// Returns nil, nil when no fresh sample exists.
func (s *DriverLocationStore) Get(ctx context.Context, driverID uuid.UUID) (*ports.DriverLocation, error) {
	val, err := s.client.Get(ctx, s.prefix+driverID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis driver location get: %w", err)
	}

	var loc ports.DriverLocation
	if err := json.Unmarshal(val, &loc); err != nil {
		return nil, fmt.Errorf("unmarshal driver location: %w", err)
	}
	return &loc, nil
}
