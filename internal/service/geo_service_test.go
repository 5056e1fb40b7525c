package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineGeocoder_GeocodeDeterministic(t *testing.T) {
	g := NewOfflineGeocoder(48.8566, 2.3522, 50000, 10000)
	ctx := context.Background()

	lat1, lng1, err := g.Geocode(ctx, "12 Rue de Rivoli")
	require.NoError(t, err)
	lat2, lng2, err := g.Geocode(ctx, "12 Rue de Rivoli")
	require.NoError(t, err)

	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lng1, lng2)

	// Stays within the configured spread around the center.
	assert.InDelta(t, 48.8566, lat1, geocodeSpreadDeg)
	assert.InDelta(t, 2.3522, lng1, geocodeSpreadDeg)
}

func TestOfflineGeocoder_DifferentAddressesDiverge(t *testing.T) {
	g := NewOfflineGeocoder(48.8566, 2.3522, 50000, 10000)
	ctx := context.Background()

	lat1, lng1, err := g.Geocode(ctx, "12 Rue de Rivoli")
	require.NoError(t, err)
	lat2, lng2, err := g.Geocode(ctx, "99 Avenue des Champs-Elysees")
	require.NoError(t, err)

	assert.False(t, lat1 == lat2 && lng1 == lng2)
}

func TestOfflineGeocoder_DistanceKm(t *testing.T) {
	g := NewOfflineGeocoder(0, 0, 0, 0)

	// Same point.
	assert.Equal(t, 0.0, g.DistanceKm(48.8566, 2.3522, 48.8566, 2.3522))

	// Paris to London, roughly 344 km.
	d := g.DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)

	// Rounded to two decimals.
	assert.Equal(t, d, math.Round(d*100)/100)
}

func TestOfflineGeocoder_DistanceSymmetric(t *testing.T) {
	g := NewOfflineGeocoder(0, 0, 0, 0)
	d1 := g.DistanceKm(48.85, 2.35, 48.90, 2.40)
	d2 := g.DistanceKm(48.90, 2.40, 48.85, 2.35)
	assert.Equal(t, d1, d2)
}

func TestOfflineGeocoder_DeliveryFee(t *testing.T) {
	g := NewOfflineGeocoder(0, 0, 50000, 10000)

	assert.Equal(t, int64(50000), g.DeliveryFee(0))
	assert.Equal(t, int64(100000), g.DeliveryFee(5))
	// Fractional distances round to the nearest minor unit.
	assert.Equal(t, int64(75500), g.DeliveryFee(2.55))
}
