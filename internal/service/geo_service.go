package service

import (
	"context"
	"hash/fnv"
	"math"
)

const earthRadiusKm = 6371.0

// geocodeSpreadDeg bounds the offset applied around the configured city
// center when resolving an address without a real geocoding provider.
const geocodeSpreadDeg = 0.05

// OfflineGeocoder implements ports.Geocoder without an external API.
// Addresses resolve deterministically to coordinates near a configured
// center point, so the same address always geocodes identically.
type OfflineGeocoder struct {
	baseLat   float64
	baseLng   float64
	baseFee   int64 // minor units
	perKmRate int64 // minor units per km
}

// NewOfflineGeocoder creates a geocoder centered on (baseLat, baseLng)
// with the given delivery fee schedule.
func NewOfflineGeocoder(baseLat, baseLng float64, baseFee, perKmRate int64) *OfflineGeocoder {
	return &OfflineGeocoder{
		baseLat:   baseLat,
		baseLng:   baseLng,
		baseFee:   baseFee,
		perKmRate: perKmRate,
	}
}

// Geocode maps an address to coordinates near the center point. The
// offset is derived from a hash of the address, not randomness: repeat
// calls for one address are stable.
func (g *OfflineGeocoder) Geocode(_ context.Context, address string) (float64, float64, error) {
	h := fnv.New64a()
	h.Write([]byte(address))
	sum := h.Sum64()

	latOffset := spread(uint32(sum >> 32))
	lngOffset := spread(uint32(sum))

	return g.baseLat + latOffset, g.baseLng + lngOffset, nil
}

// spread maps a 32-bit hash half onto [-geocodeSpreadDeg, +geocodeSpreadDeg].
func spread(v uint32) float64 {
	return (float64(v)/float64(math.MaxUint32)*2 - 1) * geocodeSpreadDeg
}

// DistanceKm returns the great-circle distance between two points,
// rounded to two decimals.
func (g *OfflineGeocoder) DistanceKm(aLat, aLng, bLat, bLng float64) float64 {
	dLat := toRadians(bLat - aLat)
	dLng := toRadians(bLng - aLng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(aLat))*math.Cos(toRadians(bLat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

// DeliveryFee returns base fee plus the per-km rate over the distance,
// in minor units.
func (g *OfflineGeocoder) DeliveryFee(distanceKm float64) int64 {
	return g.baseFee + int64(math.Round(float64(g.perKmRate)*distanceKm))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
