package domain

// Commission is a named platform commission rate in basis points
// (1000 = 10.00%). It is resolved from configuration at startup; the
// single-active-rate precondition is enforced by the config loader.
type Commission struct {
	Name    string `json:"name"`
	RateBps int64  `json:"rate_bps"`
	Active  bool   `json:"active"`
}
