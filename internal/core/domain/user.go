package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role partitions users into the three marketplace actors.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleMerchant Role = "MERCHANT"
	RoleDriver   Role = "DRIVER"
)

// User represents a marketplace account: customer, merchant or driver.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	StoreName string    `json:"store_name,omitempty"` // merchants only
	CreatedAt time.Time `json:"created_at"`
}

// IsAvailableDriver reports whether the user can be offered deliveries.
func (u *User) IsAvailableDriver() bool {
	return u.Role == RoleDriver && u.Active
}
