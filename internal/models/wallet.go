package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerKind identifies which side of the marketplace a wallet belongs to.
type OwnerKind string

// Supported wallet owner kinds
const (
	OwnerCustomer OwnerKind = "customer"
	OwnerDriver   OwnerKind = "driver"
	OwnerVendor   OwnerKind = "vendor"
	OwnerMarketer OwnerKind = "marketer"
)

// ErrUnknownOwnerKind is returned when an owner kind string is not one of the supported values.
var ErrUnknownOwnerKind = errors.New("unknown owner kind")

// ParseOwnerKind validates a raw owner kind string.
func ParseOwnerKind(s string) (OwnerKind, error) {
	switch OwnerKind(s) {
	case OwnerCustomer, OwnerDriver, OwnerVendor, OwnerMarketer:
		return OwnerKind(s), nil
	}
	return "", ErrUnknownOwnerKind
}

// Wallet represents a wallet row in the database.
// Available is not stored; it is always derived as Balance - OnHold.
type Wallet struct {
	OwnerID       uuid.UUID       `json:"owner_id" db:"owner_id"`             // Identifier of the wallet's owner
	OwnerKind     OwnerKind       `json:"owner_kind" db:"owner_kind"`         // Kind of the owner (customer, driver, vendor, marketer)
	Balance       decimal.Decimal `json:"balance" db:"balance"`               // Total settled funds
	OnHold        decimal.Decimal `json:"on_hold" db:"on_hold"`               // Funds reserved against in-flight operations
	LoyaltyPoints int64           `json:"loyalty_points" db:"loyalty_points"` // Non-monetary promotional counter
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the wallet was created
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Timestamp of the last wallet update
}

// Available returns the spendable portion of the wallet.
func (w Wallet) Available() decimal.Decimal {
	return w.Balance.Sub(w.OnHold)
}

// Hold represents an active funds reservation tagged with an external reference,
// so that a later release or refund can find and clear it.
type Hold struct {
	HoldID    uuid.UUID       `json:"hold_id" db:"hold_id"`
	OwnerID   uuid.UUID       `json:"owner_id" db:"owner_id"`
	OwnerKind OwnerKind       `json:"owner_kind" db:"owner_kind"`
	Reference string          `json:"reference" db:"reference"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Released  bool            `json:"released" db:"released"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
