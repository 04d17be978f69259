package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus of a withdrawal request. Transitions are one-way:
//
//	pending -> approved -> completed | failed
//	pending -> rejected
//	approved -> processing -> completed | failed
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalApproved   WithdrawalStatus = "approved"
	WithdrawalRejected   WithdrawalStatus = "rejected"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalFailed     WithdrawalStatus = "failed"
)

// Terminal reports whether no further transition out of the status is permitted.
func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalRejected || s == WithdrawalCompleted || s == WithdrawalFailed
}

// BankDetails is the payout destination captured at submission time.
type BankDetails struct {
	BankName      string `json:"bank_name" db:"bank_name"`
	AccountNumber string `json:"account_number" db:"account_number"`
	HolderName    string `json:"holder_name" db:"holder_name"`
	IBAN          string `json:"iban,omitempty" db:"iban"`
}

// WithdrawalRequest represents a withdrawal request row. Amount is fixed at
// submission and never mutated; rejected and failed requests are kept as
// historical record, never deleted.
type WithdrawalRequest struct {
	RequestID       uuid.UUID        `json:"request_id" db:"request_id"`
	UserID          uuid.UUID        `json:"user_id" db:"user_id"`
	UserKind        OwnerKind        `json:"user_kind" db:"user_kind"` // driver, vendor or marketer
	Amount          decimal.Decimal  `json:"amount" db:"amount"`
	Status          WithdrawalStatus `json:"status" db:"status"`
	BankDetails     BankDetails      `json:"bank_details"`
	TransactionRef  string           `json:"transaction_ref,omitempty" db:"transaction_ref"`
	Notes           string           `json:"notes,omitempty" db:"notes"`
	RejectionReason string           `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ApprovedBy      uuid.NullUUID    `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt      sql.NullTime     `json:"approved_at,omitempty" db:"approved_at"`
	RejectedBy      uuid.NullUUID    `json:"rejected_by,omitempty" db:"rejected_by"`
	RejectedAt      sql.NullTime     `json:"rejected_at,omitempty" db:"rejected_at"`
	ProcessedAt     sql.NullTime     `json:"processed_at,omitempty" db:"processed_at"`
	ProcessingFee   decimal.Decimal  `json:"processing_fee" db:"processing_fee"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// WithdrawalFilter narrows a withdrawal listing. Zero values mean "any".
type WithdrawalFilter struct {
	Status   WithdrawalStatus
	UserKind OwnerKind
	UserID   uuid.UUID
}
