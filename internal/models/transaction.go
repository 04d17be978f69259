package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction of a money movement relative to the wallet.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Method describes the rail or reason behind a money movement.
type Method string

const (
	MethodAgent        Method = "agent"
	MethodCard         Method = "card"
	MethodTransfer     Method = "transfer"
	MethodPayment      Method = "payment"
	MethodEscrow       Method = "escrow"
	MethodReward       Method = "reward"
	MethodExternalRail Method = "external_rail"
	MethodWithdrawal   Method = "withdrawal"
)

// TransactionStatus of an appended ledger row.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionReversed  TransactionStatus = "reversed"
)

// Transaction is one immutable row of the append-only ledger.
// Completed rows are never mutated in place; a correction is a new
// compensating row plus status=reversed on the original.
type Transaction struct {
	TransactionID  uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	OwnerID        uuid.UUID         `json:"owner_id" db:"owner_id"`
	OwnerKind      OwnerKind         `json:"owner_kind" db:"owner_kind"`
	Amount         decimal.Decimal   `json:"amount" db:"amount"` // Positive magnitude; sign is carried by Direction
	Direction      Direction         `json:"direction" db:"direction"`
	Method         Method            `json:"method" db:"method"`
	Status         TransactionStatus `json:"status" db:"status"`
	Description    string            `json:"description" db:"description"`
	ExternalRef    string            `json:"external_ref,omitempty" db:"external_ref"`
	Metadata       Metadata          `json:"metadata,omitempty" db:"metadata"`
	IdempotencyKey string            `json:"idempotency_key" db:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}

// TransactionFilter narrows a ledger listing. Zero values mean "any".
type TransactionFilter struct {
	OwnerID   uuid.UUID
	OwnerKind OwnerKind
	Direction Direction
	Method    Method
	Status    TransactionStatus
}
