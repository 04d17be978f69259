package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/audit"
	"github.com/deliverhub/wallet-ledger/internal/locks"
	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/repositories"
)

// Op is a money-movement operation applied to a wallet.
type Op string

const (
	OpCredit  Op = "credit"
	OpDebit   Op = "debit"
	OpHold    Op = "hold"
	OpRelease Op = "release"
	OpRefund  Op = "refund"
)

// WalletWriter defines the locked wallet mutations the processor needs.
type WalletWriter interface {
	GetForUpdate(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error)
	Save(ctx context.Context, w models.Wallet) error
	InsertHold(ctx context.Context, h models.Hold) error
	GetActiveHoldByReference(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind, reference string) (models.Hold, bool, error)
	ReleaseHold(ctx context.Context, holdID uuid.UUID) error
}

// TransactionWriter appends to and reads back from the ledger log.
type TransactionWriter interface {
	Append(ctx context.Context, t models.Transaction) error
	GetByIdempotencyKey(ctx context.Context, key string) (models.Transaction, bool, error)
}

// Runner executes a function as one atomic storage unit.
type Runner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker serializes access to a keyed resource.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(ctx context.Context) error, error)
}

// Auditor consumes one event per state transition, best-effort.
type Auditor interface {
	Publish(ctx context.Context, e audit.Event)
}

// ApplyInput describes one money movement.
type ApplyInput struct {
	OwnerID        uuid.UUID
	OwnerKind      models.OwnerKind
	Amount         decimal.Decimal
	Op             Op
	Method         models.Method
	Description    string
	Reference      string // external reference; also tags holds for later release or refund
	Metadata       models.Metadata
	IdempotencyKey string // empty means this call is not a replay of anything
}

// Processor applies exactly one money movement to a wallet and records it.
// The wallet write and the ledger append commit together or not at all, and
// all movements for one owner are strictly serialized.
type Processor struct {
	wallets WalletWriter
	txs     TransactionWriter
	runner  Runner
	locker  Locker
	auditor Auditor
}

func NewProcessor(wallets WalletWriter, txs TransactionWriter, runner Runner, locker Locker, auditor Auditor) *Processor {
	return &Processor{
		wallets: wallets,
		txs:     txs,
		runner:  runner,
		locker:  locker,
		auditor: auditor,
	}
}

// Apply validates, serializes, applies and records one money movement.
// Replays with a known idempotency key return the original transaction with
// no further effect.
func (p *Processor) Apply(ctx context.Context, in ApplyInput) (models.Transaction, error) {
	if !in.Amount.IsPositive() {
		return models.Transaction{}, ErrInvalidAmount
	}
	if _, err := models.ParseOwnerKind(string(in.OwnerKind)); err != nil {
		return models.Transaction{}, ErrInvalidUserModel
	}
	switch in.Op {
	case OpCredit, OpDebit, OpHold, OpRelease, OpRefund:
	default:
		return models.Transaction{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidAmount, in.Op)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	if prior, found, err := p.txs.GetByIdempotencyKey(ctx, key); err != nil {
		return models.Transaction{}, errors.Join(ErrStoreUnavailable, err)
	} else if found {
		logger.Log.Infow("idempotent replay, returning prior transaction",
			"idempotency_key", key, "transaction_id", prior.TransactionID)
		return prior, nil
	}

	release, err := p.locker.Acquire(ctx, locks.WalletKey(in.OwnerID, in.OwnerKind))
	if err != nil {
		return models.Transaction{}, errors.Join(ErrStoreUnavailable, err)
	}
	defer release(ctx)

	var result models.Transaction
	err = p.runner.Do(ctx, func(ctx context.Context) error {
		w, err := p.wallets.GetForUpdate(ctx, in.OwnerID, in.OwnerKind)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}

		tx, err := p.mutate(ctx, &w, in, key)
		if err != nil {
			return err
		}

		if w.Balance.IsNegative() || w.OnHold.IsNegative() {
			return fmt.Errorf("wallet invariant violated: balance=%s on_hold=%s owner=%s",
				w.Balance, w.OnHold, w.OwnerID)
		}

		if err := p.wallets.Save(ctx, w); err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if err := p.txs.Append(ctx, tx); err != nil {
			return err
		}
		result = tx

		// Deferred to the outermost commit: when this movement is part of a
		// larger unit (a withdrawal settlement), a rollback of that unit must
		// also swallow the audit event.
		repositories.OnCommit(ctx, func(ctx context.Context) {
			p.auditor.Publish(ctx, audit.Event{
				Type:          audit.EventTransactionApplied,
				OwnerID:       in.OwnerID.String(),
				OwnerKind:     string(in.OwnerKind),
				TransactionID: tx.TransactionID.String(),
				Amount:        in.Amount,
				Detail:        string(in.Op),
			})
		})
		return nil
	})

	if errors.Is(err, repositories.ErrDuplicateTransaction) {
		// Lost an append race on the idempotency key: the whole unit rolled
		// back, the winner's row is the result.
		prior, found, getErr := p.txs.GetByIdempotencyKey(ctx, key)
		if getErr != nil || !found {
			return models.Transaction{}, errors.Join(ErrStoreUnavailable, getErr)
		}
		return prior, nil
	}
	if err != nil {
		return models.Transaction{}, err
	}

	logger.Log.Infow("money movement applied",
		"owner_id", in.OwnerID, "owner_kind", in.OwnerKind,
		"op", in.Op, "amount", in.Amount, "transaction_id", result.TransactionID)

	return result, nil
}

// mutate applies the operation to the in-memory wallet and builds the ledger
// row. Balance semantics:
//
//	credit         balance += amount
//	debit          balance -= amount, requires available >= amount
//	hold           on_hold += amount, requires available >= amount
//	release        on_hold -= amount, balance unchanged
//	refund         balance += amount; a matching active hold is cleared in
//	               the same unit, so funds are never refunded and held at once
func (p *Processor) mutate(ctx context.Context, w *models.Wallet, in ApplyInput, key string) (models.Transaction, error) {
	tx := models.Transaction{
		TransactionID:  uuid.New(),
		OwnerID:        in.OwnerID,
		OwnerKind:      in.OwnerKind,
		Amount:         in.Amount,
		Method:         in.Method,
		Status:         models.TransactionCompleted,
		Description:    in.Description,
		ExternalRef:    in.Reference,
		Metadata:       in.Metadata,
		IdempotencyKey: key,
	}

	switch in.Op {
	case OpCredit:
		tx.Direction = models.DirectionCredit
		w.Balance = w.Balance.Add(in.Amount)

	case OpDebit:
		if w.Available().LessThan(in.Amount) {
			return models.Transaction{}, ErrInsufficientFunds
		}
		tx.Direction = models.DirectionDebit
		w.Balance = w.Balance.Sub(in.Amount)

	case OpHold:
		if w.Available().LessThan(in.Amount) {
			return models.Transaction{}, ErrInsufficientFunds
		}
		// A hold is an earmark, not a settled movement: recorded as a
		// pending debit so balance replay only counts completed rows.
		tx.Direction = models.DirectionDebit
		tx.Status = models.TransactionPending
		w.OnHold = w.OnHold.Add(in.Amount)
		if in.Reference != "" {
			h := models.Hold{
				HoldID:    uuid.New(),
				OwnerID:   in.OwnerID,
				OwnerKind: in.OwnerKind,
				Reference: in.Reference,
				Amount:    in.Amount,
			}
			if err := p.wallets.InsertHold(ctx, h); err != nil {
				return models.Transaction{}, errors.Join(ErrStoreUnavailable, err)
			}
		}

	case OpRelease:
		if w.OnHold.LessThan(in.Amount) {
			return models.Transaction{}, ErrInsufficientFunds
		}
		tx.Direction = models.DirectionDebit
		tx.Status = models.TransactionReversed
		w.OnHold = w.OnHold.Sub(in.Amount)
		if in.Reference != "" {
			if err := p.clearHold(ctx, in); err != nil {
				return models.Transaction{}, err
			}
		}

	case OpRefund:
		tx.Direction = models.DirectionCredit
		w.Balance = w.Balance.Add(in.Amount)
		if in.Reference != "" {
			h, found, err := p.wallets.GetActiveHoldByReference(ctx, in.OwnerID, in.OwnerKind, in.Reference)
			if err != nil {
				return models.Transaction{}, errors.Join(ErrStoreUnavailable, err)
			}
			if found {
				w.OnHold = w.OnHold.Sub(h.Amount)
				if err := p.wallets.ReleaseHold(ctx, h.HoldID); err != nil {
					return models.Transaction{}, errors.Join(ErrStoreUnavailable, err)
				}
			}
			// No matching hold: the refund acts as a plain credit.
		}
	}

	return tx, nil
}

func (p *Processor) clearHold(ctx context.Context, in ApplyInput) error {
	h, found, err := p.wallets.GetActiveHoldByReference(ctx, in.OwnerID, in.OwnerKind, in.Reference)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if found {
		if err := p.wallets.ReleaseHold(ctx, h.HoldID); err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
	}
	return nil
}
