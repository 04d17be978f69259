package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// Get returns the current wallet for an owner. An owner with no wallet row is
// a legitimate zero state, so absence materializes a zero-balance wallet
// rather than an error.
func (r *WalletReadRepository) Get(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error) {
	const query = `
		SELECT owner_id, owner_kind, balance, on_hold, loyalty_points, created_at, updated_at
		FROM wallets
		WHERE owner_id = $1 AND owner_kind = $2
	`

	var w models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, ownerID, ownerKind)
	if errors.Is(err, sql.ErrNoRows) {
		return zeroWallet(ownerID, ownerKind), nil
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, ownerKind},
		"error", err,
	)

	return w, err
}

func zeroWallet(ownerID uuid.UUID, ownerKind models.OwnerKind) models.Wallet {
	return models.Wallet{OwnerID: ownerID, OwnerKind: ownerKind}
}

// WalletWriteRepository handles wallet write operations. All of its methods
// must run inside a TxRunner transaction: GetForUpdate takes the row lock
// that serializes every mutation of one owner's wallet.
type WalletWriteRepository struct {
	db *sqlx.DB
}

func NewWalletWriteRepository(db *sqlx.DB) *WalletWriteRepository {
	return &WalletWriteRepository{db: db}
}

// GetForUpdate materializes the wallet row if the owner has none yet, then
// locks and returns it.
func (r *WalletWriteRepository) GetForUpdate(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error) {
	const insert = `
		INSERT INTO wallets (owner_id, owner_kind, balance, on_hold, loyalty_points, created_at, updated_at)
		VALUES ($1, $2, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (owner_id, owner_kind) DO NOTHING
	`
	const query = `
		SELECT owner_id, owner_kind, balance, on_hold, loyalty_points, created_at, updated_at
		FROM wallets
		WHERE owner_id = $1 AND owner_kind = $2
		FOR UPDATE
	`

	ex := executor(ctx, r.db)
	if _, err := ex.ExecContext(ctx, insert, ownerID, ownerKind); err != nil {
		logger.Log.Errorw("failed to materialize wallet", "owner_id", ownerID, "owner_kind", ownerKind, "error", err)
		return models.Wallet{}, err
	}

	var w models.Wallet
	err := sqlx.GetContext(ctx, ex, &w, query, ownerID, ownerKind)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, ownerKind},
		"error", err,
	)

	return w, err
}

// Save persists the mutated balance fields of a locked wallet row.
func (r *WalletWriteRepository) Save(ctx context.Context, w models.Wallet) error {
	const query = `
		UPDATE wallets
		SET balance = $3, on_hold = $4, updated_at = NOW()
		WHERE owner_id = $1 AND owner_kind = $2
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, w.OwnerID, w.OwnerKind, w.Balance, w.OnHold)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{w.OwnerID, w.OwnerKind, w.Balance, w.OnHold},
		"error", err,
	)

	return err
}

// InsertHold records an active reservation tagged with a reference.
func (r *WalletWriteRepository) InsertHold(ctx context.Context, h models.Hold) error {
	const query = `
		INSERT INTO holds (hold_id, owner_id, owner_kind, reference, amount, released, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, h.HoldID, h.OwnerID, h.OwnerKind, h.Reference, h.Amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{h.HoldID, h.OwnerID, h.OwnerKind, h.Reference, h.Amount},
		"error", err,
	)

	return err
}

// GetActiveHoldByReference locks and returns the newest unreleased hold
// carrying the given reference, if any.
func (r *WalletWriteRepository) GetActiveHoldByReference(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind, reference string) (models.Hold, bool, error) {
	const query = `
		SELECT hold_id, owner_id, owner_kind, reference, amount, released, created_at
		FROM holds
		WHERE owner_id = $1 AND owner_kind = $2 AND reference = $3 AND NOT released
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`

	var h models.Hold
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &h, query, ownerID, ownerKind, reference)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hold{}, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load hold", "owner_id", ownerID, "reference", reference, "error", err)
		return models.Hold{}, false, err
	}
	return h, true, nil
}

// ReleaseHold marks a hold row as released.
func (r *WalletWriteRepository) ReleaseHold(ctx context.Context, holdID uuid.UUID) error {
	const query = `UPDATE holds SET released = TRUE WHERE hold_id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, holdID)

	logger.Log.Infow(
		"query", query,
		"args", []any{holdID},
		"error", err,
	)

	return err
}
