package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/models"
	"github.com/deliverhub/wallet-ledger/internal/repositories"
)

// WalletReader reads current wallet state.
type WalletReader interface {
	Get(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error)
}

// TransactionReader reads the append-only ledger log.
type TransactionReader interface {
	List(ctx context.Context, f models.TransactionFilter, cursor string, limit int) ([]models.Transaction, string, error)
	SumCompletedEffects(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (decimal.Decimal, error)
}

// TransactionPage is one page of ledger rows plus the cursor for the next.
type TransactionPage struct {
	Items      []models.Transaction `json:"items"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// Reconciliation compares the stored balance with a full replay of the
// owner's completed ledger rows. The two match on a healthy ledger.
type Reconciliation struct {
	OwnerID    uuid.UUID        `json:"owner_id"`
	OwnerKind  models.OwnerKind `json:"owner_kind"`
	Balance    decimal.Decimal  `json:"balance"`
	Replayed   decimal.Decimal  `json:"replayed"`
	Consistent bool             `json:"consistent"`
}

// LedgerService serves wallet and transaction reads.
type LedgerService struct {
	wallets WalletReader
	txs     TransactionReader
}

func NewLedgerService(wallets WalletReader, txs TransactionReader) *LedgerService {
	return &LedgerService{wallets: wallets, txs: txs}
}

// GetWallet returns the owner's wallet; an owner who never moved money gets
// a zero wallet, never a not-found.
func (s *LedgerService) GetWallet(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (models.Wallet, error) {
	if _, err := models.ParseOwnerKind(string(ownerKind)); err != nil {
		return models.Wallet{}, ErrInvalidUserModel
	}
	w, err := s.wallets.Get(ctx, ownerID, ownerKind)
	if err != nil {
		return models.Wallet{}, errors.Join(ErrStoreUnavailable, err)
	}
	return w, nil
}

// ListTransactions returns one ledger page.
func (s *LedgerService) ListTransactions(ctx context.Context, f models.TransactionFilter, cursor string, limit int) (TransactionPage, error) {
	items, next, err := s.txs.List(ctx, f, cursor, limit)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCursor) {
			return TransactionPage{}, errors.Join(ErrInvalidCursor, err)
		}
		return TransactionPage{}, errors.Join(ErrStoreUnavailable, err)
	}
	return TransactionPage{Items: items, NextCursor: next}, nil
}

// Reconcile replays the owner's completed ledger rows and checks the sum
// against the stored balance.
func (s *LedgerService) Reconcile(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (Reconciliation, error) {
	if _, err := models.ParseOwnerKind(string(ownerKind)); err != nil {
		return Reconciliation{}, ErrInvalidUserModel
	}

	w, err := s.wallets.Get(ctx, ownerID, ownerKind)
	if err != nil {
		return Reconciliation{}, errors.Join(ErrStoreUnavailable, err)
	}
	replayed, err := s.txs.SumCompletedEffects(ctx, ownerID, ownerKind)
	if err != nil {
		return Reconciliation{}, errors.Join(ErrStoreUnavailable, err)
	}

	return Reconciliation{
		OwnerID:    ownerID,
		OwnerKind:  ownerKind,
		Balance:    w.Balance,
		Replayed:   replayed,
		Consistent: w.Balance.Equal(replayed),
	}, nil
}
