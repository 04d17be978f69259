package repositories

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// pgUniqueViolation is the postgres error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// TransactionWriteRepository appends rows to the immutable ledger.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Append inserts one ledger row. A unique index on idempotency_key turns a
// replay into ErrDuplicateTransaction.
func (r *TransactionWriteRepository) Append(ctx context.Context, t models.Transaction) error {
	const query = `
		INSERT INTO transactions (
			transaction_id, owner_id, owner_kind, amount, direction, method,
			status, description, external_ref, metadata, idempotency_key, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		t.TransactionID, t.OwnerID, t.OwnerKind, t.Amount, t.Direction, t.Method,
		t.Status, t.Description, t.ExternalRef, t.Metadata, t.IdempotencyKey,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{t.TransactionID, t.OwnerID, t.OwnerKind, t.Amount, t.Direction, t.Method, t.IdempotencyKey},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateTransaction
	}
	return err
}

// GetByIdempotencyKey returns the previously appended row for a key, if any.
func (r *TransactionWriteRepository) GetByIdempotencyKey(ctx context.Context, key string) (models.Transaction, bool, error) {
	const query = `
		SELECT transaction_id, owner_id, owner_kind, amount, direction, method,
		       status, description, external_ref, metadata, idempotency_key, created_at
		FROM transactions
		WHERE idempotency_key = $1
	`

	var t models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &t, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load transaction by idempotency key", "key", key, "error", err)
		return models.Transaction{}, false, err
	}
	return t, true, nil
}

// TransactionReadRepository serves paginated ledger reads. It never takes
// locks: the log is append-only, so readers cannot block writers.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns one page of ledger rows, newest first, with a keyset cursor
// for the next page. An empty cursor starts from the top.
func (r *TransactionReadRepository) List(ctx context.Context, f models.TransactionFilter, cursor string, limit int) ([]models.Transaction, string, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT transaction_id, owner_id, owner_kind, amount, direction, method,
		       status, description, external_ref, metadata, idempotency_key, created_at
		FROM transactions
		WHERE 1=1
	`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if f.OwnerID != uuid.Nil {
		query += " AND owner_id = " + arg(f.OwnerID)
	}
	if f.OwnerKind != "" {
		query += " AND owner_kind = " + arg(f.OwnerKind)
	}
	if f.Direction != "" {
		query += " AND direction = " + arg(f.Direction)
	}
	if f.Method != "" {
		query += " AND method = " + arg(f.Method)
	}
	if f.Status != "" {
		query += " AND status = " + arg(f.Status)
	}
	if cursor != "" {
		createdAt, id, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		query += " AND (created_at, transaction_id) < (" + arg(createdAt) + ", " + arg(id) + ")"
	}
	query += " ORDER BY created_at DESC, transaction_id DESC LIMIT " + arg(limit)

	var items []models.Transaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &items, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(items) == limit {
		last := items[len(items)-1]
		next = encodeCursor(last.CreatedAt, last.TransactionID)
	}
	return items, next, nil
}

// SumCompletedEffects replays the ledger for one owner: completed credits
// minus completed debits. Used for audit reconciliation against the stored
// balance.
func (r *TransactionReadRepository) SumCompletedEffects(ctx context.Context, ownerID uuid.UUID, ownerKind models.OwnerKind) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE owner_id = $1 AND owner_kind = $2 AND status = 'completed'
	`

	var sum decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &sum, query, ownerID, ownerKind)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, ownerKind},
		"result", sum,
		"error", err,
	)

	return sum, err
}

func encodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}
	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return createdAt, id, nil
}
