package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// withdrawalRow is the flat scan target for withdrawal_requests.
type withdrawalRow struct {
	RequestID       uuid.UUID               `db:"request_id"`
	UserID          uuid.UUID               `db:"user_id"`
	UserKind        models.OwnerKind        `db:"user_kind"`
	Amount          decimal.Decimal         `db:"amount"`
	Status          models.WithdrawalStatus `db:"status"`
	BankName        string                  `db:"bank_name"`
	AccountNumber   string                  `db:"account_number"`
	HolderName      string                  `db:"holder_name"`
	IBAN            string                  `db:"iban"`
	TransactionRef  string                  `db:"transaction_ref"`
	Notes           string                  `db:"notes"`
	RejectionReason string                  `db:"rejection_reason"`
	ApprovedBy      uuid.NullUUID           `db:"approved_by"`
	ApprovedAt      sql.NullTime            `db:"approved_at"`
	RejectedBy      uuid.NullUUID           `db:"rejected_by"`
	RejectedAt      sql.NullTime            `db:"rejected_at"`
	ProcessedAt     sql.NullTime            `db:"processed_at"`
	ProcessingFee   decimal.Decimal         `db:"processing_fee"`
	CreatedAt       sql.NullTime            `db:"created_at"`
	UpdatedAt       sql.NullTime            `db:"updated_at"`
}

func (row withdrawalRow) toModel() models.WithdrawalRequest {
	return models.WithdrawalRequest{
		RequestID: row.RequestID,
		UserID:    row.UserID,
		UserKind:  row.UserKind,
		Amount:    row.Amount,
		Status:    row.Status,
		BankDetails: models.BankDetails{
			BankName:      row.BankName,
			AccountNumber: row.AccountNumber,
			HolderName:    row.HolderName,
			IBAN:          row.IBAN,
		},
		TransactionRef:  row.TransactionRef,
		Notes:           row.Notes,
		RejectionReason: row.RejectionReason,
		ApprovedBy:      row.ApprovedBy,
		ApprovedAt:      row.ApprovedAt,
		RejectedBy:      row.RejectedBy,
		RejectedAt:      row.RejectedAt,
		ProcessedAt:     row.ProcessedAt,
		ProcessingFee:   row.ProcessingFee,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

const withdrawalColumns = `
	request_id, user_id, user_kind, amount, status,
	bank_name, account_number, holder_name, iban,
	transaction_ref, notes, rejection_reason,
	approved_by, approved_at, rejected_by, rejected_at, processed_at,
	processing_fee, created_at, updated_at
`

// WithdrawalReadRepository serves withdrawal reads and listings.
type WithdrawalReadRepository struct {
	db *sqlx.DB
}

func NewWithdrawalReadRepository(db *sqlx.DB) *WithdrawalReadRepository {
	return &WithdrawalReadRepository{db: db}
}

// GetByID returns the request, with found=false for an unknown id.
func (r *WithdrawalReadRepository) GetByID(ctx context.Context, requestID uuid.UUID) (models.WithdrawalRequest, bool, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE request_id = $1`

	var row withdrawalRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WithdrawalRequest{}, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load withdrawal request", "request_id", requestID, "error", err)
		return models.WithdrawalRequest{}, false, err
	}
	return row.toModel(), true, nil
}

// List returns one page of requests plus the total match count. Pending
// requests are listed oldest-first so operators can work the queue FIFO;
// every other view is newest-first.
func (r *WithdrawalReadRepository) List(ctx context.Context, f models.WithdrawalFilter, page, limit int) ([]models.WithdrawalRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	where := " WHERE 1=1"
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if f.Status != "" {
		where += " AND status = " + arg(f.Status)
	}
	if f.UserKind != "" {
		where += " AND user_kind = " + arg(f.UserKind)
	}
	if f.UserID != uuid.Nil {
		where += " AND user_id = " + arg(f.UserID)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM withdrawal_requests` + where
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, countQuery, args...); err != nil {
		logger.Log.Errorw("failed to count withdrawal requests", "error", err)
		return nil, 0, err
	}

	order := " ORDER BY created_at DESC"
	if f.Status == models.WithdrawalPending {
		order = " ORDER BY created_at ASC"
	}
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests` + where + order +
		" LIMIT " + arg(limit) + " OFFSET " + arg((page-1)*limit)

	var rows []withdrawalRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.WithdrawalRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, total, nil
}

// WithdrawalWriteRepository mutates withdrawal requests. Status updates are
// conditional on the expected current status, so a raced second transition
// updates zero rows instead of overwriting the winner.
type WithdrawalWriteRepository struct {
	db *sqlx.DB
}

func NewWithdrawalWriteRepository(db *sqlx.DB) *WithdrawalWriteRepository {
	return &WithdrawalWriteRepository{db: db}
}

// Create inserts a new pending request.
func (r *WithdrawalWriteRepository) Create(ctx context.Context, req models.WithdrawalRequest) error {
	const query = `
		INSERT INTO withdrawal_requests (
			request_id, user_id, user_kind, amount, status,
			bank_name, account_number, holder_name, iban,
			notes, processing_fee, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		req.RequestID, req.UserID, req.UserKind, req.Amount,
		req.BankDetails.BankName, req.BankDetails.AccountNumber,
		req.BankDetails.HolderName, req.BankDetails.IBAN,
		req.Notes, req.ProcessingFee,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{req.RequestID, req.UserID, req.UserKind, req.Amount},
		"error", err,
	)

	return err
}

// GetForUpdate locks and returns the request row. Must run inside a TxRunner
// transaction; the row lock serializes concurrent decisions on one request.
func (r *WithdrawalWriteRepository) GetForUpdate(ctx context.Context, requestID uuid.UUID) (models.WithdrawalRequest, bool, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE request_id = $1 FOR UPDATE`

	var row withdrawalRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WithdrawalRequest{}, false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to lock withdrawal request", "request_id", requestID, "error", err)
		return models.WithdrawalRequest{}, false, err
	}
	return row.toModel(), true, nil
}

// MarkApproved moves a pending request to approved. Returns the number of
// rows updated; zero means the request was no longer pending.
func (r *WithdrawalWriteRepository) MarkApproved(ctx context.Context, requestID, adminID uuid.UUID, transactionRef, notes string) (int64, error) {
	const query = `
		UPDATE withdrawal_requests
		SET status = 'approved', approved_by = $2, approved_at = NOW(),
		    transaction_ref = $3, notes = $4, updated_at = NOW()
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID, adminID, transactionRef, notes)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, adminID, transactionRef},
		"error", err,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkRejected moves a pending request to rejected. The owner's wallet is
// never touched on this path.
func (r *WithdrawalWriteRepository) MarkRejected(ctx context.Context, requestID, adminID uuid.UUID, reason string) (int64, error) {
	const query = `
		UPDATE withdrawal_requests
		SET status = 'rejected', rejected_by = $2, rejected_at = NOW(),
		    rejection_reason = $3, updated_at = NOW()
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID, adminID, reason)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, adminID, reason},
		"error", err,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateStatus performs a conditional transition from one status to another,
// stamping processed_at when the request reaches completed or failed.
func (r *WithdrawalWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.WithdrawalStatus) (int64, error) {
	const query = `
		UPDATE withdrawal_requests
		SET status = $3,
		    processed_at = CASE WHEN $3 IN ('completed', 'failed') THEN NOW() ELSE processed_at END,
		    updated_at = NOW()
		WHERE request_id = $1 AND status = $2
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID, from, to)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, from, to},
		"error", err,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
