package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/audit"
	"github.com/deliverhub/wallet-ledger/internal/locks"
	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// WithdrawalReader defines read access to withdrawal requests.
type WithdrawalReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (models.WithdrawalRequest, bool, error)
	List(ctx context.Context, f models.WithdrawalFilter, page, limit int) ([]models.WithdrawalRequest, int64, error)
}

// WithdrawalWriter defines the conditional mutations of a request row.
type WithdrawalWriter interface {
	Create(ctx context.Context, req models.WithdrawalRequest) error
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (models.WithdrawalRequest, bool, error)
	MarkApproved(ctx context.Context, requestID, adminID uuid.UUID, transactionRef, notes string) (int64, error)
	MarkRejected(ctx context.Context, requestID, adminID uuid.UUID, reason string) (int64, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.WithdrawalStatus) (int64, error)
}

// MovementApplier is the settlement seam: the Transaction Processor.
type MovementApplier interface {
	Apply(ctx context.Context, in ApplyInput) (models.Transaction, error)
}

// WithdrawalPage is one page of a withdrawal listing.
type WithdrawalPage struct {
	Items      []models.WithdrawalRequest `json:"items"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"total_pages"`
}

// SubmitWithdrawalInput carries a new withdrawal request.
type SubmitWithdrawalInput struct {
	UserID        uuid.UUID
	UserKind      models.OwnerKind
	Amount        decimal.Decimal
	BankDetails   models.BankDetails
	Notes         string
	ProcessingFee decimal.Decimal
}

// WithdrawalService governs the withdrawal request lifecycle and coordinates
// settlement with the Transaction Processor. Lock order is fixed: request
// first, then (inside the processor) the owner's wallet.
type WithdrawalService struct {
	reads     WithdrawalReader
	writes    WithdrawalWriter
	processor MovementApplier
	runner    Runner
	locker    Locker
	auditor   Auditor
}

func NewWithdrawalService(
	reads WithdrawalReader,
	writes WithdrawalWriter,
	processor MovementApplier,
	runner Runner,
	locker Locker,
	auditor Auditor,
) *WithdrawalService {
	return &WithdrawalService{
		reads:     reads,
		writes:    writes,
		processor: processor,
		runner:    runner,
		locker:    locker,
		auditor:   auditor,
	}
}

// Submit creates a new pending request. The amount is fixed here and never
// mutated afterwards.
func (s *WithdrawalService) Submit(ctx context.Context, in SubmitWithdrawalInput) (models.WithdrawalRequest, error) {
	if !in.Amount.IsPositive() {
		return models.WithdrawalRequest{}, ErrInvalidAmount
	}
	switch in.UserKind {
	case models.OwnerDriver, models.OwnerVendor, models.OwnerMarketer:
	default:
		return models.WithdrawalRequest{}, ErrInvalidUserModel
	}
	if strings.TrimSpace(in.BankDetails.AccountNumber) == "" || strings.TrimSpace(in.BankDetails.HolderName) == "" {
		return models.WithdrawalRequest{}, ErrInvalidBankDetails
	}

	req := models.WithdrawalRequest{
		RequestID:     uuid.New(),
		UserID:        in.UserID,
		UserKind:      in.UserKind,
		Amount:        in.Amount,
		Status:        models.WithdrawalPending,
		BankDetails:   in.BankDetails,
		Notes:         in.Notes,
		ProcessingFee: in.ProcessingFee,
	}
	if err := s.writes.Create(ctx, req); err != nil {
		return models.WithdrawalRequest{}, errors.Join(ErrStoreUnavailable, err)
	}

	s.auditor.Publish(ctx, audit.Event{
		Type:      audit.EventWithdrawalSubmitted,
		OwnerID:   in.UserID.String(),
		OwnerKind: string(in.UserKind),
		RequestID: req.RequestID.String(),
		Amount:    in.Amount,
	})

	logger.Log.Infow("withdrawal submitted",
		"request_id", req.RequestID, "user_id", in.UserID, "amount", in.Amount)
	return req, nil
}

// Approve settles a pending request: the owner's wallet is debited and the
// request moves to approved in the same atomic unit. On any failure the
// request stays pending and nothing partial is observable.
func (s *WithdrawalService) Approve(ctx context.Context, requestID, adminID uuid.UUID, transactionRef, notes string) (models.WithdrawalRequest, error) {
	release, err := s.locker.Acquire(ctx, locks.WithdrawalKey(requestID))
	if err != nil {
		return models.WithdrawalRequest{}, errors.Join(ErrStoreUnavailable, err)
	}
	defer release(ctx)

	var req models.WithdrawalRequest
	err = s.runner.Do(ctx, func(ctx context.Context) error {
		loaded, found, err := s.writes.GetForUpdate(ctx, requestID)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if !found {
			return ErrWithdrawalNotFound
		}
		if loaded.Status != models.WithdrawalPending {
			return ErrAlreadyProcessed
		}

		// Settlement debit, idempotent on the request id. Available funds
		// are checked at approval time, not submission time.
		tx, err := s.processor.Apply(ctx, ApplyInput{
			OwnerID:        loaded.UserID,
			OwnerKind:      loaded.UserKind,
			Amount:         loaded.Amount,
			Op:             OpDebit,
			Method:         models.MethodWithdrawal,
			Description:    fmt.Sprintf("withdrawal %s settlement", requestID),
			Reference:      transactionRef,
			Metadata:       models.Metadata{"request_id": requestID.String()},
			IdempotencyKey: requestID.String(),
		})
		if err != nil {
			return err
		}

		ref := transactionRef
		if ref == "" {
			ref = tx.TransactionID.String()
		}
		rows, err := s.writes.MarkApproved(ctx, requestID, adminID, ref, notes)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if rows == 0 {
			return ErrAlreadyProcessed
		}

		loaded.Status = models.WithdrawalApproved
		loaded.TransactionRef = ref
		loaded.Notes = notes
		loaded.ApprovedBy = uuid.NullUUID{UUID: adminID, Valid: true}
		req = loaded
		return nil
	})
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.auditor.Publish(ctx, audit.Event{
		Type:      audit.EventWithdrawalApproved,
		OwnerID:   req.UserID.String(),
		OwnerKind: string(req.UserKind),
		RequestID: requestID.String(),
		ActorID:   adminID.String(),
		Amount:    req.Amount,
		Detail:    req.TransactionRef,
	})

	logger.Log.Infow("withdrawal approved",
		"request_id", requestID, "admin_id", adminID, "amount", req.Amount)
	return req, nil
}

// Reject declines a pending request. The wallet is never touched on this
// path; rejection is balance-neutral.
func (s *WithdrawalService) Reject(ctx context.Context, requestID, adminID uuid.UUID, reason string) (models.WithdrawalRequest, error) {
	release, err := s.locker.Acquire(ctx, locks.WithdrawalKey(requestID))
	if err != nil {
		return models.WithdrawalRequest{}, errors.Join(ErrStoreUnavailable, err)
	}
	defer release(ctx)

	var req models.WithdrawalRequest
	err = s.runner.Do(ctx, func(ctx context.Context) error {
		loaded, found, err := s.writes.GetForUpdate(ctx, requestID)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if !found {
			return ErrWithdrawalNotFound
		}
		if loaded.Status != models.WithdrawalPending {
			return ErrAlreadyProcessed
		}

		rows, err := s.writes.MarkRejected(ctx, requestID, adminID, reason)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if rows == 0 {
			return ErrAlreadyProcessed
		}

		loaded.Status = models.WithdrawalRejected
		loaded.RejectionReason = reason
		loaded.RejectedBy = uuid.NullUUID{UUID: adminID, Valid: true}
		req = loaded
		return nil
	})
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.auditor.Publish(ctx, audit.Event{
		Type:      audit.EventWithdrawalRejected,
		OwnerID:   req.UserID.String(),
		OwnerKind: string(req.UserKind),
		RequestID: requestID.String(),
		ActorID:   adminID.String(),
		Amount:    req.Amount,
		Detail:    reason,
	})

	logger.Log.Infow("withdrawal rejected",
		"request_id", requestID, "admin_id", adminID, "reason", reason)
	return req, nil
}

// advanceable lists the manual ops overrides permitted out of each
// non-terminal post-approval state.
var advanceable = map[models.WithdrawalStatus][]models.WithdrawalStatus{
	models.WithdrawalApproved:   {models.WithdrawalProcessing, models.WithdrawalCompleted, models.WithdrawalFailed},
	models.WithdrawalProcessing: {models.WithdrawalCompleted, models.WithdrawalFailed},
}

// Advance moves an approved request along the payout pipeline
// (approved -> processing -> completed | failed). Terminal states never
// transition again.
func (s *WithdrawalService) Advance(ctx context.Context, requestID, adminID uuid.UUID, to models.WithdrawalStatus) (models.WithdrawalRequest, error) {
	release, err := s.locker.Acquire(ctx, locks.WithdrawalKey(requestID))
	if err != nil {
		return models.WithdrawalRequest{}, errors.Join(ErrStoreUnavailable, err)
	}
	defer release(ctx)

	var req models.WithdrawalRequest
	err = s.runner.Do(ctx, func(ctx context.Context) error {
		loaded, found, err := s.writes.GetForUpdate(ctx, requestID)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if !found {
			return ErrWithdrawalNotFound
		}
		if !transitionAllowed(loaded.Status, to) {
			return ErrAlreadyProcessed
		}

		rows, err := s.writes.UpdateStatus(ctx, requestID, loaded.Status, to)
		if err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		if rows == 0 {
			return ErrAlreadyProcessed
		}

		loaded.Status = to
		req = loaded
		return nil
	})
	if err != nil {
		return models.WithdrawalRequest{}, err
	}

	s.auditor.Publish(ctx, audit.Event{
		Type:      audit.EventWithdrawalAdvanced,
		OwnerID:   req.UserID.String(),
		OwnerKind: string(req.UserKind),
		RequestID: requestID.String(),
		ActorID:   adminID.String(),
		Amount:    req.Amount,
		Detail:    string(to),
	})

	logger.Log.Infow("withdrawal advanced",
		"request_id", requestID, "admin_id", adminID, "to", to)
	return req, nil
}

func transitionAllowed(from, to models.WithdrawalStatus) bool {
	for _, t := range advanceable[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Get returns one request by id.
func (s *WithdrawalService) Get(ctx context.Context, requestID uuid.UUID) (models.WithdrawalRequest, error) {
	req, found, err := s.reads.GetByID(ctx, requestID)
	if err != nil {
		return models.WithdrawalRequest{}, errors.Join(ErrStoreUnavailable, err)
	}
	if !found {
		return models.WithdrawalRequest{}, ErrWithdrawalNotFound
	}
	return req, nil
}

// List returns one page of requests with pagination totals.
func (s *WithdrawalService) List(ctx context.Context, f models.WithdrawalFilter, page, limit int) (WithdrawalPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	items, total, err := s.reads.List(ctx, f, page, limit)
	if err != nil {
		return WithdrawalPage{}, errors.Join(ErrStoreUnavailable, err)
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return WithdrawalPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
