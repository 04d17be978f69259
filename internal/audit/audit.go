package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/deliverhub/wallet-ledger/internal/logger"
)

// Event types emitted by the financial core, one per state transition.
const (
	EventTransactionApplied  = "transaction_applied"
	EventWithdrawalSubmitted = "withdrawal_submitted"
	EventWithdrawalApproved  = "withdrawal_approved"
	EventWithdrawalRejected  = "withdrawal_rejected"
	EventWithdrawalAdvanced  = "withdrawal_advanced"
)

// Event is the audit record published for downstream consumers.
type Event struct {
	Type          string          `json:"type"`
	OwnerID       string          `json:"owner_id,omitempty"`
	OwnerKind     string          `json:"owner_kind,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	ActorID       string          `json:"actor_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Detail        string          `json:"detail,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher ships audit events to Kafka. Publishing is best-effort: a failed
// emit is logged and dropped, never allowed to roll back a financial
// transition that already committed.
type Publisher struct {
	writer KafkaWriter
}

func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish emits one event, fire-and-forget.
func (p *Publisher) Publish(ctx context.Context, e Event) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("audit writer not configured, skipping event", "type", e.Type)
		return
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "type", e.Type, "error", err)
		return
	}

	key := e.TransactionID
	if key == "" {
		key = e.RequestID
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "type", e.Type, "key", key, "error", err)
	} else {
		logger.Log.Infow("audit event published", "type", e.Type, "key", key)
	}
}
