// Package outbox models the export handoff written alongside an archival.
// A Record is created in the archiving transaction and relayed to the
// exporter afterwards, so an export failure never undoes the archival.
package outbox

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// maxErrorLength bounds the stored failure message.
const maxErrorLength = 1024

// Record is one pending, sent or parked export of an archived order.
// A nil NextAttemptAt with a nil SentAt means the record is parked and
// will not be retried.
type Record struct {
	id            kernel.UUID
	orderID       kernel.UUID
	payload       []byte
	attempts      int
	lastError     string
	createdAt     time.Time
	nextAttemptAt *time.Time
	sentAt        *time.Time

	guard guard.ConstructorGuard
}

// NewRecord captures the snapshot of an archived order, due immediately.
func NewRecord(id kernel.UUID, snapshot order.Snapshot, now time.Time) (*Record, error) {
	orderID, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}

	due := now
	return &Record{
		id:            id,
		orderID:       orderID,
		payload:       payload,
		createdAt:     now,
		nextAttemptAt: &due,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord rebuilds a record from storage.
func RestoreRecord(
	id, orderID kernel.UUID,
	payload []byte,
	attempts int,
	lastError string,
	createdAt time.Time,
	nextAttemptAt, sentAt *time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}
	if attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, "unbounded")
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		payload:       payload,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		nextAttemptAt: nextAttemptAt,
		sentAt:        sentAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Record) Payload() []byte {
	return r.payload
}

func (r *Record) Attempts() int {
	return r.attempts
}

func (r *Record) LastError() string {
	return r.lastError
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) NextAttemptAt() *time.Time {
	return r.nextAttemptAt
}

func (r *Record) SentAt() *time.Time {
	return r.sentAt
}

// Snapshot decodes the stored order snapshot.
func (r *Record) Snapshot() (order.Snapshot, error) {
	var s order.Snapshot
	if err := json.Unmarshal(r.payload, &s); err != nil {
		return order.Snapshot{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return s, nil
}

// IsParked reports whether the record gave up retrying.
func (r *Record) IsParked() bool {
	return r.sentAt == nil && r.nextAttemptAt == nil
}

// MarkSent records a successful export.
func (r *Record) MarkSent(now time.Time) {
	r.attempts++
	r.lastError = ""
	r.sentAt = &now
	r.nextAttemptAt = nil
}

// MarkFailed records a failed export and schedules the next attempt if the
// policy still allows one; otherwise the record is parked.
func (r *Record) MarkFailed(cause error, now time.Time, policy RetryPolicy) {
	r.attempts++
	r.lastError = truncate(cause.Error(), maxErrorLength)

	if !policy.AllowsRetry(r.attempts) {
		r.nextAttemptAt = nil
		return
	}
	next := now.Add(policy.Backoff(r.attempts))
	r.nextAttemptAt = &next
}

// truncate cuts s to at most n bytes of valid UTF-8. The column is text,
// which rejects broken sequences.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
