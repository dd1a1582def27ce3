// Package outboxrepo persists export outbox records in "export_outbox".
package outboxrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// RecordDTO is one pending, sent or parked export. A row is due when
// sent_at is NULL and next_attempt_at has passed; parked rows have both NULL.
type RecordDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload       string     `gorm:"type:jsonb;not null"`
	Attempts      int        `gorm:"not null;default:0"`
	LastError     string     `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time  `gorm:"not null"`
	NextAttemptAt *time.Time `gorm:"index"`
	SentAt        *time.Time
}

func (RecordDTO) TableName() string {
	return "export_outbox"
}

func fromDomain(r *outbox.Record) RecordDTO {
	return RecordDTO{
		ID:            r.ID().Bytes(),
		OrderID:       r.OrderID().Bytes(),
		Payload:       string(r.Payload()),
		Attempts:      r.Attempts(),
		LastError:     r.LastError(),
		CreatedAt:     r.CreatedAt(),
		NextAttemptAt: r.NextAttemptAt(),
		SentAt:        r.SentAt(),
	}
}

func toDomain(dto RecordDTO) (*outbox.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreRecord(
		id,
		orderID,
		[]byte(dto.Payload),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.NextAttemptAt,
		dto.SentAt,
	)
}
