package outboxrepo

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, record *outbox.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchDue claims due records with FOR UPDATE SKIP LOCKED. The rows stay
// locked until the surrounding transaction ends, so a second relay running
// at the same time picks other records.
func (r *GormOutboxRepository) FetchDue(ctx context.Context, now time.Time, limit int) ([]*outbox.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL AND next_attempt_at IS NOT NULL AND next_attempt_at <= ?", now).
		Order("next_attempt_at, created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*outbox.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recErr := toDomain(dto)
		if recErr != nil {
			return nil, recErr
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, record *outbox.Record) error {
	return r.save(ctx, record)
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, record *outbox.Record) error {
	return r.save(ctx, record)
}

func (r *GormOutboxRepository) save(ctx context.Context, record *outbox.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"attempts":        dto.Attempts,
			"last_error":      dto.LastError,
			"next_attempt_at": dto.NextAttemptAt,
			"sent_at":         dto.SentAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("export record", record.ID().String())
	}
	return nil
}
