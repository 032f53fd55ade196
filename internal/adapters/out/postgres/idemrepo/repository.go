// Package idemrepo persists idempotency records keyed by (scope, key).
package idemrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wms/internal/core/domain/model/idempotency"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

// RecordDTO represents the database structure for idempotency records.
// The composite primary key makes concurrent inserts of the same pair fail
// with a duplicate-key error, which Add translates for the caller.
type RecordDTO struct {
	Scope        string `gorm:"primaryKey"`
	Key          string `gorm:"primaryKey"`
	RequestHash  string
	ResponseJSON string
	CreatedAt    time.Time
}

// TableName specifies the database table name for idempotency records.
func (RecordDTO) TableName() string {
	return "idempotency_keys"
}

// GormIdempotencyStore implements IdempotencyStore using GORM.
type GormIdempotencyStore struct {
	db *gorm.DB
}

// NewGormIdempotencyStore creates a new GORM idempotency store.
func NewGormIdempotencyStore(db *gorm.DB) *GormIdempotencyStore {
	return &GormIdempotencyStore{db: db}
}

// Get retrieves the record for (scope, key).
func (s *GormIdempotencyStore) Get(ctx context.Context, scope, key string) (*idempotency.Record, error) {
	var dto RecordDTO
	err := s.db.WithContext(ctx).
		First(&dto, "scope = ? AND key = ?", scope, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("idempotencyKey", key)
		}
		return nil, err
	}

	return idempotency.RestoreRecord(
		dto.Scope,
		dto.Key,
		dto.RequestHash,
		json.RawMessage(dto.ResponseJSON),
		dto.CreatedAt,
	)
}

// Add inserts a new record, translating a duplicate insert into an
// idempotency conflict so the caller can re-read the winning record.
func (s *GormIdempotencyStore) Add(ctx context.Context, record *idempotency.Record) error {
	dto := RecordDTO{
		Scope:        record.Scope(),
		Key:          record.Key(),
		RequestHash:  record.RequestHash(),
		ResponseJSON: string(record.ResponseSnapshot()),
		CreatedAt:    record.CreatedAt(),
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIdempotencyConflictError(record.Scope(), record.Key())
		}
		return err
	}
	return nil
}
