package statusrepo

import (
	"context"
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/status"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormStatusRepository creates a new GORM status registry repository.
func NewGormStatusRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusRepository {
	return &GormStatusRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new registry entry to the database.
func (r *GormStatusRepository) Add(ctx context.Context, aggregate *status.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing registry entry to the database.
// The active column is selected explicitly so deactivation is not skipped as
// a zero value by GORM's struct updates.
func (r *GormStatusRepository) Update(ctx context.Context, aggregate *status.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StatusDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "classification_code", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a registry entry by ID.
func (r *GormStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ResolveActive retrieves the active entry matching (distributor, name).
// Inactive entries are treated as absent.
func (r *GormStatusRepository) ResolveActive(ctx context.Context, distributor, name string) (*status.Entry, error) {
	if distributor == "" {
		return nil, errs.NewValueIsRequiredError("distributor")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	var dto StatusDTO
	err := r.db.WithContext(ctx).
		First(&dto, "distributor = ? AND name = ? AND active", distributor, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", fmt.Sprintf("%s/%s", distributor, name))
		}
		return nil, err
	}

	return toDomain(dto)
}
