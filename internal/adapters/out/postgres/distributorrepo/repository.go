package distributorrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/distributor"

	"gorm.io/gorm"
)

// GormDistributorRepository implements DistributorRepository using GORM.
type GormDistributorRepository struct {
	db *gorm.DB
}

// NewGormDistributorRepository creates a new GORM distributor repository.
func NewGormDistributorRepository(db *gorm.DB) *GormDistributorRepository {
	return &GormDistributorRepository{db: db}
}

// GetByNames retrieves the distributors whose names appear in names.
// Unknown names are silently absent from the result.
func (r *GormDistributorRepository) GetByNames(ctx context.Context, names []string) ([]*distributor.Distributor, error) {
	if len(names) == 0 {
		return []*distributor.Distributor{}, nil
	}

	var dtos []DistributorDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "name IN ?", names).Error; err != nil {
		return nil, err
	}

	distributors := make([]*distributor.Distributor, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		distributors = append(distributors, d)
	}

	return distributors, nil
}
