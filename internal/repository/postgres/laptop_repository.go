package postgres

import (
	"context"
	"fmt"

	"github.com/ashlia0420/Laptop-Recommendation/domain"

	"gorm.io/gorm"
)

// LaptopRepository serves the cleaned catalog from a laptops table for
// deployments that keep the dataset in Postgres instead of shipping the
// CSV alongside the binary. Derived columns are expected to be populated
// at import time, same as the CSV path.
type LaptopRepository struct {
	DB *gorm.DB
}

func NewLaptopRepository(db *gorm.DB) *LaptopRepository {
	return &LaptopRepository{
		DB: db,
	}
}

func (r *LaptopRepository) FindAll(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var laptops []domain.Laptop
	if err := r.DB.WithContext(ctx).Order("id").Find(&laptops).Error; err != nil {
		return nil, fmt.Errorf("failed to load laptops: %w", err)
	}

	return laptops, nil
}
