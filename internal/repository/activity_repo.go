package repository

import (
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository read access to the activity log. Writes happen only
// inside DealRepository transactions; the log stays a derived record of
// actual state transitions.
type ActivityRepository interface {
	ListByDeal(dealID uint) ([]domain.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListByDeal(dealID uint) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.Where("deal_id = ?", dealID).
		Order("timestamp DESC, id DESC").
		Find(&activities).Error
	return activities, err
}
