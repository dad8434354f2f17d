package repository

import (
	"errors"
	"time"

	"github.com/vantagevc/dealflow-backend/internal/domain"
	"gorm.io/gorm"
)

// DealRepository deal data access. Mutations that must be paired with an
// activity entry take the entry as an argument and commit both rows in a
// single transaction, so a deal write can never land without its audit
// record.
type DealRepository interface {
	Create(deal *domain.Deal, activity *domain.Activity) error
	FindByID(id uint) (*domain.Deal, error)
	FindAll() ([]domain.Deal, error)
	UpdateFields(id uint, fields map[string]interface{}, activity *domain.Activity) error
	Delete(id uint) error
}

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

// Create inserts the deal and its "created" activity atomically. The
// activity's DealID is filled in from the generated primary key.
func (r *dealRepository) Create(deal *domain.Deal, activity *domain.Activity) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(deal).Error; err != nil {
			return err
		}
		activity.DealID = deal.ID
		return tx.Create(activity).Error
	})
}

func (r *dealRepository) FindByID(id uint) (*domain.Deal, error) {
	var deal domain.Deal
	err := r.db.First(&deal, id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) FindAll() ([]domain.Deal, error) {
	var deals []domain.Deal
	err := r.db.Order("created_at DESC").Find(&deals).Error
	return deals, err
}

// UpdateFields applies a partial update and, when activity is non-nil,
// appends it in the same transaction. Fields absent from the map keep
// their stored values.
func (r *dealRepository) UpdateFields(id uint, fields map[string]interface{}, activity *domain.Activity) error {
	fields["updated_at"] = time.Now().UTC()

	return r.db.Transaction(func(tx *gorm.DB) error {
		// MySQL reports zero affected rows for a value-identical patch,
		// so existence is checked explicitly instead of via RowsAffected.
		var count int64
		if err := tx.Model(&domain.Deal{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&domain.Deal{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		if activity != nil {
			return tx.Create(activity).Error
		}
		return nil
	})
}

// Delete removes the deal and cascades to its activities, memo and memo
// versions in one transaction, so no child row can outlive its deal.
func (r *dealRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var memo domain.Memo
		err := tx.Where("deal_id = ?", id).First(&memo).Error
		if err == nil {
			if err := tx.Where("memo_id = ?", memo.ID).Delete(&domain.MemoVersion{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&memo).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("deal_id = ?", id).Delete(&domain.Activity{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Deal{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
