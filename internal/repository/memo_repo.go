package repository

import (
	"errors"

	"github.com/vantagevc/dealflow-backend/internal/domain"
	"gorm.io/gorm"
)

// MemoRepository memo and memo-version data access. Versions are append
// only: SaveVersion is the single write path and it never touches existing
// version rows.
type MemoRepository interface {
	FindByDealID(dealID uint) (*domain.Memo, error)
	GetOrCreate(dealID uint) (*domain.Memo, error)
	SaveVersion(memoID uint, content string, authorID uint) (*domain.MemoVersion, error)
	FindVersion(id uint) (*domain.MemoVersion, error)
	ListVersions(memoID uint) ([]domain.MemoVersion, error)
}

type memoRepository struct {
	db *gorm.DB
}

// NewMemoRepository creates a new MemoRepository
func NewMemoRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

func (r *memoRepository) FindByDealID(dealID uint) (*domain.Memo, error) {
	var memo domain.Memo
	err := r.db.Where("deal_id = ?", dealID).First(&memo).Error
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

// GetOrCreate returns the deal's memo, creating it on first use. Two
// concurrent first saves race on the insert; the unique index on deal_id
// rejects the loser, which then re-reads the winner's row.
func (r *memoRepository) GetOrCreate(dealID uint) (*domain.Memo, error) {
	memo, err := r.FindByDealID(dealID)
	if err == nil {
		return memo, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	memo = &domain.Memo{DealID: dealID}
	if err := r.db.Create(memo).Error; err != nil {
		// Lost the create race: the unique index guarantees exactly one
		// row per deal, so the re-read must succeed.
		if existing, findErr := r.FindByDealID(dealID); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return memo, nil
}

// SaveVersion appends an immutable snapshot and moves the memo's current
// pointer to it in one transaction. A failure anywhere leaves the previous
// pointer valid; there is no state in which the pointer references a
// version that failed to commit.
func (r *memoRepository) SaveVersion(memoID uint, content string, authorID uint) (*domain.MemoVersion, error) {
	version := &domain.MemoVersion{
		MemoID:    memoID,
		Content:   content,
		CreatedBy: authorID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(version).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Memo{}).
			Where("id = ?", memoID).
			Update("current_version_id", version.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (r *memoRepository) FindVersion(id uint) (*domain.MemoVersion, error) {
	var version domain.MemoVersion
	err := r.db.First(&version, id).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *memoRepository) ListVersions(memoID uint) ([]domain.MemoVersion, error) {
	var versions []domain.MemoVersion
	err := r.db.Where("memo_id = ?", memoID).
		Order("created_at DESC, id DESC").
		Find(&versions).Error
	return versions, err
}
