package service

import (
	"encoding/json"
	"errors"

	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/internal/metrics"
	"github.com/vantagevc/dealflow-backend/internal/repository"
	"gorm.io/gorm"
)

// MemoService versioned memo business logic. A memo is an append-only
// chain of immutable content snapshots plus a movable current pointer on
// the memo row; "what is the memo now" is always a pointer lookup, never
// "the newest row in the chain".
type MemoService interface {
	GetCurrent(dealID uint) (*domain.MemoResponse, error)
	Save(dealID uint, content map[string]interface{}, actor *domain.Actor) (uint, error)
	History(dealID uint) ([]domain.MemoVersion, error)
}

type memoService struct {
	memoRepo repository.MemoRepository
	dealRepo repository.DealRepository
}

// NewMemoService creates a new MemoService
func NewMemoService(memoRepo repository.MemoRepository, dealRepo repository.DealRepository) MemoService {
	return &memoService{
		memoRepo: memoRepo,
		dealRepo: dealRepo,
	}
}

// GetCurrent returns the content the memo's current pointer references.
// No memo yet means a nil response, not an error; a memo without a current
// version yields the empty-content placeholder.
func (s *memoService) GetCurrent(dealID uint) (*domain.MemoResponse, error) {
	memo, err := s.memoRepo.FindByDealID(dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := &domain.MemoResponse{
		ID:      memo.ID,
		DealID:  memo.DealID,
		Content: json.RawMessage(domain.EmptyMemoContent),
	}

	if memo.CurrentVersionID != nil {
		version, err := s.memoRepo.FindVersion(*memo.CurrentVersionID)
		if err != nil {
			return nil, err
		}
		resp.VersionID = &version.ID
		resp.Content = json.RawMessage(version.Content)
		resp.UpdatedAt = &version.CreatedAt
	}

	return resp, nil
}

// Save appends a new immutable version of the memo content and moves the
// current pointer to it. The memo row is created lazily on the first save.
func (s *memoService) Save(dealID uint, content map[string]interface{}, actor *domain.Actor) (uint, error) {
	// 1. The deal must exist
	if _, err := s.dealRepo.FindByID(dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.ErrDealNotFound
		}
		return 0, err
	}

	// 2. Get or lazily create the memo container
	memo, err := s.memoRepo.GetOrCreate(dealID)
	if err != nil {
		return 0, err
	}

	// 3. Serialize the opaque document payload. json.Marshal sorts map
	// keys, so equal documents produce equal payloads.
	payload, err := json.Marshal(content)
	if err != nil {
		return 0, common.ErrInvalidInput
	}

	// 4. Append the version and move the pointer (one transaction)
	version, err := s.memoRepo.SaveVersion(memo.ID, string(payload), actor.ID)
	if err != nil {
		return 0, err
	}

	metrics.MemoSaves.Inc()
	return version.ID, nil
}

// History returns the full version chain for the deal's memo, newest
// first. A deal without a memo has an empty history.
func (s *memoService) History(dealID uint) ([]domain.MemoVersion, error) {
	memo, err := s.memoRepo.FindByDealID(dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.MemoVersion{}, nil
		}
		return nil, err
	}
	return s.memoRepo.ListVersions(memo.ID)
}
