package service

import (
	"errors"
	"fmt"

	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/internal/metrics"
	"github.com/vantagevc/dealflow-backend/internal/repository"
	"gorm.io/gorm"
)

// DealService deal pipeline business logic
type DealService interface {
	Create(req *domain.CreateDealRequest, actor *domain.Actor) (*domain.Deal, error)
	Get(id uint) (*domain.Deal, error)
	List() ([]domain.Deal, error)
	Update(id uint, patch *domain.UpdateDealRequest, actor *domain.Actor) (*domain.Deal, error)
	Delete(id uint, actor *domain.Actor) error
	ListActivities(dealID uint) ([]domain.Activity, error)
}

type dealService struct {
	dealRepo     repository.DealRepository
	activityRepo repository.ActivityRepository
}

// NewDealService creates a new DealService
func NewDealService(dealRepo repository.DealRepository, activityRepo repository.ActivityRepository) DealService {
	return &dealService{
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
	}
}

// Create stores a new deal owned by the actor and logs a "created"
// activity in the same transaction.
func (s *dealService) Create(req *domain.CreateDealRequest, actor *domain.Actor) (*domain.Deal, error) {
	deal := &domain.Deal{
		Name:       req.Name,
		CompanyURL: req.CompanyURL,
		OwnerID:    actor.ID,
		Stage:      domain.StageSourced,
		Round:      req.Round,
		CheckSize:  req.CheckSize,
		Status:     "active",
	}
	if req.Stage != nil {
		if !req.Stage.IsValid() {
			return nil, common.ErrInvalidStage
		}
		deal.Stage = *req.Stage
	}
	if req.Status != nil {
		deal.Status = *req.Status
	}

	activity := &domain.Activity{
		UserID:      actor.ID,
		Type:        domain.ActivityCreated,
		Description: fmt.Sprintf("Deal '%s' created by %s", deal.Name, actor.Email),
	}

	if err := s.dealRepo.Create(deal, activity); err != nil {
		return nil, err
	}

	metrics.DealsCreated.Inc()
	return deal, nil
}

func (s *dealService) Get(id uint) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrDealNotFound
		}
		return nil, err
	}
	return deal, nil
}

func (s *dealService) List() ([]domain.Deal, error) {
	return s.dealRepo.FindAll()
}

// Update applies a partial update. Only fields present in the patch are
// written; everything else keeps its stored value. When the patch moves
// the stage to a different value, exactly one "stage_change" activity is
// committed together with the deal row.
func (s *dealService) Update(id uint, patch *domain.UpdateDealRequest, actor *domain.Actor) (*domain.Deal, error) {
	// 1. Load existing deal
	deal, err := s.dealRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrDealNotFound
		}
		return nil, err
	}

	// 2. Remember the stage before the patch
	oldStage := deal.Stage

	// 3. Collect only the patched fields
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.CompanyURL != nil {
		fields["company_url"] = *patch.CompanyURL
	}
	if patch.Round != nil {
		fields["round"] = *patch.Round
	}
	if patch.CheckSize != nil {
		fields["check_size"] = *patch.CheckSize
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Stage != nil {
		if !patch.Stage.IsValid() {
			return nil, common.ErrInvalidStage
		}
		fields["stage"] = *patch.Stage
	}

	// 4. Stage change gets its activity entry, committed atomically with
	// the deal update
	var activity *domain.Activity
	if patch.Stage != nil && *patch.Stage != oldStage {
		activity = &domain.Activity{
			DealID:      deal.ID,
			UserID:      actor.ID,
			Type:        domain.ActivityStageChange,
			Description: fmt.Sprintf("Moved from %s to %s", oldStage, *patch.Stage),
		}
	}

	if err := s.dealRepo.UpdateFields(id, fields, activity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrDealNotFound
		}
		return nil, err
	}

	if activity != nil {
		metrics.StageChanges.WithLabelValues(string(oldStage), string(*patch.Stage)).Inc()
	}

	return s.dealRepo.FindByID(id)
}

// Delete removes a deal and its dependent rows. Admin only.
func (s *dealService) Delete(id uint, actor *domain.Actor) error {
	if !actor.IsAdmin() {
		return common.ErrForbidden
	}

	if err := s.dealRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrDealNotFound
		}
		return err
	}

	metrics.DealsDeleted.Inc()
	return nil
}

// ListActivities returns the deal's activity log, newest first
func (s *dealService) ListActivities(dealID uint) ([]domain.Activity, error) {
	return s.activityRepo.ListByDeal(dealID)
}
