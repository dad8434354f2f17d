package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the full schema so the
// repository transactions run against a real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "dealflow.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Deal{},
		&domain.Activity{},
		&domain.Memo{},
		&domain.MemoVersion{},
	))
	return db
}

func createTestDeal(t *testing.T, repo DealRepository, name string) *domain.Deal {
	t.Helper()

	deal := &domain.Deal{Name: name, OwnerID: 2, Stage: domain.StageSourced, Status: "active"}
	activity := &domain.Activity{
		UserID:      2,
		Type:        domain.ActivityCreated,
		Description: "Deal '" + name + "' created by analyst@dealflow.dev",
	}
	require.NoError(t, repo.Create(deal, activity))
	return deal
}

func TestDealRepoCreate_WritesDealAndActivityTogether(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)

	deal := &domain.Deal{Name: "Acme", OwnerID: 2, Stage: domain.StageSourced, Status: "active"}
	activity := &domain.Activity{UserID: 2, Type: domain.ActivityCreated, Description: "Deal 'Acme' created by analyst@dealflow.dev"}

	assert.NoError(t, repo.Create(deal, activity))
	assert.NotZero(t, deal.ID)
	assert.Equal(t, deal.ID, activity.DealID)

	var count int64
	db.Model(&domain.Activity{}).Where("deal_id = ?", deal.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDealRepoUpdateFields_CommitsActivityWithDealRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)
	deal := createTestDeal(t, repo, "Acme")

	activity := &domain.Activity{
		DealID:      deal.ID,
		UserID:      2,
		Type:        domain.ActivityStageChange,
		Description: "Moved from Sourced to Diligence",
	}
	err := repo.UpdateFields(deal.ID, map[string]interface{}{"stage": domain.StageDiligence}, activity)
	assert.NoError(t, err)

	got, err := repo.FindByID(deal.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StageDiligence, got.Stage)

	var count int64
	db.Model(&domain.Activity{}).
		Where("deal_id = ? AND type = ?", deal.ID, domain.ActivityStageChange).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDealRepoUpdateFields_FailedActivityRollsBackDeal(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)
	deal := createTestDeal(t, repo, "Acme")

	// Block the activity insert so the paired deal update must roll back
	require.NoError(t, db.Exec(
		`CREATE TRIGGER block_activities BEFORE INSERT ON activities
		 BEGIN SELECT RAISE(ABORT, 'blocked'); END`,
	).Error)

	activity := &domain.Activity{
		DealID:      deal.ID,
		UserID:      2,
		Type:        domain.ActivityStageChange,
		Description: "Moved from Sourced to IC",
	}
	err := repo.UpdateFields(deal.ID, map[string]interface{}{"stage": domain.StageIC}, activity)
	assert.Error(t, err)

	got, err := repo.FindByID(deal.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StageSourced, got.Stage)
}

func TestDealRepoUpdateFields_ValueIdenticalPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)
	deal := createTestDeal(t, repo, "Acme")

	// Re-sending the stored values must not read as a missing deal
	err := repo.UpdateFields(deal.ID, map[string]interface{}{"name": "Acme"}, nil)
	assert.NoError(t, err)
}

func TestDealRepoUpdateFields_MissingDeal(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)

	err := repo.UpdateFields(999, map[string]interface{}{"name": "Ghost"}, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDealRepoDelete_CascadesChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewDealRepository(db)
	memoRepo := NewMemoRepository(db)
	deal := createTestDeal(t, repo, "Acme")

	memo, err := memoRepo.GetOrCreate(deal.ID)
	require.NoError(t, err)
	_, err = memoRepo.SaveVersion(memo.ID, `{"summary":"v1"}`, 2)
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(deal.ID))

	var count int64
	db.Model(&domain.Deal{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&domain.Activity{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&domain.Memo{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&domain.MemoVersion{}).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(deal.ID), gorm.ErrRecordNotFound)
}
