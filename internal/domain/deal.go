package domain

import "time"

// Stage is the pipeline phase of a deal
type Stage string

// Pipeline stages. Transitions are free-form: any stage may move to any
// other, but every change is recorded as an activity.
const (
	StageSourced   Stage = "Sourced"
	StageScreen    Stage = "Screen"
	StageDiligence Stage = "Diligence"
	StageIC        Stage = "IC"
	StageInvested  Stage = "Invested"
	StagePassed    Stage = "Passed"
)

// IsValid reports whether the stage is a member of the pipeline enum
func (s Stage) IsValid() bool {
	switch s {
	case StageSourced, StageScreen, StageDiligence, StageIC, StageInvested, StagePassed:
		return true
	}
	return false
}

// Deal represents a tracked investment opportunity
type Deal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	CompanyURL *string   `gorm:"size:500" json:"company_url,omitempty"`
	OwnerID    uint      `gorm:"index" json:"owner_id"`
	Stage      Stage     `gorm:"size:20;default:Sourced" json:"stage"`
	Round      *string   `gorm:"size:50" json:"round,omitempty"`
	CheckSize  *float64  `json:"check_size,omitempty"`
	Status     string    `gorm:"size:50;default:active" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name
func (Deal) TableName() string {
	return "deals"
}

// CreateDealRequest is the payload for creating a deal
type CreateDealRequest struct {
	Name       string   `json:"name" binding:"required"`
	CompanyURL *string  `json:"company_url"`
	Stage      *Stage   `json:"stage"`
	Round      *string  `json:"round"`
	CheckSize  *float64 `json:"check_size"`
	Status     *string  `json:"status"`
}

// UpdateDealRequest is a partial update: nil fields are left untouched
type UpdateDealRequest struct {
	Name       *string  `json:"name"`
	CompanyURL *string  `json:"company_url"`
	Stage      *Stage   `json:"stage"`
	Round      *string  `json:"round"`
	CheckSize  *float64 `json:"check_size"`
	Status     *string  `json:"status"`
}
