package domain

import "time"

// Activity types written by the deal service. The log is derived from
// observed state transitions only; there is no free-form append API.
const (
	ActivityCreated     = "created"
	ActivityStageChange = "stage_change"
)

// Activity is an immutable, timestamped fact about a deal. Rows are never
// updated or deleted after creation.
type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DealID      uint      `gorm:"index" json:"deal_id"`
	UserID      uint      `json:"user_id"`
	Type        string    `gorm:"size:30" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// TableName returns the table name
func (Activity) TableName() string {
	return "activities"
}
