package domain

import (
	"encoding/json"
	"time"
)

// EmptyMemoContent is returned when a memo exists but has no current
// version yet.
const EmptyMemoContent = "{}"

// Memo is the one-per-deal container for the investment write-up. The row
// itself carries no content; it only points at the authoritative version.
// The unique index on deal_id makes concurrent first saves collapse onto a
// single row.
type Memo struct {
	ID               uint  `gorm:"primaryKey" json:"id"`
	DealID           uint  `gorm:"uniqueIndex" json:"deal_id"`
	CurrentVersionID *uint `json:"current_version_id,omitempty"`
}

// TableName returns the table name
func (Memo) TableName() string {
	return "memos"
}

// MemoVersion is one immutable snapshot of a memo's content. Versions are
// appended on every save and never edited or removed; "latest" is always
// the pointer on the parent Memo, never the newest row by timestamp.
type MemoVersion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemoID    uint      `gorm:"index" json:"memo_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy uint      `json:"created_by"`
}

// TableName returns the table name
func (MemoVersion) TableName() string {
	return "memo_versions"
}

// MemoResponse is the current-content view of a memo
type MemoResponse struct {
	ID        uint            `json:"id"`
	DealID    uint            `json:"deal_id"`
	VersionID *uint           `json:"version_id,omitempty"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// SaveMemoResponse acknowledges a successful save
type SaveMemoResponse struct {
	Status    string `json:"status"`
	VersionID uint   `json:"version_id"`
}
