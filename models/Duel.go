package models

import "time"

// DuelStatus represents the lifecycle state of a duel
type DuelStatus string

const (
	DuelStatusPending   DuelStatus = "pending"
	DuelStatusActive    DuelStatus = "active"
	DuelStatusCompleted DuelStatus = "completed"
	DuelStatusDeclined  DuelStatus = "declined"
	DuelStatusExpired   DuelStatus = "expired"
)

// IsTerminal returns true when no further transition is permitted from the status
func (s DuelStatus) IsTerminal() bool {
	return s == DuelStatusCompleted || s == DuelStatusDeclined || s == DuelStatusExpired
}

// Duel represents one two-player word challenge over a frozen word snapshot
type Duel struct {
	ID               string      `gorm:"type:uuid;primary_key" json:"id"`
	ChallengerID     string      `gorm:"type:uuid;not null;index;column:challenger_id" json:"challenger_id"`
	OpponentID       string      `gorm:"type:uuid;not null;index;column:opponent_id" json:"opponent_id"`
	Status           DuelStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	WordCount        int         `gorm:"type:integer;not null;column:word_count" json:"word_count"`
	ChallengerScore  int         `gorm:"type:integer;not null;default:0;column:challenger_score" json:"challenger_score"`
	OpponentScore    int         `gorm:"type:integer;not null;default:0;column:opponent_score" json:"opponent_score"`
	ChallengerTimeMs int64       `gorm:"type:bigint;not null;default:0;column:challenger_time_ms" json:"challenger_time_ms"`
	OpponentTimeMs   int64       `gorm:"type:bigint;not null;default:0;column:opponent_time_ms" json:"opponent_time_ms"`
	WinnerID         *string     `gorm:"type:uuid;column:winner_id" json:"winner_id"`
	ExpiresAt        time.Time   `gorm:"not null;column:expires_at" json:"expires_at"`
	StartedAt        *time.Time  `gorm:"column:started_at" json:"started_at"`
	CompletedAt      *time.Time  `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt        time.Time   `gorm:"not null;column:created_at" json:"created_at"`
	Words            []*DuelWord `gorm:"foreignKey:DuelID" json:"words,omitempty"`
}

// IsParticipant reports whether the given user is one of the duel's two players
func (d *Duel) IsParticipant(userID string) bool {
	return userID == d.ChallengerID || userID == d.OpponentID
}

// EffectiveStatus applies the lazy-expiry projection: a pending duel past its
// expiry window reads as expired even though the row has not been rewritten
func (d *Duel) EffectiveStatus(now time.Time) DuelStatus {
	if d.Status == DuelStatusPending && now.After(d.ExpiresAt) {
		return DuelStatusExpired
	}
	return d.Status
}
