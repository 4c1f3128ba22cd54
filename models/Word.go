package models

import "time"

// Word is one vocabulary entry owned by a user. Duels snapshot a random
// subset of the challenger's words at creation time.
type Word struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   string    `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Prompt    string    `gorm:"type:varchar(255);not null" json:"prompt"`
	Answer    string    `gorm:"type:varchar(255);not null" json:"answer"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}
