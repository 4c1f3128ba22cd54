package models

import "time"

// DuelResponse is one participant's timed answer to one word of a duel.
// The unique index enforces the append-once invariant: a player answers a
// given word exactly once, re-submissions are rejected at the schema level.
type DuelResponse struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	DuelID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_duel_user_word;column:duel_id" json:"duel_id"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_duel_user_word;column:user_id" json:"user_id"`
	WordIndex      int       `gorm:"type:integer;not null;uniqueIndex:idx_duel_user_word;column:word_index" json:"word_index"`
	IsCorrect      bool      `gorm:"not null;column:is_correct" json:"is_correct"`
	ResponseTimeMs int64     `gorm:"type:bigint;not null;column:response_time_ms" json:"response_time_ms"`
	SubmittedAt    time.Time `gorm:"not null;column:submitted_at" json:"submitted_at"`
}
