package models

// DuelWord is one entry of a duel's frozen word snapshot. Rows are written
// once at duel creation and never updated, so both players are scored
// against the same fixed test even if the vocabulary changes afterwards.
type DuelWord struct {
	ID             string `gorm:"type:uuid;primary_key" json:"id"`
	DuelID         string `gorm:"type:uuid;not null;uniqueIndex:idx_duel_word_position;column:duel_id" json:"duel_id"`
	Position       int    `gorm:"type:integer;not null;uniqueIndex:idx_duel_word_position" json:"position"`
	WordID         string `gorm:"type:uuid;not null;column:word_id" json:"word_id"`
	Prompt         string `gorm:"type:varchar(255);not null" json:"prompt"`
	ExpectedAnswer string `gorm:"type:varchar(255);not null;column:expected_answer" json:"expected_answer"`
}
