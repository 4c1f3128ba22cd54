package services

import (
	"fmt"
	"time"

	"api/database"
	"api/models"

	"github.com/google/uuid"
)

// SampleWords draws a uniformly random subset of n words from the owner's
// vocabulary, without replacement. Returns ErrInsufficientWords when the
// vocabulary is too small.
func SampleWords(ownerID string, n int) ([]models.Word, error) {
	var words []models.Word
	err := database.DB.
		Where("owner_id = ?", ownerID).
		Order("RANDOM()").
		Limit(n).
		Find(&words).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample words: %w", err)
	}
	if len(words) < n {
		return nil, ErrInsufficientWords
	}
	return words, nil
}

// CreateWord adds one vocabulary entry for the owner
func CreateWord(ownerID, prompt, answer string) (*models.Word, error) {
	word := models.Word{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Prompt:    prompt,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&word).Error; err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}
	return &word, nil
}

// ListWords returns the owner's vocabulary in alphabetical prompt order
func ListWords(ownerID string) ([]models.Word, error) {
	var words []models.Word
	err := database.DB.
		Where("owner_id = ?", ownerID).
		Order("prompt ASC").
		Find(&words).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch words: %w", err)
	}
	return words, nil
}
