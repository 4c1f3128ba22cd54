package duels

import (
	"net/http"

	"api/services"

	"github.com/gin-gonic/gin"
)

// Error messages
const (
	ErrDuelNotFound       = "Duel not found"
	ErrInvalidRequest     = "Invalid request data"
	ErrNotAllowed         = "User is not allowed to perform this duel action"
	ErrChallengeExpired   = "Challenge has expired"
	ErrDuelNotActive      = "Duel is not active"
	ErrAlreadyAnswered    = "This word has already been answered"
	ErrNotEnoughWords     = "Not enough words in your vocabulary for this duel size"
	ErrSelfChallenge      = "You cannot challenge yourself"
	ErrBadWordCount       = "Word count out of range"
	ErrBadWordIndex       = "Word index out of range"
	ErrNotParticipant     = "User is not a participant of this duel"
	ErrFailedFetchDuels   = "Failed to fetch duels"
	ErrFailedExport       = "Failed to export duel data"
	ErrLeaderboardOffline = "Leaderboard is not available"
)

// CreateDuelRequest model for creating a challenge
type CreateDuelRequest struct {
	OpponentID string `json:"opponent_id" binding:"required"`
	WordCount  int    `json:"word_count" binding:"required,gt=0"`
}

// SubmitAnswerRequest model for submitting one timed answer.
// WordIndex is a pointer so index 0 survives required-field validation.
type SubmitAnswerRequest struct {
	DuelID         string `json:"duel_id" binding:"required"`
	WordIndex      *int   `json:"word_index" binding:"required"`
	IsCorrect      bool   `json:"is_correct"`
	ResponseTimeMs int64  `json:"response_time_ms" binding:"gte=0"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondWithServiceError maps duel service errors to HTTP responses
func respondWithServiceError(c *gin.Context, err error) {
	switch err {
	case services.ErrDuelNotFound:
		respondWithError(c, http.StatusNotFound, ErrDuelNotFound)
	case services.ErrSelfChallenge:
		respondWithError(c, http.StatusBadRequest, ErrSelfChallenge)
	case services.ErrInvalidWordCount:
		respondWithError(c, http.StatusBadRequest, ErrBadWordCount)
	case services.ErrInsufficientWords:
		respondWithError(c, http.StatusBadRequest, ErrNotEnoughWords)
	case services.ErrUnauthorized:
		respondWithError(c, http.StatusUnauthorized, ErrNotAllowed)
	case services.ErrExpired:
		respondWithError(c, http.StatusGone, ErrChallengeExpired)
	case services.ErrNotActive:
		respondWithError(c, http.StatusConflict, ErrDuelNotActive)
	case services.ErrInvalidWordIndex:
		respondWithError(c, http.StatusBadRequest, ErrBadWordIndex)
	case services.ErrDuplicateResponse:
		respondWithError(c, http.StatusConflict, ErrAlreadyAnswered)
	default:
		respondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
