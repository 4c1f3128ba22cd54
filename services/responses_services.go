package services

import (
	"fmt"
	"strings"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"

	"github.com/google/uuid"
)

// SubmitAnswer ingests one timed answer from a participant. The response is
// appended to the log, the player's totals are recomputed from the full log
// (safe against out-of-order delivery), and completion is re-evaluated.
// The returned duel reflects the state after ingestion, including a
// finalization triggered by this answer.
func (s *DuelService) SubmitAnswer(duelID, userID string, wordIndex int, isCorrect bool, responseTimeMs int64) (*models.Duel, error) {
	var duel models.Duel
	if err := database.DB.First(&duel, "id = ?", duelID).Error; err != nil {
		return nil, ErrDuelNotFound
	}

	if duel.EffectiveStatus(time.Now().UTC()) != models.DuelStatusActive {
		return nil, ErrNotActive
	}
	if !duel.IsParticipant(userID) {
		return nil, ErrUnauthorized
	}
	if wordIndex < 0 || wordIndex >= duel.WordCount {
		return nil, ErrInvalidWordIndex
	}

	response := models.DuelResponse{
		ID:             uuid.NewString(),
		DuelID:         duel.ID,
		UserID:         userID,
		WordIndex:      wordIndex,
		IsCorrect:      isCorrect,
		ResponseTimeMs: responseTimeMs,
		SubmittedAt:    time.Now().UTC(),
	}
	if err := database.DB.Create(&response).Error; err != nil {
		// The unique index on (duel_id, user_id, word_index) is the
		// authority on the append-once invariant, racing double submits
		// included
		if isUniqueViolation(err) {
			metrics.DuplicateResponses.Inc()
			return nil, ErrDuplicateResponse
		}
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	if err := s.refreshPlayerTotals(&duel, userID); err != nil {
		return nil, err
	}

	metrics.AnswersSubmitted.Inc()

	if err := s.maybeFinalize(&duel); err != nil {
		return nil, err
	}

	return s.GetDuel(duel.ID)
}

// GetUserResponses returns one participant's response log for a duel in
// word order
func (s *DuelService) GetUserResponses(duelID, userID string) ([]models.DuelResponse, error) {
	var responses []models.DuelResponse
	err := database.DB.
		Where("duel_id = ? AND user_id = ?", duelID, userID).
		Order("word_index ASC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch responses: %w", err)
	}
	return responses, nil
}

// refreshPlayerTotals recomputes one player's score and cumulative time from
// the full response log and persists them. Scores are derived, never
// incremented in place.
func (s *DuelService) refreshPlayerTotals(duel *models.Duel, userID string) error {
	score, timeMs, err := playerTotals(duel.ID, userID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"challenger_score":   score,
		"challenger_time_ms": timeMs,
	}
	if userID == duel.OpponentID {
		updates = map[string]interface{}{
			"opponent_score":   score,
			"opponent_time_ms": timeMs,
		}
	}

	if err := database.DB.Model(&models.Duel{}).Where("id = ?", duel.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update totals: %w", err)
	}
	return nil
}

// playerTotals derives (correct answers, cumulative time) from the response log
func playerTotals(duelID, userID string) (int, int64, error) {
	var score int64
	err := database.DB.Model(&models.DuelResponse{}).
		Where("duel_id = ? AND user_id = ? AND is_correct = ?", duelID, userID, true).
		Count(&score).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count correct responses: %w", err)
	}

	var timeMs int64
	err = database.DB.Model(&models.DuelResponse{}).
		Where("duel_id = ? AND user_id = ?", duelID, userID).
		Select("COALESCE(SUM(response_time_ms), 0)").
		Scan(&timeMs).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum response times: %w", err)
	}

	return int(score), timeMs, nil
}

// answeredCount counts the distinct word indexes a player has answered
func answeredCount(duelID, userID string) (int, error) {
	var count int64
	err := database.DB.Model(&models.DuelResponse{}).
		Where("duel_id = ? AND user_id = ?", duelID, userID).
		Distinct("word_index").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count answered words: %w", err)
	}
	return int(count), nil
}

// maybeFinalize completes the duel once both participants have answered
// every word. Both players' last answers may arrive interleaved, so two
// concurrent evaluations can both observe "both done"; the conditional
// update on status lets exactly one of them perform the transition. The
// loser of the race simply observes the completed row and does nothing —
// the winner is identical either way because it is derived from the full,
// by-then-complete response log through a deterministic resolver.
func (s *DuelService) maybeFinalize(duel *models.Duel) error {
	challengerAnswered, err := answeredCount(duel.ID, duel.ChallengerID)
	if err != nil {
		return err
	}
	opponentAnswered, err := answeredCount(duel.ID, duel.OpponentID)
	if err != nil {
		return err
	}
	if challengerAnswered < duel.WordCount || opponentAnswered < duel.WordCount {
		return nil
	}

	challengerScore, challengerTimeMs, err := playerTotals(duel.ID, duel.ChallengerID)
	if err != nil {
		return err
	}
	opponentScore, opponentTimeMs, err := playerTotals(duel.ID, duel.OpponentID)
	if err != nil {
		return err
	}

	winnerID := utils.ResolveWinner(
		duel.ChallengerID, duel.OpponentID,
		challengerScore, opponentScore,
		challengerTimeMs, opponentTimeMs,
	)

	now := time.Now().UTC()
	res := database.DB.Model(&models.Duel{}).
		Where("id = ? AND status = ?", duel.ID, models.DuelStatusActive).
		Updates(map[string]interface{}{
			"status":             models.DuelStatusCompleted,
			"winner_id":          winnerID,
			"completed_at":       now,
			"challenger_score":   challengerScore,
			"challenger_time_ms": challengerTimeMs,
			"opponent_score":     opponentScore,
			"opponent_time_ms":   opponentTimeMs,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to finalize duel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		metrics.FinalizationRaces.Inc()
		return nil
	}

	metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusCompleted)).Inc()

	completed, err := s.GetDuel(duel.ID)
	if err != nil {
		return err
	}
	s.notifyParticipants(EventDuelCompleted, completed)
	if s.Leaderboard != nil && winnerID != nil {
		s.Leaderboard.RecordWin(*winnerID)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
