package services

import (
	"fmt"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DuelService owns the duel lifecycle: challenge creation, accept/decline,
// answer ingestion and finalization. All coordination between the two
// players happens through the duel row; contended transitions use
// conditional updates keyed on the expected prior status, so concurrent
// callers can never both win a terminal transition.
type DuelService struct {
	Notifier    DuelNotifier
	Leaderboard *LeaderboardService
	Settings    config.DuelSettings
}

// NewDuelService wires a duel service with its notification boundary.
// A nil notifier or leaderboard disables the respective side effect.
func NewDuelService(notifier DuelNotifier, leaderboard *LeaderboardService) *DuelService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &DuelService{
		Notifier:    notifier,
		Leaderboard: leaderboard,
		Settings:    config.DefaultDuelSettings,
	}
}

// CreateChallenge creates a pending duel against the opponent over a frozen
// random sample of the challenger's vocabulary
func (s *DuelService) CreateChallenge(challengerID, opponentID string, wordCount int) (*models.Duel, error) {
	if challengerID == opponentID {
		return nil, ErrSelfChallenge
	}
	if wordCount < s.Settings.MinWordCount || wordCount > s.Settings.MaxWordCount {
		return nil, ErrInvalidWordCount
	}

	words, err := SampleWords(challengerID, wordCount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	duel := models.Duel{
		ID:           uuid.NewString(),
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		Status:       models.DuelStatusPending,
		WordCount:    wordCount,
		ExpiresAt:    now.Add(s.Settings.InviteWindow),
		CreatedAt:    now,
	}
	for i, word := range words {
		duel.Words = append(duel.Words, &models.DuelWord{
			ID:             uuid.NewString(),
			DuelID:         duel.ID,
			Position:       i,
			WordID:         word.ID,
			Prompt:         word.Prompt,
			ExpectedAnswer: word.Answer,
		})
	}

	// The duel and its word snapshot are written atomically
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&duel).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create duel: %w", err)
	}

	metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusPending)).Inc()
	s.notifyParticipants(EventDuelInvite, &duel)
	return &duel, nil
}

// Accept transitions a pending duel to active. Only the invited opponent
// may accept, and only while the invite window is open.
func (s *DuelService) Accept(duelID, actorID string) (*models.Duel, error) {
	duel, err := s.guardPendingTransition(duelID, actorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := database.DB.Model(&models.Duel{}).
		Where("id = ? AND status = ?", duel.ID, models.DuelStatusPending).
		Updates(map[string]interface{}{
			"status":     models.DuelStatusActive,
			"started_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to accept duel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost the race: someone else moved the duel out of pending
		return nil, s.pendingRaceError(duel.ID)
	}

	metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusActive)).Inc()

	updated, err := s.GetDuel(duel.ID)
	if err != nil {
		return nil, err
	}
	s.notifyParticipants(EventDuelAccepted, updated)
	return updated, nil
}

// Decline transitions a pending duel to declined (terminal)
func (s *DuelService) Decline(duelID, actorID string) (*models.Duel, error) {
	duel, err := s.guardPendingTransition(duelID, actorID)
	if err != nil {
		return nil, err
	}

	res := database.DB.Model(&models.Duel{}).
		Where("id = ? AND status = ?", duel.ID, models.DuelStatusPending).
		Update("status", models.DuelStatusDeclined)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to decline duel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.pendingRaceError(duel.ID)
	}

	metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusDeclined)).Inc()

	updated, err := s.GetDuel(duel.ID)
	if err != nil {
		return nil, err
	}
	s.notifyParticipants(EventDuelDeclined, updated)
	return updated, nil
}

// guardPendingTransition validates the actor and status for accept/decline.
// A pending duel past its expiry window is moved to expired here, as the
// transition attempt is the first moment the staleness is observed.
func (s *DuelService) guardPendingTransition(duelID, actorID string) (*models.Duel, error) {
	var duel models.Duel
	if err := database.DB.First(&duel, "id = ?", duelID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to fetch duel: %w", err)
	}

	if actorID != duel.OpponentID {
		return nil, ErrUnauthorized
	}
	if duel.Status != models.DuelStatusPending {
		return nil, ErrUnauthorized
	}
	if time.Now().UTC().After(duel.ExpiresAt) {
		s.markExpired(duel.ID)
		return nil, ErrExpired
	}

	return &duel, nil
}

// markExpired persists the lazy expiry of a stale pending duel. The pending
// guard makes it a no-op when a concurrent accept already won.
func (s *DuelService) markExpired(duelID string) {
	res := database.DB.Model(&models.Duel{}).
		Where("id = ? AND status = ?", duelID, models.DuelStatusPending).
		Update("status", models.DuelStatusExpired)
	if res.Error == nil && res.RowsAffected > 0 {
		metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusExpired)).Inc()
	}
}

// pendingRaceError re-reads a duel after a failed pending-guarded update and
// maps the observed state to the right error
func (s *DuelService) pendingRaceError(duelID string) error {
	var duel models.Duel
	if err := database.DB.First(&duel, "id = ?", duelID).Error; err != nil {
		return ErrDuelNotFound
	}
	if duel.EffectiveStatus(time.Now().UTC()) == models.DuelStatusExpired {
		return ErrExpired
	}
	return ErrUnauthorized
}

// GetDuel fetches one duel with its word snapshot, applying the lazy-expiry
// projection on the read path
func (s *DuelService) GetDuel(duelID string) (*models.Duel, error) {
	var duel models.Duel
	err := database.DB.Preload("Words", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&duel, "id = ?", duelID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to fetch duel: %w", err)
	}

	duel.Status = duel.EffectiveStatus(time.Now().UTC())
	return &duel, nil
}

// ListUserDuels returns every duel the user participates in, newest first
func (s *DuelService) ListUserDuels(userID string) ([]models.Duel, error) {
	var duels []models.Duel
	err := database.DB.
		Where("challenger_id = ? OR opponent_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&duels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duels: %w", err)
	}

	now := time.Now().UTC()
	for i := range duels {
		duels[i].Status = duels[i].EffectiveStatus(now)
	}
	return duels, nil
}

// notifyParticipants pushes a lifecycle event to both players, best-effort
func (s *DuelService) notifyParticipants(event string, duel *models.Duel) {
	s.Notifier.Notify(event, duel, []string{duel.ChallengerID, duel.OpponentID})
}
