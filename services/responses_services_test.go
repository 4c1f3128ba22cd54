package services

import (
	"sync"
	"testing"

	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeDuel creates and accepts a duel so answers can flow
func activeDuel(t *testing.T, svc *DuelService, challenger, opponent string, wordCount int) *models.Duel {
	t.Helper()
	seedVocabulary(t, challenger, wordCount)

	duel, err := svc.CreateChallenge(challenger, opponent, wordCount)
	require.NoError(t, err)
	duel, err = svc.Accept(duel.ID, opponent)
	require.NoError(t, err)
	return duel
}

func TestSubmitAnswerHappyPath(t *testing.T) {
	svc, notifier := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 5)

	// Challenger: 5/5 correct in 4000ms total
	for i := 0; i < 5; i++ {
		_, err := svc.SubmitAnswer(duel.ID, challenger, i, true, 800)
		require.NoError(t, err)
	}
	// Opponent: 3/5 correct in 6000ms total
	for i := 0; i < 5; i++ {
		_, err := svc.SubmitAnswer(duel.ID, opponent, i, i < 3, 1200)
		require.NoError(t, err)
	}

	final, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DuelStatusCompleted, final.Status)
	assert.Equal(t, 5, final.ChallengerScore)
	assert.Equal(t, 3, final.OpponentScore)
	assert.EqualValues(t, 4000, final.ChallengerTimeMs)
	assert.EqualValues(t, 6000, final.OpponentTimeMs)
	require.NotNil(t, final.WinnerID)
	assert.Equal(t, challenger, *final.WinnerID)
	require.NotNil(t, final.CompletedAt)
	assert.Equal(t, 1, notifier.count(EventDuelCompleted))

	// Re-reading never changes the outcome
	again, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, *final.WinnerID, *again.WinnerID)
	assert.Equal(t, final.Status, again.Status)
}

func TestSubmitAnswerDraw(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 5)

	// Both: 3/5 correct in 5000ms total
	for i := 0; i < 5; i++ {
		_, err := svc.SubmitAnswer(duel.ID, challenger, i, i < 3, 1000)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(duel.ID, opponent, i, i < 3, 1000)
		require.NoError(t, err)
	}

	final, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DuelStatusCompleted, final.Status)
	assert.Equal(t, final.ChallengerScore, final.OpponentScore)
	assert.Equal(t, final.ChallengerTimeMs, final.OpponentTimeMs)
	assert.Nil(t, final.WinnerID)
}

func TestSubmitAnswerEqualScoreFasterPlayerWins(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 3)

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitAnswer(duel.ID, challenger, i, true, 2000)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(duel.ID, opponent, i, true, 1000)
		require.NoError(t, err)
	}

	final, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	require.NotNil(t, final.WinnerID)
	assert.Equal(t, opponent, *final.WinnerID)
}

func TestSubmitAnswerRejectsDuplicates(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 5)

	_, err := svc.SubmitAnswer(duel.ID, challenger, 0, true, 700)
	require.NoError(t, err)

	before, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)

	// Re-submission is rejected, not silently merged
	_, err = svc.SubmitAnswer(duel.ID, challenger, 0, false, 9999)
	assert.ErrorIs(t, err, ErrDuplicateResponse)

	after, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, before.ChallengerScore, after.ChallengerScore)
	assert.Equal(t, before.ChallengerTimeMs, after.ChallengerTimeMs)

	// The opponent may still answer the same index
	_, err = svc.SubmitAnswer(duel.ID, opponent, 0, true, 700)
	assert.NoError(t, err)
}

func TestSubmitAnswerOutOfOrder(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 5)

	// One player's stream may arrive in any index order
	for _, i := range []int{4, 1, 3, 0, 2} {
		_, err := svc.SubmitAnswer(duel.ID, challenger, i, true, 1000)
		require.NoError(t, err)
	}

	current, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.ChallengerScore)
	assert.EqualValues(t, 5000, current.ChallengerTimeMs)
	assert.Equal(t, models.DuelStatusActive, current.Status)
}

func TestSubmitAnswerValidation(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 5)

	_, err := svc.SubmitAnswer(duel.ID, challenger, -1, true, 500)
	assert.ErrorIs(t, err, ErrInvalidWordIndex)

	_, err = svc.SubmitAnswer(duel.ID, challenger, 5, true, 500)
	assert.ErrorIs(t, err, ErrInvalidWordIndex)

	_, err = svc.SubmitAnswer(duel.ID, newUserID(), 0, true, 500)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SubmitAnswer(newUserID(), challenger, 0, true, 500)
	assert.ErrorIs(t, err, ErrDuelNotFound)
}

func TestSubmitAnswerRejectsPendingDuel(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	seedVocabulary(t, challenger, 5)

	duel, err := svc.CreateChallenge(challenger, opponent, 5)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(duel.ID, challenger, 0, true, 500)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestConcurrentFinalAnswersFinalizeOnce(t *testing.T) {
	svc, notifier := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 2)

	_, err := svc.SubmitAnswer(duel.ID, challenger, 0, true, 1000)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(duel.ID, opponent, 0, false, 1000)
	require.NoError(t, err)

	// Both last answers land concurrently; both submitters may observe
	// "both done" and race to finalize
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.SubmitAnswer(duel.ID, challenger, 1, true, 1000)
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := svc.SubmitAnswer(duel.ID, opponent, 1, true, 1000)
		assert.NoError(t, err)
	}()
	wg.Wait()

	final, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DuelStatusCompleted, final.Status)
	assert.Equal(t, 2, final.ChallengerScore)
	assert.Equal(t, 1, final.OpponentScore)
	require.NotNil(t, final.WinnerID)
	assert.Equal(t, challenger, *final.WinnerID)

	// Exactly one completed transition regardless of interleaving
	assert.Equal(t, 1, notifier.count(EventDuelCompleted))
}

func TestCompletedDuelRejectsFurtherAnswers(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 1)

	_, err := svc.SubmitAnswer(duel.ID, challenger, 0, true, 500)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(duel.ID, opponent, 0, true, 700)
	require.NoError(t, err)

	final, err := svc.GetDuel(duel.ID)
	require.NoError(t, err)
	require.Equal(t, models.DuelStatusCompleted, final.Status)

	_, err = svc.SubmitAnswer(duel.ID, challenger, 0, true, 500)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestGetUserResponses(t *testing.T) {
	svc, _ := newTestService(t)
	challenger, opponent := newUserID(), newUserID()
	duel := activeDuel(t, svc, challenger, opponent, 3)

	for _, i := range []int{2, 0, 1} {
		_, err := svc.SubmitAnswer(duel.ID, challenger, i, true, 1000)
		require.NoError(t, err)
	}

	responses, err := svc.GetUserResponses(duel.ID, challenger)
	require.NoError(t, err)
	require.Len(t, responses, 3)
	for i, response := range responses {
		assert.Equal(t, i, response.WordIndex)
		assert.Equal(t, challenger, response.UserID)
	}

	responses, err = svc.GetUserResponses(duel.ID, opponent)
	require.NoError(t, err)
	assert.Empty(t, responses)
}
