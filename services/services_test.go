package services

import (
	"fmt"
	"sync"
	"testing"

	"api/database"
	"api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures emitted duel events for assertions
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(event string, duel *models.Duel, recipients []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e == event {
			c++
		}
	}
	return c
}

// setupTestDB points the package at a fresh in-memory database
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := database.InitTestDB()
	require.NoError(t, err)
	database.DB = db

	for _, table := range []string{"duel_responses", "duel_words", "duels", "words"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
}

// newTestService builds a duel service with a recording notifier
func newTestService(t *testing.T) (*DuelService, *recordingNotifier) {
	t.Helper()
	setupTestDB(t)

	notifier := &recordingNotifier{}
	return NewDuelService(notifier, nil), notifier
}

// seedVocabulary inserts n words for the owner
func seedVocabulary(t *testing.T, ownerID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := CreateWord(ownerID, fmt.Sprintf("prompt-%d", i), fmt.Sprintf("answer-%d", i))
		require.NoError(t, err)
	}
}

func newUserID() string {
	return uuid.NewString()
}
