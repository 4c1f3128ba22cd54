package duels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"
	"api/database"
	"api/models"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	config.JWTSecret = "test-secret"

	db, err := database.InitTestDB()
	require.NoError(t, err)
	database.DB = db
	for _, table := range []string{"duel_responses", "duel_words", "duels", "words"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), services.NewDuelService(nil, nil), realtime.NewHub())
	return r
}

func authToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: userID})
	signed, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, r *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+authToken(t, userID))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedWords(t *testing.T, ownerID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := services.CreateWord(ownerID, fmt.Sprintf("prompt-%d", i), fmt.Sprintf("answer-%d", i))
		require.NoError(t, err)
	}
}

func TestDuelLifecycleOverHTTP(t *testing.T) {
	r := setupRouter(t)
	challenger, opponent := uuid.NewString(), uuid.NewString()
	seedWords(t, challenger, 3)

	// Create
	w := doRequest(t, r, http.MethodPost, "/api/v1/duels/", challenger, CreateDuelRequest{
		OpponentID: opponent,
		WordCount:  3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var duel models.Duel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &duel))
	assert.Equal(t, models.DuelStatusPending, duel.Status)
	assert.Len(t, duel.Words, 3)

	// Only the opponent can accept
	w = doRequest(t, r, http.MethodPut, "/api/v1/duels/"+duel.ID+"/accept", challenger, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/v1/duels/"+duel.ID+"/accept", opponent, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Submit one answer
	idx := 0
	w = doRequest(t, r, http.MethodPost, "/api/v1/duels/answer", challenger, SubmitAnswerRequest{
		DuelID:         duel.ID,
		WordIndex:      &idx,
		IsCorrect:      true,
		ResponseTimeMs: 800,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Duel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.ChallengerScore)

	// Re-submitting the same word is rejected
	w = doRequest(t, r, http.MethodPost, "/api/v1/duels/answer", challenger, SubmitAnswerRequest{
		DuelID:         duel.ID,
		WordIndex:      &idx,
		IsCorrect:      true,
		ResponseTimeMs: 800,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateDuelRequiresVocabulary(t *testing.T) {
	r := setupRouter(t)
	challenger, opponent := uuid.NewString(), uuid.NewString()

	w := doRequest(t, r, http.MethodPost, "/api/v1/duels/", challenger, CreateDuelRequest{
		OpponentID: opponent,
		WordCount:  3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDuelHidesOtherUsersDuels(t *testing.T) {
	r := setupRouter(t)
	challenger, opponent := uuid.NewString(), uuid.NewString()
	seedWords(t, challenger, 3)

	w := doRequest(t, r, http.MethodPost, "/api/v1/duels/", challenger, CreateDuelRequest{
		OpponentID: opponent,
		WordCount:  3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var duel models.Duel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &duel))

	w = doRequest(t, r, http.MethodGet, "/api/v1/duels/"+duel.ID, uuid.NewString(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/duels/"+duel.ID, opponent, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/duels/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
