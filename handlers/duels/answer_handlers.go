package duels

import (
	"net/http"
	"strconv"

	"api/middleware"

	"github.com/gin-gonic/gin"
)

// SubmitAnswer ingests one timed answer for a duel word
// @Summary Submit a duel answer
// @Description Submit one timed answer; re-submitting an answered word is rejected
// @Tags Duels
// @Accept json
// @Produce json
// @Param request body SubmitAnswerRequest true "Answer details"
// @Success 200 {object} models.Duel
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /duels/answer [post]
// @Security Bearer
func SubmitAnswer(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	duel, err := svc.SubmitAnswer(req.DuelID, userID, *req.WordIndex, req.IsCorrect, req.ResponseTimeMs)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, duel)
}

// GetDuelResponses returns the authenticated user's response log for a duel
// @Summary Get my responses for a duel
// @Description Get the authenticated user's answers for a duel in word order
// @Tags Duels
// @Accept json
// @Produce json
// @Param id path string true "Duel ID"
// @Success 200 {array} models.DuelResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /duels/{id}/responses [get]
// @Security Bearer
func GetDuelResponses(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	duel, err := svc.GetDuel(c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if !duel.IsParticipant(userID) {
		respondWithError(c, http.StatusUnauthorized, ErrNotParticipant)
		return
	}

	responses, err := svc.GetUserResponses(duel.ID, userID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, responses)
}

// GetDuelLeaderboard returns the players with the most duel wins
// @Summary Get the duel win leaderboard
// @Description Get the top players by duel wins; requires the redis leaderboard to be configured
// @Tags Duels
// @Accept json
// @Produce json
// @Param limit query int false "Number of players to return" default(10)
// @Success 200 {array} services.PlayerWins
// @Failure 503 {object} map[string]string
// @Router /duels/leaderboard [get]
// @Security Bearer
func GetDuelLeaderboard(c *gin.Context) {
	if svc.Leaderboard == nil {
		respondWithError(c, http.StatusServiceUnavailable, ErrLeaderboardOffline)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	players, err := svc.Leaderboard.TopPlayers(limit)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrLeaderboardOffline)
		return
	}

	c.JSON(http.StatusOK, players)
}
