package duels

import (
	"net/http"

	"api/middleware"

	"github.com/gin-gonic/gin"
)

// CreateDuel creates a new challenge against an opponent
// @Summary Create a duel challenge
// @Description Challenge another user to a word duel over a random snapshot of your vocabulary
// @Tags Duels
// @Accept json
// @Produce json
// @Param request body CreateDuelRequest true "Challenge details"
// @Success 201 {object} models.Duel
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /duels [post]
// @Security Bearer
func CreateDuel(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	var req CreateDuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	duel, err := svc.CreateChallenge(userID, req.OpponentID, req.WordCount)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, duel)
}

// GetDuel retrieves one duel
// @Summary Get a duel
// @Description Get a duel with its word snapshot; a stale pending duel reads as expired
// @Tags Duels
// @Accept json
// @Produce json
// @Param id path string true "Duel ID"
// @Success 200 {object} models.Duel
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /duels/{id} [get]
// @Security Bearer
func GetDuel(c *gin.Context) {
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

	c.JSON(http.StatusOK, duel)
}

// GetUserDuels lists the authenticated user's duels
// @Summary List my duels
// @Description List every duel the authenticated user participates in, newest first
// @Tags Duels
// @Accept json
// @Produce json
// @Success 200 {array} models.Duel
// @Failure 401 {object} map[string]string
// @Router /duels [get]
// @Security Bearer
func GetUserDuels(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	duels, err := svc.ListUserDuels(userID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchDuels)
		return
	}

	c.JSON(http.StatusOK, duels)
}

// AcceptDuel accepts a pending challenge
// @Summary Accept a challenge
// @Description Accept a pending challenge as the invited opponent
// @Tags Duels
// @Accept json
// @Produce json
// @Param id path string true "Duel ID"
// @Success 200 {object} models.Duel
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /duels/{id}/accept [put]
// @Security Bearer
func AcceptDuel(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	duel, err := svc.Accept(c.Param("id"), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, duel)
}

// DeclineDuel declines a pending challenge
// @Summary Decline a challenge
// @Description Decline a pending challenge as the invited opponent
// @Tags Duels
// @Accept json
// @Produce json
// @Param id path string true "Duel ID"
// @Success 200 {object} models.Duel
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /duels/{id}/decline [put]
// @Security Bearer
func DeclineDuel(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	duel, err := svc.Decline(c.Param("id"), userID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, duel)
}
