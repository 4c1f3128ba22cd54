package duels

import (
	"fmt"
	"log"
	"net/http"

	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportDuelDataExcel exports a duel's summary and both response logs as XLSX
// @Summary Export duel data
// @Description Export a duel summary and both players' responses as an Excel file
// @Tags Duels
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Duel ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /duels/{id}/export [get]
// @Security Bearer
func ExportDuelDataExcel(c *gin.Context) {
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

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	summary := "Summary"
	xlsx.SetSheetName(xlsx.GetSheetName(0), summary)
	summaryRows := [][]interface{}{
		{"Duel ID", duel.ID},
		{"Status", string(duel.Status)},
		{"Challenger", duel.ChallengerID},
		{"Opponent", duel.OpponentID},
		{"Word count", duel.WordCount},
		{"Challenger score", duel.ChallengerScore},
		{"Opponent score", duel.OpponentScore},
		{"Challenger time (ms)", duel.ChallengerTimeMs},
		{"Opponent time (ms)", duel.OpponentTimeMs},
	}
	if duel.WinnerID != nil {
		summaryRows = append(summaryRows, []interface{}{"Winner", *duel.WinnerID})
	} else if duel.Status == models.DuelStatusCompleted {
		summaryRows = append(summaryRows, []interface{}{"Winner", "draw"})
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := xlsx.SetSheetRow(summary, cell, &row); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
			return
		}
	}

	for _, participant := range []struct {
		sheet  string
		userID string
	}{
		{"Challenger", duel.ChallengerID},
		{"Opponent", duel.OpponentID},
	} {
		if _, err := xlsx.NewSheet(participant.sheet); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
			return
		}

		header := []interface{}{"Word index", "Prompt", "Correct", "Response time (ms)", "Submitted at"}
		if err := xlsx.SetSheetRow(participant.sheet, "A1", &header); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
			return
		}

		responses, err := svc.GetUserResponses(duel.ID, participant.userID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
			return
		}

		prompts := make(map[int]string, len(duel.Words))
		for _, word := range duel.Words {
			prompts[word.Position] = word.Prompt
		}

		for i, response := range responses {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{
				response.WordIndex,
				prompts[response.WordIndex],
				response.IsCorrect,
				response.ResponseTimeMs,
				response.SubmittedAt.Format("2006-01-02 15:04:05"),
			}
			if err := xlsx.SetSheetRow(participant.sheet, cell, &row); err != nil {
				respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
				return
			}
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=duel-%s.xlsx", duel.ID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		log.Printf("Failed to write duel export: %v", err)
	}
}
