package words

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GetUserWords lists the authenticated user's vocabulary
// @Summary Get my vocabulary
// @Description Get the authenticated user's vocabulary in alphabetical order
// @Tags Words
// @Accept json
// @Produce json
// @Success 200 {array} models.Word
// @Failure 401 {object} map[string]string
// @Router /words [get]
// @Security Bearer
func GetUserWords(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	words, err := services.ListWords(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchWords)
		return
	}

	c.JSON(http.StatusOK, words)
}

// CreateWord adds one vocabulary entry
// @Summary Add a word
// @Description Add one vocabulary entry for the authenticated user
// @Tags Words
// @Accept json
// @Produce json
// @Param request body CreateWordRequest true "Word details"
// @Success 201 {object} models.Word
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /words [post]
// @Security Bearer
func CreateWord(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	var req CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	word, err := services.CreateWord(userID, req.Prompt, req.Answer)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateWord)
		return
	}

	c.JSON(http.StatusCreated, word)
}

// ImportWordsExcel imports vocabulary entries from an uploaded XLSX file
// @Summary Import words from Excel
// @Description Import vocabulary from an uploaded XLSX file with Prompt/Answer columns
// @Tags Words
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 200 {object} ImportResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /words/import [post]
// @Security Bearer
func ImportWordsExcel(c *gin.Context) {
	userID, err := middleware.GetUserIDFromRequest(c)
	if err != nil {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to get file: "+err.Error())
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to open file: "+err.Error())
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse XLSX file: "+err.Error())
		return
	}
	defer xlsx.Close()

	result := ImportResultResponse{}
	for _, sheetName := range xlsx.GetSheetList() {
		rows, err := xlsx.GetRows(sheetName)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedImport+": "+err.Error())
			return
		}

		if len(rows) < 2 { // At least header and one data row
			continue
		}

		// Find column indices
		var promptIdx, answerIdx int = -1, -1
		for i, cell := range rows[0] {
			switch cell {
			case "Prompt", "Word", "Term":
				promptIdx = i
			case "Answer", "Translation", "Meaning":
				answerIdx = i
			}
		}

		// Skip if required columns not found
		if promptIdx == -1 || answerIdx == -1 {
			continue
		}

		for i := 1; i < len(rows); i++ {
			row := rows[i]
			if len(row) <= promptIdx || len(row) <= answerIdx || row[promptIdx] == "" || row[answerIdx] == "" {
				result.Skipped++
				continue
			}

			if _, err := services.CreateWord(userID, row[promptIdx], row[answerIdx]); err != nil {
				result.Skipped++
				continue
			}
			result.Imported++
		}
	}

	c.JSON(http.StatusOK, result)
}
