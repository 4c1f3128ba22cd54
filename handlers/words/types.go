package words

// Error messages
const (
	ErrInvalidRequest   = "Invalid request data"
	ErrFailedFetchWords = "Failed to fetch words"
	ErrFailedCreateWord = "Failed to create word"
	ErrFailedImport     = "Failed to import words"
)

// CreateWordRequest model for adding one vocabulary entry
type CreateWordRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// ImportResultResponse summarizes an XLSX vocabulary import
type ImportResultResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
