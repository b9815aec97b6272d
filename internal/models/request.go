package models

// AskRequest for POST /api/v1/ask
type AskRequest struct {
	Question string `json:"question"`
}
