package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stocksense/stocksense/internal/models"
	"github.com/stocksense/stocksense/internal/pipeline"
	"github.com/stocksense/stocksense/internal/security"
)

// Answerer is the pipeline surface the handler needs.
type Answerer interface {
	Answer(ctx context.Context, question string) pipeline.Answer
}

// AskHandler handles POST /api/v1/ask
type AskHandler struct {
	pipe    Answerer
	auditor *security.Auditor
	maxLen  int
}

func NewAskHandler(pipe Answerer, auditor *security.Auditor, maxQuestionLength int) *AskHandler {
	return &AskHandler{pipe: pipe, auditor: auditor, maxLen: maxQuestionLength}
}

// Ask handles POST /api/v1/ask. Question validation happens here, before
// the pipeline; the pipeline itself always produces an answer, so anything
// past validation responds 200 with the answer text, error or not.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		models.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}
	if h.maxLen > 0 && len(question) > h.maxLen {
		models.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("question too long: %d chars (max %d)", len(question), h.maxLen))
		return
	}

	start := time.Now()
	ans := h.pipe.Answer(r.Context(), question)
	durationMs := time.Since(start).Milliseconds()

	h.auditor.LogQuestion(question, ans.SQL, ans.Err == nil, ans.Degraded, durationMs, len(ans.Rows.Rows))

	status := "success"
	if ans.Err != nil {
		status = "error"
	}

	models.WriteJSON(w, http.StatusOK, models.AskResponse{
		Status:     status,
		Question:   question,
		Answer:     ans.Text,
		SQL:        ans.SQL,
		Columns:    ans.Rows.Columns,
		Rows:       ans.Rows.Rows,
		RowCount:   len(ans.Rows.Rows),
		Degraded:   ans.Degraded,
		DurationMs: durationMs,
	})
}
