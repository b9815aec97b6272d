package models

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// AskResponse is returned by POST /api/v1/ask. Answer is always non-empty;
// SQL and Rows are the diagnostic payload behind it. Degraded means the
// narration model was unavailable and the deterministic formatter produced
// the answer.
type AskResponse struct {
	Status     string           `json:"status"`
	Question   string           `json:"question"`
	Answer     string           `json:"answer"`
	SQL        string           `json:"sql,omitempty"`
	Columns    []string         `json:"columns,omitempty"`
	Rows       []map[string]any `json:"rows,omitempty"`
	RowCount   int              `json:"row_count"`
	Degraded   bool             `json:"degraded"`
	DurationMs int64            `json:"duration_ms"`
}
