package security

import (
	"crypto/sha256"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Auditor logs per-question pipeline events with hashed identifiers, so the
// audit trail never carries raw questions or generated SQL.
type Auditor struct {
	enabled bool
}

func NewAuditor(enabled bool) *Auditor {
	return &Auditor{enabled: enabled}
}

// LogQuestion records one completed pipeline invocation.
func (a *Auditor) LogQuestion(question, sql string, success, degraded bool, durationMs int64, rowCount int) {
	if !a.enabled {
		return
	}

	sqlHash := ""
	if sql != "" {
		sqlHash = hashStr(sql)[:16]
	}

	log.Info().
		Str("event", "question_audit").
		Str("question_hash", hashStr(question)[:16]).
		Str("sql_hash", sqlHash).
		Bool("success", success).
		Bool("degraded", degraded).
		Int("row_count", rowCount).
		Int64("duration_ms", durationMs).
		Msg("audit")
}

func hashStr(s string) string {
	h := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", h)
}
