package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxQuestionLength is the hard ceiling on question size. The HTTP layer
// enforces a tighter configurable limit; this one backstops direct callers.
const MaxQuestionLength = 2000

// injectionPatterns flags prompt injection attempts and code or shell
// fragments that have no business in a retail inventory question.
var injectionPatterns = []*regexp.Regexp{
	// Prompt injection
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)override\s+(all\s+)?previous\s+instructions`),
	regexp.MustCompile(`(?i)new\s+context\s*:`),
	regexp.MustCompile(`(?i)change\s+context\s*:`),
	regexp.MustCompile(`(?i)instead\s+of\s+the\s+above`),

	// Code execution
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)system\s*\(`),
	regexp.MustCompile(`(?i)__import__\s*\(`),
	regexp.MustCompile(`(?i)subprocess`),
	regexp.MustCompile(`(?i)os\.system`),

	// File access / path traversal
	regexp.MustCompile(`\.\.\/`),
	regexp.MustCompile(`/etc/passwd`),
	regexp.MustCompile(`/etc/shadow`),
	regexp.MustCompile(`id_rsa`),
	regexp.MustCompile(`\.ssh/`),
}

// QuestionGuard screens user questions before they are embedded into a
// model prompt. It is a coarse pattern filter; the SQL guard downstream
// remains the authority on what actually reaches the database.
type QuestionGuard struct{}

func NewQuestionGuard() *QuestionGuard {
	return &QuestionGuard{}
}

// Check returns an error when the question is empty, oversized, or matches
// an injection pattern.
func (g *QuestionGuard) Check(question string) error {
	if strings.TrimSpace(question) == "" {
		return errors.New("question cannot be empty")
	}
	if len(question) > MaxQuestionLength {
		return fmt.Errorf("question too long: %d chars (max %d)", len(question), MaxQuestionLength)
	}
	for _, p := range injectionPatterns {
		if p.MatchString(question) {
			return fmt.Errorf("disallowed question pattern: %s", p.String())
		}
	}
	return nil
}
