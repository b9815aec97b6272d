package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// dangerousPatterns flags stacked statements, mutation attempts, and classic
// injection probes in generated SQL. The guard is a pattern filter over the
// MySQL dialect, not a SQL parser.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i);\s*DROP\s+`),
	regexp.MustCompile(`(?i);\s*DELETE\s+`),
	regexp.MustCompile(`(?i);\s*INSERT\s+`),
	regexp.MustCompile(`(?i);\s*UPDATE\s+`),
	regexp.MustCompile(`(?i);\s*ALTER\s+`),
	regexp.MustCompile(`(?i);\s*CREATE\s+`),
	regexp.MustCompile(`(?i);\s*TRUNCATE\s+`),
	regexp.MustCompile(`(?i)\bINTO\s+OUTFILE\b`),
	regexp.MustCompile(`(?i)\bINTO\s+DUMPFILE\b`),
	regexp.MustCompile(`(?i)\bLOAD\s+DATA\b`),
	regexp.MustCompile(`(?i)\bLOAD_FILE\s*\(`),
	regexp.MustCompile(`(?i)\bBENCHMARK\s*\(`),
	regexp.MustCompile(`(?i)\bSLEEP\s*\(`),
	regexp.MustCompile(`;\s*--`),
	regexp.MustCompile(`/\*.*?\*/`),
}

// SQLGuard checks that a generated statement is a single read query before
// it reaches the executor. Model output is otherwise trusted SQL, so this
// is the only safety boundary between translation and execution.
type SQLGuard struct{}

func NewSQLGuard() *SQLGuard {
	return &SQLGuard{}
}

// Check returns an error when the statement is empty, does not start with a
// read keyword, stacks statements, or matches a dangerous pattern.
func (g *SQLGuard) Check(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return errors.New("empty SQL statement")
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return errors.New("only read queries are allowed")
	}

	// A trailing semicolon is harmless; any other one stacks statements.
	if strings.Contains(strings.TrimSuffix(trimmed, ";"), ";") {
		return errors.New("multiple SQL statements are not allowed")
	}

	for _, p := range dangerousPatterns {
		if p.MatchString(query) {
			return fmt.Errorf("disallowed SQL pattern: %s", p.String())
		}
	}
	return nil
}
