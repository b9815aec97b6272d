package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/stocksense/stocksense/internal/llm"
)

// TranslationError means the model call failed while generating SQL. It is
// terminal for the request; no retry is attempted.
type TranslationError struct {
	Cause error
}

func (e *TranslationError) Error() string {
	return "error generating SQL: " + e.Cause.Error()
}

func (e *TranslationError) Unwrap() error { return e.Cause }

const translatePrompt = `You are a SQL expert for a t-shirt store database. Your goal is to convert a natural language question into a single, accurate SQL query.

%s

CRITICAL RULES:
1. Always JOIN for Discounts: if the question mentions "discount", "sale", or "price", you MUST JOIN inventory (aliased as i) with discounts (aliased as d) on i.brand = d.brand.
2. Handle Minimum Quantity Correctly: a question about a single item (e.g. "a nike shirt") implies a quantity of 1. If a discount in the database requires min_quantity > 1, your query MUST NOT filter this discount out. The goal is to show that a discount is available but has conditions. DO NOT add a WHERE clause on min_quantity unless the user explicitly states a quantity (e.g. "discount for 3 shirts").
3. Filter by Active Discounts: always include this condition in your WHERE clause for discount-related queries: d.is_active = TRUE AND CURDATE() BETWEEN d.start_date AND d.end_date.
4. Use LOWER() for Case-Insensitive Matches: always wrap text columns like brand or color in the LOWER() function for comparisons.
5. Return Only the SQL Query: your entire response must be only the SQL code, with no explanations or markdown.

Question: %s
SQL Query:`

var (
	fenceTagged = regexp.MustCompile("```sql\n?")
	fenceBare   = regexp.MustCompile("```\n?")
)

// ExtractSQL isolates the SQL statement from raw model output by stripping
// fenced-code markers (language-tagged first, then bare) and surrounding
// whitespace. It makes no attempt to parse what remains.
func ExtractSQL(raw string) string {
	s := fenceTagged.ReplaceAllString(strings.TrimSpace(raw), "")
	s = fenceBare.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Translator converts a natural-language question into a single SQL
// statement via the language model.
type Translator struct {
	gen llm.Generator
}

func NewTranslator(gen llm.Generator) *Translator {
	return &Translator{gen: gen}
}

func (t *Translator) Translate(ctx context.Context, question, schema string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, schema, question)
	raw, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", &TranslationError{Cause: err}
	}
	return ExtractSQL(raw), nil
}
