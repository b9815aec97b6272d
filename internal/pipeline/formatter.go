package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/stocksense/stocksense/internal/llm"
	"github.com/stocksense/stocksense/internal/store"
)

const noResultsMsg = "I couldn't find any matching results for your question."

const defaultPreviewRows = 10

const narratePrompt = `Based on this database query result, provide a natural, conversational response to the original question.
Original question: %s
Query results:
%s

Make the response:
1. Conversational and helpful.
2. If the query result contains a 'min_quantity' greater than 1, explain that condition to the user (e.g. "This discount applies if you buy X or more items.").
3. Summarize the results clearly. Use bullet points for lists of items.
4. Ensure correct grammar, punctuation, and spacing between sentences.
5. Use proper currency formatting ($XX.XX).

Response:`

// FormatResult carries the answer text plus whether the model path failed
// and the deterministic fallback produced the text instead. Degraded is
// never surfaced as an error; the user just gets a plainer answer.
type FormatResult struct {
	Text     string
	Degraded bool
}

// Formatter converts execution results (or an error) into the
// conversational answer. The model path is attempted first for non-empty
// results; error and empty cases never call the model.
type Formatter struct {
	gen         llm.Generator
	previewRows int
}

func NewFormatter(gen llm.Generator, previewRows int) *Formatter {
	if previewRows <= 0 {
		previewRows = defaultPreviewRows
	}
	return &Formatter{gen: gen, previewRows: previewRows}
}

func (f *Formatter) Format(ctx context.Context, question string, rs store.ResultSet, execErr error) FormatResult {
	if execErr != nil {
		return FormatResult{Text: apology(execErr)}
	}
	if rs.Empty() {
		return FormatResult{Text: noResultsMsg}
	}

	prompt := fmt.Sprintf(narratePrompt, question, renderPreview(rs, f.previewRows))
	out, err := f.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		log.Debug().Err(err).Msg("narration unavailable, using deterministic formatter")
		return FormatResult{Text: FormatRows(rs), Degraded: true}
	}
	return FormatResult{Text: CleanText(strings.TrimSpace(out))}
}

func apology(err error) string {
	return "I apologize, but I encountered an error processing your question: " + err.Error()
}

// renderPreview flattens up to limit rows into a plain text table for the
// narration prompt, columns in result order.
func renderPreview(rs store.ResultSet, limit int) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(rs.Columns, " | "))
	for i, row := range rs.Rows {
		if i == limit {
			break
		}
		sb.WriteByte('\n')
		vals := make([]string, len(rs.Columns))
		for j, col := range rs.Columns {
			vals[j] = fmt.Sprintf("%v", row[col])
		}
		sb.WriteString(strings.Join(vals, " | "))
	}
	return sb.String()
}

// FormatRows is the deterministic fallback: a labeled summary per row. Rows
// with brand and product_name get the inventory rendering; anything else is
// a generic column: value join in result order.
func FormatRows(rs store.ResultSet) string {
	if rs.Empty() {
		return "No results found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d results:\n\n", len(rs.Rows))

	for _, row := range rs.Rows {
		brand, hasBrand := row["brand"]
		product, hasProduct := row["product_name"]
		if hasBrand && hasProduct {
			fmt.Fprintf(&sb, "**%v - %v**\n", brand, product)
			var details []string
			if v, ok := row["size"]; ok {
				details = append(details, fmt.Sprintf("Size: %v", v))
			}
			if v, ok := row["color"]; ok {
				details = append(details, fmt.Sprintf("Color: %v", v))
			}
			if v, ok := row["price_per_item"]; ok {
				details = append(details, "Price: "+formatPrice(v))
			}
			if v, ok := row["stock_quantity"]; ok {
				details = append(details, fmt.Sprintf("Stock: %v units", v))
			}
			sb.WriteString(strings.Join(details, " • "))
			sb.WriteString("\n\n")
			continue
		}

		parts := make([]string, 0, len(rs.Columns))
		for _, col := range rs.Columns {
			if v, ok := row[col]; ok {
				parts = append(parts, fmt.Sprintf("%s: %v", col, v))
			}
		}
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// formatPrice renders two-decimal dollar notation. MySQL DECIMAL columns
// arrive as strings, so those are parsed before formatting.
func formatPrice(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("$%.2f", n)
	case float32:
		return fmt.Sprintf("$%.2f", float64(n))
	case int64:
		return fmt.Sprintf("$%.2f", float64(n))
	case int:
		return fmt.Sprintf("$%.2f", float64(n))
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return fmt.Sprintf("$%.2f", f)
		}
	}
	return fmt.Sprintf("$%v", v)
}
