package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stocksense/stocksense/internal/pipeline"
	"github.com/stocksense/stocksense/internal/store"
)

func TestFormatExecutionError(t *testing.T) {
	gen := &stubGen{}
	f := pipeline.NewFormatter(gen, 10)

	execErr := &store.ExecutionError{Cause: errors.New("Unknown column 'prize'")}
	res := f.Format(context.Background(), "cheapest shirt?", store.ResultSet{}, execErr)

	if !strings.Contains(res.Text, "I apologize") || !strings.Contains(res.Text, "Unknown column 'prize'") {
		t.Errorf("apology should embed the error message, got %q", res.Text)
	}
	if gen.calls != 0 {
		t.Error("execution errors must not trigger a model call")
	}
}

func TestFormatEmptyResults(t *testing.T) {
	gen := &stubGen{}
	f := pipeline.NewFormatter(gen, 10)

	res := f.Format(context.Background(), "purple shirts?", store.ResultSet{Columns: []string{"brand"}}, nil)
	if res.Text != "I couldn't find any matching results for your question." {
		t.Errorf("unexpected empty-result message: %q", res.Text)
	}
	if gen.calls != 0 {
		t.Error("empty results must not trigger a model call")
	}
}

func TestFormatModelPathCleansText(t *testing.T) {
	gen := &stubGen{responses: []string{"Yes!We have 3units in stock."}}
	f := pipeline.NewFormatter(gen, 10)

	res := f.Format(context.Background(), "Nike in stock?", nikeRow(), nil)
	if res.Degraded {
		t.Fatal("model path succeeded, result should not be degraded")
	}
	if !strings.Contains(res.Text, "3 units") {
		t.Errorf("cleanup pass should repair digit-letter spacing, got %q", res.Text)
	}
}

func TestFormatModelPromptPreview(t *testing.T) {
	gen := &stubGen{responses: []string{"All good."}}
	f := pipeline.NewFormatter(gen, 2)

	rs := store.ResultSet{Columns: []string{"brand"}}
	for _, b := range []string{"Nike", "Adidas", "Puma"} {
		rs.Rows = append(rs.Rows, map[string]any{"brand": b})
	}
	f.Format(context.Background(), "which brands?", rs, nil)

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "which brands?") {
		t.Error("narration prompt should embed the original question")
	}
	if !strings.Contains(prompt, "Nike") || !strings.Contains(prompt, "Adidas") {
		t.Error("narration prompt should embed the row preview")
	}
	if strings.Contains(prompt, "Puma") {
		t.Error("rows past the preview limit must not reach the prompt")
	}
}

func TestFormatDegradesOnModelFailure(t *testing.T) {
	gen := &stubGen{errs: []error{errors.New("rate limited")}}
	f := pipeline.NewFormatter(gen, 10)

	res := f.Format(context.Background(), "Nike in stock?", nikeRow(), nil)
	if !res.Degraded {
		t.Fatal("model failure should degrade to the deterministic formatter")
	}
	if res.Text == "" {
		t.Fatal("degraded path must still produce an answer")
	}
	if !strings.Contains(res.Text, "Found 1 results") {
		t.Errorf("expected deterministic rendering, got %q", res.Text)
	}
}

func TestFormatRowsInventoryShape(t *testing.T) {
	text := pipeline.FormatRows(nikeRow())
	for _, want := range []string{"Nike - Tee", "Size: L", "Color: Black", "Price: $19.50", "Stock: 3 units"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatRows missing %q in %q", want, text)
		}
	}
}

func TestFormatRowsStringPrice(t *testing.T) {
	// MySQL DECIMAL columns scan as strings.
	rs := store.ResultSet{
		Columns: []string{"brand", "product_name", "price_per_item"},
		Rows:    []map[string]any{{"brand": "Puma", "product_name": "Classic", "price_per_item": "24.9"}},
	}
	text := pipeline.FormatRows(rs)
	if !strings.Contains(text, "Price: $24.90") {
		t.Errorf("string price should be parsed and formatted, got %q", text)
	}
}

func TestFormatRowsGenericShape(t *testing.T) {
	rs := store.ResultSet{
		Columns: []string{"discount_value", "min_quantity"},
		Rows:    []map[string]any{{"discount_value": "10.00", "min_quantity": 2}},
	}
	text := pipeline.FormatRows(rs)
	if !strings.Contains(text, "discount_value: 10.00 | min_quantity: 2") {
		t.Errorf("generic rows should join column: value in result order, got %q", text)
	}
}

func TestFormatRowsEmpty(t *testing.T) {
	if got := pipeline.FormatRows(store.ResultSet{}); got != "No results found." {
		t.Errorf("FormatRows(empty) = %q, want %q", got, "No results found.")
	}
}
