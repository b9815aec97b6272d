package pipeline

import (
	"fmt"
	"time"
)

// schemaText is the fixed contract given to the model. It is not
// introspected from the database; the two tables below are the only
// queryable surface.
const schemaText = `Database Schema:

Table: inventory
- id (INT, PRIMARY KEY), brand (VARCHAR), product_name (VARCHAR), size (ENUM),
- color (VARCHAR), stock_quantity (INT), price_per_item (DECIMAL)

Table: discounts
- id (INT, PRIMARY KEY), brand (VARCHAR), product_name (VARCHAR),
- discount_type (ENUM: 'percentage', 'fixed_amount'), discount_value (DECIMAL),
- start_date (DATE), end_date (DATE), min_quantity (INT), is_active (BOOLEAN)

Current date for all queries is: %s`

// SchemaDescriptor renders the queryable schema plus the current date for
// inclusion in prompts. The date is embedded as a literal so the model can
// ground relative-date questions ("currently active discounts") without
// reasoning about database date functions inside the prompt text.
type SchemaDescriptor struct {
	now func() time.Time
}

func NewSchemaDescriptor() *SchemaDescriptor {
	return &SchemaDescriptor{now: time.Now}
}

// NewSchemaDescriptorWithClock pins the wall clock, for tests.
func NewSchemaDescriptorWithClock(now func() time.Time) *SchemaDescriptor {
	return &SchemaDescriptor{now: now}
}

// Describe is regenerated per request rather than cached: the embedded date
// may roll over between requests.
func (d *SchemaDescriptor) Describe() string {
	return fmt.Sprintf(schemaText, d.now().Format("2006-01-02"))
}
