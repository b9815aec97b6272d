package security_test

import (
	"testing"

	"github.com/stocksense/stocksense/internal/security"
)

func TestSQLGuardAcceptsReadQueries(t *testing.T) {
	g := security.NewSQLGuard()

	valid := []string{
		"SELECT * FROM inventory",
		"select brand, stock_quantity from inventory where LOWER(color) = 'black'",
		"SELECT * FROM inventory i JOIN discounts d ON i.brand = d.brand WHERE d.is_active = TRUE AND CURDATE() BETWEEN d.start_date AND d.end_date",
		"WITH cheap AS (SELECT * FROM inventory WHERE price_per_item < 20) SELECT * FROM cheap",
		"SELECT COUNT(*) FROM discounts;",
	}
	for _, sql := range valid {
		if err := g.Check(sql); err != nil {
			t.Errorf("valid SQL rejected: %q -> %v", sql, err)
		}
	}
}

func TestSQLGuardRejectsUnsafeQueries(t *testing.T) {
	g := security.NewSQLGuard()

	invalid := []struct {
		sql    string
		reason string
	}{
		{"", "empty"},
		{"DROP TABLE inventory", "not a read query"},
		{"UPDATE inventory SET stock_quantity = 0", "mutation"},
		{"INSERT INTO discounts VALUES (1)", "mutation"},
		{"SELECT * FROM inventory; DROP TABLE inventory", "stacked statements"},
		{"SELECT 1; SELECT 2", "stacked statements"},
		{"SELECT * FROM inventory INTO OUTFILE '/tmp/x'", "file write"},
		{"SELECT LOAD_FILE('/etc/passwd')", "file read"},
		{"SELECT SLEEP(10)", "time-based probe"},
		{"SELECT BENCHMARK(1000000, SHA1('x'))", "cpu probe"},
		{"SELECT /* hidden */ * FROM inventory", "comment smuggling"},
	}
	for _, tt := range invalid {
		if err := g.Check(tt.sql); err == nil {
			t.Errorf("unsafe SQL not rejected (%s): %q", tt.reason, tt.sql)
		}
	}
}
