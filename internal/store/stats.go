package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// StoreStats is the quick-stats snapshot rendered by the dashboard.
type StoreStats struct {
	TotalProducts   int64  `json:"total_products"`
	BrandsAvailable int64  `json:"brands_available"`
	LowStockItems   int64  `json:"low_stock_items"`
	ActiveDiscounts int64  `json:"active_discounts"`
	AveragePrice    string `json:"average_price"`
}

const (
	qTotalProducts   = "SELECT COUNT(*) FROM inventory"
	qBrands          = "SELECT COUNT(DISTINCT brand) FROM inventory"
	qLowStock        = "SELECT COUNT(*) FROM inventory WHERE stock_quantity < 10"
	qActiveDiscounts = "SELECT COUNT(*) FROM discounts WHERE is_active = TRUE AND CURDATE() BETWEEN start_date AND end_date"
	qAveragePrice    = "SELECT COALESCE(AVG(price_per_item), 0) FROM inventory"
)

// StatsService computes store statistics on demand.
type StatsService struct {
	open Opener
}

func NewStatsService(open Opener) *StatsService {
	return &StatsService{open: open}
}

// Snapshot runs the five stat queries concurrently over one scoped database
// handle and returns the first error encountered, if any.
func (s *StatsService) Snapshot(ctx context.Context) (StoreStats, error) {
	db, err := s.open()
	if err != nil {
		return StoreStats{}, &ConnectionError{Cause: err}
	}
	defer db.Close()

	var stats StoreStats
	var avgPrice float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return db.QueryRowContext(gctx, qTotalProducts).Scan(&stats.TotalProducts) })
	g.Go(func() error { return db.QueryRowContext(gctx, qBrands).Scan(&stats.BrandsAvailable) })
	g.Go(func() error { return db.QueryRowContext(gctx, qLowStock).Scan(&stats.LowStockItems) })
	g.Go(func() error { return db.QueryRowContext(gctx, qActiveDiscounts).Scan(&stats.ActiveDiscounts) })
	g.Go(func() error { return db.QueryRowContext(gctx, qAveragePrice).Scan(&avgPrice) })

	if err := g.Wait(); err != nil {
		return StoreStats{}, &ExecutionError{Cause: err}
	}

	stats.AveragePrice = fmt.Sprintf("$%.2f", avgPrice)
	return stats, nil
}
