// Package adapter normalizes transaction snapshots from heterogeneous
// sources into the canonical revenue, expense, customer and product
// aggregates. Each source variant implements the same capability set so the
// composite view can treat them uniformly.
package adapter

import (
	"sort"

	"github.com/DaudiPaul1/Cashpilot-sub000/internal/domain"
)

// SourceAdapter is the capability set every source variant implements.
// Implementations are pure: they read the snapshot they were constructed
// with and allocate fresh aggregates on every call.
type SourceAdapter interface {
	Revenue() domain.RevenueData
	Expenses() domain.ExpenseData
	Customers() domain.CustomerData
	Products() domain.ProductData
	// Available reports whether at least one transaction attributable to
	// this source exists.
	Available() bool
}

// Source reports which source variant an adapter represents. All three
// concrete adapters implement it; the strategy layer uses it to key
// insight-type lookups.
type Source interface {
	Source() domain.Source
}

// productAccum collects per-product totals before ranking.
type productAccum struct {
	revenue  float64
	quantity int
	margin   float64
}

// rankProducts turns accumulated per-product totals into ProductData,
// sorting by revenue descending and truncating to the top-product limit.
// Ties break on name so output is deterministic.
func rankProducts(byName map[string]*productAccum) domain.ProductData {
	byProduct := make(map[string]domain.ProductStat, len(byName))
	stats := make([]domain.ProductStat, 0, len(byName))
	for name, acc := range byName {
		stat := domain.ProductStat{
			Name:     name,
			Revenue:  acc.revenue,
			Quantity: acc.quantity,
			Margin:   acc.margin,
		}
		byProduct[name] = stat
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Revenue != stats[j].Revenue {
			return stats[i].Revenue > stats[j].Revenue
		}
		return stats[i].Name < stats[j].Name
	})

	data := domain.ProductData{TotalProducts: len(stats), ByProduct: byProduct}
	if len(stats) > TopProductLimit {
		stats = stats[:TopProductLimit]
	}
	data.TopProducts = stats
	return data
}
