package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

// PopularServicesLimit is the top-N size of the service ranking.
const PopularServicesLimit = 5

type ServiceRank struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	OccurrenceCount int             `json:"occurrence_count"`
	IsSynthetic     bool            `json:"is_synthetic"`
}

// RankServicesOf is the popularity top-N. When orders exist but none of them
// correlates with any catalog service, a deterministic placeholder ranking
// keeps the widget non-empty, with every entry flagged as synthetic so
// consumers can tell it apart from data. An empty or degraded orders
// collection yields the empty default, never placeholders.
func RankServicesOf(services []entities.CatalogService, orders []entities.WorkOrder, limit int) []ServiceRank {
	top := []ServiceRank{}
	if len(services) == 0 {
		return top
	}
	if limit <= 0 {
		limit = PopularServicesLimit
	}

	ix := correlate.NewIndex(len(services), func(i int) correlate.Ref { return services[i].Keys() })
	counts := make([]int, len(services))
	total := 0
	for _, o := range orders {
		if o.Cancelled() {
			continue
		}
		for _, ref := range o.ServiceRefs {
			for _, pos := range ix.Match(ref) {
				counts[pos]++
				total++
			}
		}
	}

	if total == 0 {
		if len(orders) == 0 {
			return top
		}
		// Orders exist but none correlates: fall back to catalog order with
		// decreasing placeholder counts.
		n := limit
		if len(services) < n {
			n = len(services)
		}
		for i := 0; i < n; i++ {
			top = append(top, ServiceRank{
				ID:              services[i].ID,
				Name:            services[i].Name,
				Category:        services[i].Category,
				Price:           services[i].BasePrice,
				OccurrenceCount: n - i,
				IsSynthetic:     true,
			})
		}
		return top
	}

	idx := make([]int, 0, len(services))
	for i := range services {
		if counts[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if counts[idx[a]] != counts[idx[b]] {
			return counts[idx[a]] > counts[idx[b]]
		}
		return services[idx[a]].Name < services[idx[b]].Name
	})
	if len(idx) > limit {
		idx = idx[:limit]
	}
	for _, i := range idx {
		top = append(top, ServiceRank{
			ID:              services[i].ID,
			Name:            services[i].Name,
			Category:        services[i].Category,
			Price:           services[i].BasePrice,
			OccurrenceCount: counts[i],
		})
	}
	return top
}
