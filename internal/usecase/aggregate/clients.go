package aggregate

import (
	"sort"
	"time"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

type ClientRank struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}

type ClientDigest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientSummary struct {
	Total           int            `json:"total"`
	NewThisMonth    int            `json:"new_this_month"`
	FrequentClients []ClientRank   `json:"frequent_clients"`
	RecentClients   []ClientDigest `json:"recent_clients"`
}

// ClientSummaryOf counts clients and ranks them by correlated order volume.
// A client/order linkage that cannot be resolved simply contributes zero.
func ClientSummaryOf(clients []entities.Client, orders []entities.WorkOrder, now time.Time, limit int) ClientSummary {
	s := ClientSummary{FrequentClients: []ClientRank{}, RecentClients: []ClientDigest{}}
	month := StartOfMonth(now)

	for _, c := range clients {
		s.Total++
		if inWindow(c.CreatedAt, month) {
			s.NewThisMonth++
		}
	}
	if len(clients) == 0 {
		return s
	}

	ix := correlate.NewIndex(len(clients), func(i int) correlate.Ref { return clients[i].Keys() })
	counts := make([]int, len(clients))
	for _, o := range orders {
		if o.Cancelled() {
			continue
		}
		for _, pos := range ix.Match(o.ClientRef) {
			counts[pos]++
		}
	}

	idx := make([]int, 0, len(clients))
	for i := range clients {
		if counts[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if counts[idx[a]] != counts[idx[b]] {
			return counts[idx[a]] > counts[idx[b]]
		}
		return clients[idx[a]].Name < clients[idx[b]].Name
	})
	if limit > 0 && len(idx) > limit {
		idx = idx[:limit]
	}
	for _, i := range idx {
		s.FrequentClients = append(s.FrequentClients, ClientRank{
			ID:         clients[i].ID,
			Name:       clients[i].Name,
			OrderCount: counts[i],
		})
	}

	recent := make([]entities.Client, len(clients))
	copy(recent, clients)
	sort.SliceStable(recent, func(a, b int) bool {
		ta, tb := recent[a].CreatedAt, recent[b].CreatedAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return recent[a].ID < recent[b].ID
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	for _, c := range recent {
		s.RecentClients = append(s.RecentClients, ClientDigest{
			ID: c.ID, Name: c.Name, Phone: c.Phone, CreatedAt: c.CreatedAt,
		})
	}
	return s
}

type MotorcycleDigest struct {
	ID                  string    `json:"id"`
	Brand               string    `json:"brand"`
	Model               string    `json:"model"`
	Plate               string    `json:"plate"`
	ClientName          string    `json:"client_name"`
	CreatedAt           time.Time `json:"created_at"`
	DaysSinceRegistered int       `json:"days_since_registered"`
}

// RecentMotorcycles lists the newest registered motorcycles with their owner
// resolved by correlation where possible.
func RecentMotorcycles(motos []entities.Motorcycle, clients []entities.Client, now time.Time, limit int) []MotorcycleDigest {
	var ix *correlate.Index
	if len(clients) > 0 {
		ix = correlate.NewIndex(len(clients), func(i int) correlate.Ref { return clients[i].Keys() })
	}

	sorted := make([]entities.Motorcycle, len(motos))
	copy(sorted, motos)
	sort.SliceStable(sorted, func(a, b int) bool {
		ta, tb := sorted[a].CreatedAt, sorted[b].CreatedAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return sorted[a].ID < sorted[b].ID
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]MotorcycleDigest, 0, len(sorted))
	for _, m := range sorted {
		d := MotorcycleDigest{
			ID:                  m.ID,
			Brand:               m.Brand,
			Model:               m.Model,
			Plate:               m.Plate,
			CreatedAt:           m.CreatedAt,
			DaysSinceRegistered: DaysBetween(m.CreatedAt, now),
		}
		if matches := ix.Match(m.ClientRef); len(matches) > 0 {
			d.ClientName = clients[matches[0]].Name
		}
		out = append(out, d)
	}
	return out
}
