package aggregate

import (
	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/entities"
)

// StockAlertDisplayLimit caps the returned alert lists; the true totals are
// reported alongside so the cap never hides the size of the problem.
const StockAlertDisplayLimit = 5

type PartAlert struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type StockAlerts struct {
	LowStock        []PartAlert `json:"low_stock"`
	OutOfStock      []PartAlert `json:"out_of_stock"`
	TotalLowStock   int         `json:"total_low_stock"`
	TotalOutOfStock int         `json:"total_out_of_stock"`
}

// StockAlertsOf partitions the active parts into out-of-stock and low-stock.
// Inactive parts are invisible to alerting.
func StockAlertsOf(parts []entities.Part, limit int) StockAlerts {
	s := StockAlerts{LowStock: []PartAlert{}, OutOfStock: []PartAlert{}}
	for _, p := range parts {
		if !p.Active {
			continue
		}
		switch {
		case p.OutOfStock():
			s.TotalOutOfStock++
			if limit <= 0 || len(s.OutOfStock) < limit {
				s.OutOfStock = append(s.OutOfStock, alertOf(p))
			}
		case p.LowStock():
			s.TotalLowStock++
			if limit <= 0 || len(s.LowStock) < limit {
				s.LowStock = append(s.LowStock, alertOf(p))
			}
		}
	}
	return s
}

func alertOf(p entities.Part) PartAlert {
	return PartAlert{ID: p.ID, Name: p.Name, Stock: p.Stock, MinStock: p.MinStock, UnitPrice: p.UnitPrice}
}

// InventorySummary is the admin inventory view: counts, total stock value and
// the alert partition.
type InventorySummary struct {
	TotalParts     int             `json:"total_parts"`
	ActiveParts    int             `json:"active_parts"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	StockAlerts    StockAlerts     `json:"stock_alerts"`
}

func InventorySummaryOf(parts []entities.Part, alertLimit int) InventorySummary {
	s := InventorySummary{StockAlerts: StockAlertsOf(parts, alertLimit)}
	for _, p := range parts {
		s.TotalParts++
		if !p.Active {
			continue
		}
		s.ActiveParts++
		if p.Stock > 0 {
			s.InventoryValue = s.InventoryValue.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
		}
	}
	return s
}
