package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/entities"
)

func TestStockAlertsOf(t *testing.T) {
	t.Run("empty parts yields empty fixed shape", func(t *testing.T) {
		s := StockAlertsOf(nil, StockAlertDisplayLimit)
		if s.LowStock == nil || s.OutOfStock == nil {
			t.Fatalf("lists must be empty, not nil")
		}
		if len(s.LowStock) != 0 || len(s.OutOfStock) != 0 || s.TotalLowStock != 0 || s.TotalOutOfStock != 0 {
			t.Fatalf("expected zeroed alerts, got %+v", s)
		}
	})

	t.Run("partitions active parts", func(t *testing.T) {
		parts := []entities.Part{
			{ID: "1", Name: "brake pad", Stock: 0, MinStock: 4, Active: true},
			{ID: "2", Name: "chain", Stock: 2, MinStock: 5, Active: true},
			{ID: "3", Name: "oil filter", Stock: 20, MinStock: 5, Active: true},
			{ID: "4", Name: "retired", Stock: 0, MinStock: 1, Active: false},
		}
		s := StockAlertsOf(parts, StockAlertDisplayLimit)
		if s.TotalOutOfStock != 1 || s.TotalLowStock != 1 {
			t.Fatalf("unexpected totals: %+v", s)
		}
		if s.OutOfStock[0].ID != "1" || s.LowStock[0].ID != "2" {
			t.Fatalf("unexpected partition: %+v", s)
		}
	})

	t.Run("display cap keeps true totals", func(t *testing.T) {
		parts := make([]entities.Part, 0, 8)
		for i := 0; i < 8; i++ {
			parts = append(parts, entities.Part{ID: "p", Stock: 0, MinStock: 1, Active: true})
		}
		s := StockAlertsOf(parts, 5)
		if len(s.OutOfStock) != 5 || s.TotalOutOfStock != 8 {
			t.Fatalf("expected 5 shown of 8, got shown=%d total=%d", len(s.OutOfStock), s.TotalOutOfStock)
		}
	})
}

func TestInventorySummaryOf(t *testing.T) {
	parts := []entities.Part{
		{ID: "1", Stock: 3, MinStock: 1, Active: true, UnitPrice: decimal.NewFromFloat(10.50)},
		{ID: "2", Stock: 2, MinStock: 5, Active: true, UnitPrice: decimal.NewFromInt(4)},
		{ID: "3", Stock: 9, MinStock: 1, Active: false, UnitPrice: decimal.NewFromInt(100)},
	}
	s := InventorySummaryOf(parts, StockAlertDisplayLimit)
	if s.TotalParts != 3 || s.ActiveParts != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	// 3*10.50 + 2*4 = 39.50; the inactive part contributes nothing.
	if !s.InventoryValue.Equal(decimal.NewFromFloat(39.50)) {
		t.Fatalf("expected inventory value 39.50, got %s", s.InventoryValue)
	}
	if s.StockAlerts.TotalLowStock != 1 {
		t.Fatalf("expected embedded alerts, got %+v", s.StockAlerts)
	}
}
