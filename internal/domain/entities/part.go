package entities

import "github.com/shopspring/decimal"

// Part is an inventory item. Stock alerts partition active parts into
// out-of-stock (Stock == 0) and low-stock (0 < Stock <= MinStock).
type Part struct {
	ID        string
	Name      string
	Stock     int
	MinStock  int
	Active    bool
	UnitPrice decimal.Decimal
}

func (p Part) OutOfStock() bool { return p.Stock <= 0 }

func (p Part) LowStock() bool { return p.Stock > 0 && p.Stock <= p.MinStock }
