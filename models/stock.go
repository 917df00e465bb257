package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type StockHolding struct {
	ID           int                 `json:"id" db:"id"`
	Symbol       string              `json:"symbol" db:"symbol"`
	Name         string              `json:"name" db:"name"`
	Quantity     decimal.Decimal     `json:"quantity" db:"quantity"`
	BuyPrice     decimal.Decimal     `json:"buy_price" db:"buy_price"`
	BuyDate      time.Time           `json:"buy_date" db:"buy_date"`
	CurrentPrice decimal.NullDecimal `json:"current_price" db:"current_price"`
	Note         *string             `json:"note,omitempty" db:"note"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
}

// Cost is what was paid for the position.
func (s *StockHolding) Cost() decimal.Decimal {
	return s.BuyPrice.Mul(s.Quantity)
}

// MarketPrice falls back to the buy price until a current price is recorded.
func (s *StockHolding) MarketPrice() decimal.Decimal {
	if s.CurrentPrice.Valid {
		return s.CurrentPrice.Decimal
	}
	return s.BuyPrice
}

func (s *StockHolding) CurrentValue() decimal.Decimal {
	return s.MarketPrice().Mul(s.Quantity)
}

// HoldingValuation is a holding with its derived figures rounded to cents.
type HoldingValuation struct {
	StockHolding
	Cost          decimal.Decimal `json:"cost"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

type Portfolio struct {
	Holdings           []HoldingValuation `json:"holdings"`
	TotalCost          decimal.Decimal    `json:"total_cost"`
	TotalValue         decimal.Decimal    `json:"total_value"`
	TotalProfit        decimal.Decimal    `json:"total_profit"`
	TotalProfitPercent decimal.Decimal    `json:"total_profit_percent"`
}

// MarshalJSON writes the derived figures with exactly two decimals, as the
// pages show them.
func (v HoldingValuation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StockHolding
		Cost          string `json:"cost"`
		CurrentValue  string `json:"current_value"`
		Profit        string `json:"profit"`
		ProfitPercent string `json:"profit_percent"`
	}{
		StockHolding:  v.StockHolding,
		Cost:          v.Cost.StringFixed(2),
		CurrentValue:  v.CurrentValue.StringFixed(2),
		Profit:        v.Profit.StringFixed(2),
		ProfitPercent: v.ProfitPercent.StringFixed(2),
	})
}

func (p Portfolio) MarshalJSON() ([]byte, error) {
	holdings := p.Holdings
	if holdings == nil {
		holdings = []HoldingValuation{}
	}
	return json.Marshal(struct {
		Holdings           []HoldingValuation `json:"holdings"`
		TotalCost          string             `json:"total_cost"`
		TotalValue         string             `json:"total_value"`
		TotalProfit        string             `json:"total_profit"`
		TotalProfitPercent string             `json:"total_profit_percent"`
	}{
		Holdings:           holdings,
		TotalCost:          p.TotalCost.StringFixed(2),
		TotalValue:         p.TotalValue.StringFixed(2),
		TotalProfit:        p.TotalProfit.StringFixed(2),
		TotalProfitPercent: p.TotalProfitPercent.StringFixed(2),
	})
}

// ValuePortfolio computes per-holding and aggregate cost, value and profit.
// Totals are accumulated at full precision and rounded only for presentation.
func ValuePortfolio(holdings []StockHolding) Portfolio {
	p := Portfolio{Holdings: make([]HoldingValuation, 0, len(holdings))}
	totalCost, totalValue := decimal.Zero, decimal.Zero

	for _, h := range holdings {
		cost := h.Cost()
		value := h.CurrentValue()
		profit := value.Sub(cost)

		totalCost = totalCost.Add(cost)
		totalValue = totalValue.Add(value)

		p.Holdings = append(p.Holdings, HoldingValuation{
			StockHolding:  h,
			Cost:          cost.Round(2),
			CurrentValue:  value.Round(2),
			Profit:        profit.Round(2),
			ProfitPercent: percentOf(profit, cost).Round(2),
		})
	}

	totalProfit := totalValue.Sub(totalCost)
	p.TotalCost = totalCost.Round(2)
	p.TotalValue = totalValue.Round(2)
	p.TotalProfit = totalProfit.Round(2)
	p.TotalProfitPercent = percentOf(totalProfit, totalCost).Round(2)
	return p
}

// percentOf returns part/whole*100, or zero when whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
