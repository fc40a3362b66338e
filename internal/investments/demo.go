// Package investments holds the example portfolio shown in the investments
// view. No live endpoint serves this data yet; the view renders these fixed
// positions until the backend grows one.
package investments

import "github.com/shopspring/decimal"

// Entry is one contribution to a position.
type Entry struct {
	Date         string
	LocalAmount  decimal.Decimal
	Rentability  decimal.Decimal
	LocalProfit  decimal.Decimal
	PartialValue decimal.Decimal
}

// Position aggregates the entries for one instrument.
type Position struct {
	Ticker      string
	EntityName  string
	Entries     []Entry
	Amount      decimal.Decimal
	Rentability decimal.Decimal
	Profit      decimal.Decimal
	TotalValue  decimal.Decimal
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Example returns the demo portfolio.
func Example() []Position {
	return []Position{
		{
			Ticker:     "AAPL",
			EntityName: "Apple Inc.",
			Entries: []Entry{
				{Date: "2023-01-01", LocalAmount: d("1000"), Rentability: d("0.05"), LocalProfit: d("50"), PartialValue: d("1050")},
				{Date: "2023-02-01", LocalAmount: d("500"), Rentability: d("0.03"), LocalProfit: d("15"), PartialValue: d("565")},
			},
			Amount:      d("1500"),
			Rentability: d("0.04"),
			Profit:      d("65"),
			TotalValue:  d("1565"),
		},
		{
			Ticker:     "GOOGL",
			EntityName: "Alphabet Inc.",
			Entries: []Entry{
				{Date: "2023-01-15", LocalAmount: d("2000"), Rentability: d("0.06"), LocalProfit: d("120"), PartialValue: d("2120")},
			},
			Amount:      d("2000"),
			Rentability: d("0.06"),
			Profit:      d("120"),
			TotalValue:  d("2120"),
		},
	}
}
