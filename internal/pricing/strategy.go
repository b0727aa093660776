package pricing

import "math"

const (
	costPlusMargin    = 0.40
	penetrationFactor = 0.90
	premiumFactor     = 1.25
)

// Strategy is one candidate pricing strategy with its profitability
// metrics. BreakevenUnits is only meaningful when BreakevenAchievable
// is true; a price at or below COGS can never recover overhead.
type Strategy struct {
	Name                string
	Price               float64
	ProfitPerUnit       float64
	BreakevenUnits      int
	BreakevenAchievable bool
}

// ModelStrategies derives the candidate strategies from the carried
// cost summary and the competitor prices. Cost-Plus is always present
// and always first; the three market-relative strategies (Market
// Average, Penetration, Premium) are included only when at least one
// competitor price exists, so the result has either 1 or 4 entries.
func ModelStrategies(costs CostSummary, competitorPrices []float64) []Strategy {
	marketAvg := marketAverage(competitorPrices)

	strategies := []Strategy{
		newStrategy("Cost-Plus (40%)", costs.FullyLoadedCost*(1+costPlusMargin), costs),
	}
	if marketAvg > 0 {
		strategies = append(strategies,
			newStrategy("Market Average", marketAvg, costs),
			newStrategy("Penetration (10% Below Avg)", marketAvg*penetrationFactor, costs),
			newStrategy("Premium (25% Above Avg)", marketAvg*premiumFactor, costs),
		)
	}
	return strategies
}

func newStrategy(name string, price float64, costs CostSummary) Strategy {
	units, achievable := breakevenUnits(price, costs)
	return Strategy{
		Name:                name,
		Price:               price,
		ProfitPerUnit:       price - costs.FullyLoadedCost,
		BreakevenUnits:      units,
		BreakevenAchievable: achievable,
	}
}

// breakevenUnits is the number of units that recover the monthly
// overhead at the given price, rounded half-to-even. Not achievable
// when the price does not clear COGS.
func breakevenUnits(price float64, costs CostSummary) (int, bool) {
	contribution := price - costs.COGSPerUnit
	if contribution <= 0 {
		return 0, false
	}
	return int(math.RoundToEven(costs.MonthlyOverhead / contribution)), true
}

func marketAverage(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / float64(len(prices))
}
