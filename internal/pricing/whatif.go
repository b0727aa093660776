package pricing

// Scenario is one cost/price pair of the what-if simulator.
type Scenario struct {
	COGS  float64
	Price float64
}

// ProfitPerUnit is the per-unit profit of the scenario.
func (s Scenario) ProfitPerUnit() float64 {
	return s.Price - s.COGS
}

// WhatIfInput holds the two scenarios under comparison and the volume
// projected for the new scenario. No original volume exists anywhere in
// the workflow, so only the new scenario gets a total-profit projection.
type WhatIfInput struct {
	Original        Scenario
	New             Scenario
	ProjectedVolume float64
}

// WhatIfResult contains the simulator's projections. The original
// scenario intentionally has no total profit.
type WhatIfResult struct {
	OriginalProfitPerUnit float64
	NewProfitPerUnit      float64
	NewTotalProfit        float64
}

// Simulate compares the two scenarios. A projected volume of exactly 0
// is treated as 1, mirroring the cost calculator's divisor guard.
func Simulate(in WhatIfInput) WhatIfResult {
	volume := in.ProjectedVolume
	if volume == 0 {
		volume = 1
	}

	newProfit := in.New.ProfitPerUnit()
	return WhatIfResult{
		OriginalProfitPerUnit: in.Original.ProfitPerUnit(),
		NewProfitPerUnit:      newProfit,
		NewTotalProfit:        newProfit * volume,
	}
}
