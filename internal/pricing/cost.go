// Package pricing implements the calculation core of the four-stage
// pricing workflow: fully-loaded unit cost, competitor collection,
// strategy modeling, and what-if simulation. Every function is pure;
// inputs arrive already coerced to float64 and nothing here errors.
package pricing

// CostInput represents the direct and indirect cost inputs of the cost
// calculator stage.
type CostInput struct {
	MaterialsCost           float64
	LaborHours              float64
	LaborRate               float64
	PackagingCost           float64
	ShippingCost            float64
	MonthlyOverhead         float64
	MonthlyProductionVolume float64
}

// CostBreakdown contains all derived values of the cost calculation.
type CostBreakdown struct {
	DirectLaborCost float64
	COGSPerUnit     float64
	OverheadPerUnit float64
	FullyLoadedCost float64
	MonthlyOverhead float64
}

// CostSummary is the slice of the breakdown carried forward to the
// later stages. Downstream stages receive exactly these three values
// and nothing else.
type CostSummary struct {
	FullyLoadedCost float64
	COGSPerUnit     float64
	MonthlyOverhead float64
}

// ComputeCost derives the fully-loaded unit cost from direct and
// indirect cost inputs. A production volume of exactly 0 is treated as
// 1 to avoid dividing by zero; other values, fractional ones included,
// are used as given.
func ComputeCost(in CostInput) CostBreakdown {
	volume := in.MonthlyProductionVolume
	if volume == 0 {
		volume = 1
	}

	directLaborCost := in.LaborHours * in.LaborRate
	cogsPerUnit := in.MaterialsCost + directLaborCost + in.PackagingCost + in.ShippingCost
	overheadPerUnit := in.MonthlyOverhead / volume

	return CostBreakdown{
		DirectLaborCost: directLaborCost,
		COGSPerUnit:     cogsPerUnit,
		OverheadPerUnit: overheadPerUnit,
		FullyLoadedCost: cogsPerUnit + overheadPerUnit,
		MonthlyOverhead: in.MonthlyOverhead,
	}
}

// Summary extracts the values that travel to the market-analysis and
// strategy stages.
func (b CostBreakdown) Summary() CostSummary {
	return CostSummary{
		FullyLoadedCost: b.FullyLoadedCost,
		COGSPerUnit:     b.COGSPerUnit,
		MonthlyOverhead: b.MonthlyOverhead,
	}
}
