package pricing

import "testing"

var exampleCosts = CostSummary{FullyLoadedCost: 50, COGSPerUnit: 45, MonthlyOverhead: 5000}

func TestModelStrategies_WorkedExample(t *testing.T) {
	strategies := ModelStrategies(exampleCosts, []float64{55, 60, 65})

	if len(strategies) != 4 {
		t.Fatalf("expected 4 strategies, got %d", len(strategies))
	}

	wantNames := []string{"Cost-Plus (40%)", "Market Average", "Penetration (10% Below Avg)", "Premium (25% Above Avg)"}
	wantPrices := []float64{70, 60, 54, 75}
	for i := range strategies {
		if strategies[i].Name != wantNames[i] {
			t.Fatalf("strategy %d name = %q, want %q", i, strategies[i].Name, wantNames[i])
		}
		nearlyEqual(t, "price of "+wantNames[i], strategies[i].Price, wantPrices[i])
		nearlyEqual(t, "profitPerUnit of "+wantNames[i], strategies[i].ProfitPerUnit, wantPrices[i]-50)
	}

	costPlus := strategies[0]
	if !costPlus.BreakevenAchievable {
		t.Fatalf("cost-plus breakeven should be achievable")
	}
	if costPlus.BreakevenUnits != 200 {
		t.Fatalf("cost-plus breakevenUnits = %d, want 200", costPlus.BreakevenUnits)
	}
}

func TestModelStrategies_NoCompetitors(t *testing.T) {
	strategies := ModelStrategies(exampleCosts, nil)

	if len(strategies) != 1 {
		t.Fatalf("expected 1 strategy without competitors, got %d", len(strategies))
	}
	if strategies[0].Name != "Cost-Plus (40%)" {
		t.Fatalf("unexpected strategy: %q", strategies[0].Name)
	}
	nearlyEqual(t, "cost-plus price", strategies[0].Price, 70)
}

func TestModelStrategies_CostPlusIsExactMultiple(t *testing.T) {
	costs := CostSummary{FullyLoadedCost: 33.33, COGSPerUnit: 30, MonthlyOverhead: 100}

	strategies := ModelStrategies(costs, nil)

	nearlyEqual(t, "cost-plus price", strategies[0].Price, 33.33*1.40)
}

func TestBreakeven_NotAchievableAtOrBelowCOGS(t *testing.T) {
	costs := CostSummary{FullyLoadedCost: 50, COGSPerUnit: 45, MonthlyOverhead: 5000}

	for _, price := range []float64{45, 40, 0} {
		units, achievable := breakevenUnits(price, costs)
		if achievable {
			t.Fatalf("price %v should not have an achievable breakeven", price)
		}
		if units != 0 {
			t.Fatalf("unachievable breakeven should report 0 units, got %d", units)
		}
	}
}

func TestBreakeven_RoundsHalfToEven(t *testing.T) {
	// 100 / (47 - 45) = 50 exactly; 5 / (47 - 45) = 2.5 rounds to 2.
	costs := CostSummary{FullyLoadedCost: 50, COGSPerUnit: 45, MonthlyOverhead: 100}
	units, achievable := breakevenUnits(47, costs)
	if !achievable || units != 50 {
		t.Fatalf("expected 50 units, got %d (achievable=%v)", units, achievable)
	}

	costs.MonthlyOverhead = 5
	units, _ = breakevenUnits(47, costs)
	if units != 2 {
		t.Fatalf("2.5 should round to 2 (half-to-even), got %d", units)
	}

	costs.MonthlyOverhead = 7
	units, _ = breakevenUnits(47, costs)
	if units != 4 {
		t.Fatalf("3.5 should round to 4 (half-to-even), got %d", units)
	}
}

func TestMarketAverage(t *testing.T) {
	nearlyEqual(t, "average of three", marketAverage([]float64{55, 60, 65}), 60)
	nearlyEqual(t, "average of one", marketAverage([]float64{42}), 42)
	nearlyEqual(t, "average of none", marketAverage(nil), 0)
}
