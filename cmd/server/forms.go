package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/sambam0/Pricewise-tool/internal/form"
	"github.com/sambam0/Pricewise-tool/internal/pricing"
)

// Form and query field names follow the original tool's wire contract.
// Carried floats are serialized with the shortest exact representation
// so they round-trip between stages unmodified.

func parseCostForm(values url.Values) pricing.CostInput {
	return pricing.CostInput{
		MaterialsCost:           form.Float(values, "cost_materials"),
		LaborHours:              form.Float(values, "labor_hours"),
		LaborRate:               form.Float(values, "labor_rate"),
		PackagingCost:           form.Float(values, "packaging_cost"),
		ShippingCost:            form.Float(values, "shipping_cost"),
		MonthlyOverhead:         form.Float(values, "monthly_overhead"),
		MonthlyProductionVolume: form.Float(values, "monthly_production_volume"),
	}
}

func parseCompetitorsForm(values url.Values) pricing.CompetitorSet {
	entries := make([]pricing.Competitor, 0, pricing.MaxCompetitors)
	for i := 1; i <= pricing.MaxCompetitors; i++ {
		entries = append(entries, pricing.Competitor{
			Name:  form.String(values, fmt.Sprintf("comp_name_%d", i)),
			Price: form.Float(values, fmt.Sprintf("comp_price_%d", i)),
		})
	}
	return pricing.NewCompetitorSet(entries)
}

func parseWhatIfForm(values url.Values) pricing.WhatIfInput {
	return pricing.WhatIfInput{
		Original: pricing.Scenario{
			COGS:  form.Float(values, "original_cogs"),
			Price: form.Float(values, "original_price"),
		},
		New: pricing.Scenario{
			COGS:  form.Float(values, "new_cogs"),
			Price: form.Float(values, "new_price"),
		},
		ProjectedVolume: form.Float(values, "projected_volume"),
	}
}

func costSummaryFromQuery(values url.Values) pricing.CostSummary {
	return pricing.CostSummary{
		FullyLoadedCost: form.Float(values, "loaded_cost"),
		COGSPerUnit:     form.Float(values, "cogs"),
		MonthlyOverhead: form.Float(values, "overhead"),
	}
}

func competitorPricesFromQuery(values url.Values) []float64 {
	prices := make([]float64, 0, pricing.MaxCompetitors)
	for i := 1; i <= pricing.MaxCompetitors; i++ {
		if price := form.Float(values, fmt.Sprintf("comp_price_%d", i)); price > 0 {
			prices = append(prices, price)
		}
	}
	return prices
}

func marketAnalysisURL(costs pricing.CostSummary) string {
	return "/market-analysis?" + costQuery(costs).Encode()
}

// strategiesURL re-emits surviving competitor prices 1-based and
// gap-free, so stage 3 always reads a contiguous prefix of slots.
func strategiesURL(costs pricing.CostSummary, competitors pricing.CompetitorSet) string {
	q := costQuery(costs)
	for i, price := range competitors.Prices() {
		q.Set(fmt.Sprintf("comp_price_%d", i+1), formatFloat(price))
	}
	return "/pricing-strategy?" + q.Encode()
}

func costQuery(costs pricing.CostSummary) url.Values {
	q := url.Values{}
	q.Set("loaded_cost", formatFloat(costs.FullyLoadedCost))
	q.Set("cogs", formatFloat(costs.COGSPerUnit))
	q.Set("overhead", formatFloat(costs.MonthlyOverhead))
	return q
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
