package main

import (
	"net/http"

	"github.com/sambam0/Pricewise-tool/internal/form"
	"github.com/sambam0/Pricewise-tool/internal/pricing"
)

type marketViewData struct {
	LoadedCost float64
}

type strategiesViewData struct {
	LoadedCost float64
	COGS       float64
	Strategies []pricing.Strategy
}

type simulatorViewData struct {
	LoadedCost float64
	COGS       float64
	// Results is nil when the page has not been submitted yet; a
	// computed all-zero result is a different thing than no result.
	Results *pricing.WhatIfResult
}

// Stage 1: cost calculator.

func (s *server) handleCostForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "cost_calculator.html", nil)
}

func (s *server) handleCostSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	breakdown := pricing.ComputeCost(parseCostForm(r.PostForm))
	http.Redirect(w, r, marketAnalysisURL(breakdown.Summary()), http.StatusSeeOther)
}

// Stage 2: market analyzer. The competitor form posts back to the same
// URL so the query parameters carried from stage 1 stay available on
// submit.

func (s *server) handleMarketForm(w http.ResponseWriter, r *http.Request) {
	costs := costSummaryFromQuery(r.URL.Query())
	s.renderTemplate(w, "market_analysis.html", marketViewData{LoadedCost: costs.FullyLoadedCost})
}

func (s *server) handleMarketSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	costs := costSummaryFromQuery(r.URL.Query())
	competitors := parseCompetitorsForm(r.PostForm)
	http.Redirect(w, r, strategiesURL(costs, competitors), http.StatusSeeOther)
}

// Stage 3: strategy modeler.

func (s *server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	costs := costSummaryFromQuery(q)
	strategies := pricing.ModelStrategies(costs, competitorPricesFromQuery(q))

	s.renderTemplate(w, "pricing_strategy.html", strategiesViewData{
		LoadedCost: costs.FullyLoadedCost,
		COGS:       costs.COGSPerUnit,
		Strategies: strategies,
	})
}

// Stage 4: optimization simulator. The GET form is prefilled from the
// carried cost values when they are present.

func (s *server) handleSimulatorForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.renderTemplate(w, "optimization_simulator.html", simulatorViewData{
		LoadedCost: form.Float(q, "loaded_cost"),
		COGS:       form.Float(q, "cogs"),
	})
}

func (s *server) handleSimulatorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	result := pricing.Simulate(parseWhatIfForm(r.PostForm))

	q := r.URL.Query()
	s.renderTemplate(w, "optimization_simulator.html", simulatorViewData{
		LoadedCost: form.Float(q, "loaded_cost"),
		COGS:       form.Float(q, "cogs"),
		Results:    &result,
	})
}
