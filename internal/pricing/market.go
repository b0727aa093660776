package pricing

import "strings"

// MaxCompetitors is the fixed number of competitor slots offered by the
// market-analysis form. The input contract is fixed-slot; raising this
// means touching the form and the carried query parameters too.
const MaxCompetitors = 3

// Competitor is a single competitor price point.
type Competitor struct {
	Name  string
	Price float64
}

// CompetitorSet is a bounded ordered sequence of at most MaxCompetitors
// competitors. Build one with NewCompetitorSet so the bound and the
// entry filter always hold.
type CompetitorSet []Competitor

// NewCompetitorSet filters and bounds raw competitor entries. Entries
// with an empty name or a non-positive price are dropped; entry order
// is preserved; anything beyond MaxCompetitors is ignored.
func NewCompetitorSet(entries []Competitor) CompetitorSet {
	set := make(CompetitorSet, 0, MaxCompetitors)
	for _, c := range entries {
		if len(set) == MaxCompetitors {
			break
		}
		if strings.TrimSpace(c.Name) == "" || c.Price <= 0 {
			continue
		}
		set = append(set, c)
	}
	return set
}

// Prices returns the competitor prices in entry order. Names do not
// survive past the market-analysis stage; only the prices are carried
// to the strategy modeler.
func (s CompetitorSet) Prices() []float64 {
	prices := make([]float64, 0, len(s))
	for _, c := range s {
		prices = append(prices, c.Price)
	}
	return prices
}
