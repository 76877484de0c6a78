package salience

import (
	"math"
	"sort"
)

// Aggregator accumulates per-token frequency and salience across lists.
type Aggregator struct {
	frequency   map[string]int
	salienceSum map[string]float64
	lists       int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		frequency:   make(map[string]int),
		salienceSum: make(map[string]float64),
	}
}

// Add folds one list report into the running totals. Every report counts as
// one list, including empty ones.
func (a *Aggregator) Add(report *ListReport) {
	a.lists++
	for _, row := range report.Rows {
		a.frequency[row.Token]++
		a.salienceSum[row.Token] += row.Salience
	}
}

// Lists returns the number of lists added so far.
func (a *Aggregator) Lists() int {
	return a.lists
}

// Frequency returns the occurrence count for token.
func (a *Aggregator) Frequency(token string) int {
	return a.frequency[token]
}

// SalienceSum returns the full-precision salience total for token.
func (a *Aggregator) SalienceSum(token string) float64 {
	return a.salienceSum[token]
}

// Summarize produces the sorted summary of everything added so far.
func (a *Aggregator) Summarize() (*Summary, error) {
	return Summarize(a.frequency, a.salienceSum, a.lists)
}

// Summarize turns frequency and salience totals into a Summary.
// listCount is the number of respondents N; composite salience is divided by
// N, not by the number of lists that mention the token.
func Summarize(frequency map[string]int, salienceSum map[string]float64, listCount int) (*Summary, error) {
	if listCount <= 0 {
		return nil, &DivisionGuardError{Guard: GuardListCount}
	}

	total := 0
	for _, n := range frequency {
		total += n
	}
	if total == 0 {
		return nil, &DivisionGuardError{Guard: GuardTotalOccurrences}
	}

	rows := make([]SummaryRow, 0, len(frequency))
	for tok, n := range frequency {
		rows = append(rows, SummaryRow{
			Token:             tok,
			Frequency:         n,
			FrequencyPercent:  round2(100 * float64(n) / float64(total)),
			CompositeSalience: round2(salienceSum[tok] / float64(listCount)),
		})
	}

	byFreq := make([]SummaryRow, len(rows))
	copy(byFreq, rows)
	sort.Slice(byFreq, func(i, j int) bool {
		if byFreq[i].Frequency != byFreq[j].Frequency {
			return byFreq[i].Frequency > byFreq[j].Frequency
		}
		return byFreq[i].Token < byFreq[j].Token
	})

	bySal := make([]SummaryRow, len(rows))
	copy(bySal, rows)
	sort.Slice(bySal, func(i, j int) bool {
		if bySal[i].CompositeSalience != bySal[j].CompositeSalience {
			return bySal[i].CompositeSalience > bySal[j].CompositeSalience
		}
		return bySal[i].Token < bySal[j].Token
	})

	return &Summary{
		ByFrequency: byFreq,
		BySalience:  bySal,
		Lists:       listCount,
		Occurrences: total,
	}, nil
}

// round2 rounds x to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
