// Package salience computes Smith's S cognitive salience for freelist data.
//
// Each input line is one respondent's freelist. AnalyzeList ranks every token
// occurrence within its list, an Aggregator folds those per-list rows into
// cross-list frequency and salience totals, and Summarize turns the totals
// into two sorted views (by frequency and by composite salience).
package salience

// ReportRow is one token occurrence within a single freelist.
type ReportRow struct {
	Position     int     // 1-based position in the list
	Token        string
	ReversedRank int     // L - Position + 1
	Salience     float64 // ReversedRank / L, full precision
}

// ListReport holds the ranked rows for one freelist.
type ListReport struct {
	Index  int // 1-based list (respondent) number
	Length int // number of tokens, duplicates counted
	Rows   []ReportRow
}

// SummaryRow aggregates one unique token across all lists.
type SummaryRow struct {
	Token             string
	Frequency         int
	FrequencyPercent  float64 // rounded to 2 decimals
	CompositeSalience float64 // rounded to 2 decimals
}

// Summary holds the two sorted views over the same set of rows.
type Summary struct {
	ByFrequency []SummaryRow
	BySalience  []SummaryRow
	Lists       int
	Occurrences int
}

// Unique returns the number of distinct tokens.
func (s *Summary) Unique() int {
	return len(s.ByFrequency)
}

// Result is the complete output of one analysis run.
type Result struct {
	Lists   []*ListReport
	Summary *Summary
}
