package salience

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tokenize splits a freelist line on runs of whitespace.
// When fold is true each token is Unicode case-folded.
func Tokenize(line string, fold bool) []string {
	tokens := strings.Fields(line)
	if !fold || len(tokens) == 0 {
		return tokens
	}

	folder := cases.Fold()
	for i, tok := range tokens {
		tokens[i] = folder.String(tok)
	}
	return tokens
}

// AnalyzeList ranks every token occurrence in one freelist.
//
// Each physical occurrence is ranked by its own position, so a token repeated
// within a list yields one row per occurrence. A list with no tokens returns
// an empty report together with a *MalformedLineError.
func AnalyzeList(tokens []string, index int) (*ListReport, error) {
	length := len(tokens)
	report := &ListReport{
		Index:  index,
		Length: length,
		Rows:   make([]ReportRow, 0, length),
	}

	if length == 0 {
		return report, &MalformedLineError{Line: index}
	}

	for i, tok := range tokens {
		position := i + 1
		reversed := length - position + 1
		report.Rows = append(report.Rows, ReportRow{
			Position:     position,
			Token:        tok,
			ReversedRank: reversed,
			Salience:     float64(reversed) / float64(length),
		})
	}

	return report, nil
}
