package salience

import (
	"errors"
	"io"
	"log"
)

// Options controls how lines are turned into freelists.
type Options struct {
	FoldCase bool // Unicode case-fold tokens before counting
	Strict   bool // treat blank lines as fatal
	Logger   *log.Logger
}

// Analyze runs the full pipeline over the given lines, one freelist per line.
//
// Blank lines produce an empty per-list report and still count as a list,
// unless opts.Strict is set, in which case the first blank line aborts the
// run with a *MalformedLineError. The returned error is a
// *DivisionGuardError when no tokens were seen; the per-list reports are
// still returned in that case.
func Analyze(lines []string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	agg := NewAggregator()
	result := &Result{Lists: make([]*ListReport, 0, len(lines))}

	for i, line := range lines {
		report, err := AnalyzeList(Tokenize(line, opts.FoldCase), i+1)
		if err != nil {
			var malformed *MalformedLineError
			if !errors.As(err, &malformed) || opts.Strict {
				return nil, err
			}
			logger.Printf("%v (counted as an empty list)", err)
		}
		agg.Add(report)
		result.Lists = append(result.Lists, report)
	}

	logger.Printf("analyzed %d lists", agg.Lists())

	summary, err := agg.Summarize()
	if err != nil {
		return result, err
	}
	result.Summary = summary
	return result, nil
}
