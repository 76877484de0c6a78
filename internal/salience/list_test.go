package salience

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"testing"
)

func TestAnalyzeList_DogCatBird(t *testing.T) {
	report, err := AnalyzeList([]string{"dog", "cat", "bird"}, 1)
	if err != nil {
		t.Fatalf("AnalyzeList() error: %v", err)
	}

	want := []struct {
		pos      int
		token    string
		reversed int
		salience string
	}{
		{1, "dog", 3, "1.00"},
		{2, "cat", 2, "0.67"},
		{3, "bird", 1, "0.33"},
	}

	if len(report.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(report.Rows), len(want))
	}
	for i, w := range want {
		row := report.Rows[i]
		if row.Position != w.pos || row.Token != w.token || row.ReversedRank != w.reversed {
			t.Errorf("row %d = %+v, want pos=%d token=%s reversed=%d", i, row, w.pos, w.token, w.reversed)
		}
		if got := fmt.Sprintf("%.2f", row.Salience); got != w.salience {
			t.Errorf("row %d salience = %s, want %s", i, got, w.salience)
		}
	}

	if report.Index != 1 || report.Length != 3 {
		t.Errorf("report index/length = %d/%d, want 1/3", report.Index, report.Length)
	}
}

func TestAnalyzeList_RepeatedTokenRankedByOccurrence(t *testing.T) {
	report, err := AnalyzeList([]string{"dog", "dog", "cat"}, 1)
	if err != nil {
		t.Fatalf("AnalyzeList() error: %v", err)
	}

	if report.Rows[0].ReversedRank != 3 || report.Rows[1].ReversedRank != 2 {
		t.Errorf("repeated dog ranks = %d, %d; want 3, 2",
			report.Rows[0].ReversedRank, report.Rows[1].ReversedRank)
	}
	if got := fmt.Sprintf("%.2f", report.Rows[1].Salience); got != "0.67" {
		t.Errorf("second dog salience = %s, want 0.67", got)
	}
}

func TestAnalyzeList_DistinctTokenProperties(t *testing.T) {
	for _, length := range []int{1, 2, 5, 12} {
		t.Run(fmt.Sprintf("L=%d", length), func(t *testing.T) {
			tokens := make([]string, length)
			for i := range tokens {
				tokens[i] = fmt.Sprintf("item%d", i)
			}

			report, err := AnalyzeList(tokens, 1)
			if err != nil {
				t.Fatalf("AnalyzeList() error: %v", err)
			}

			sum := 0
			saliences := make([]float64, 0, length)
			for _, row := range report.Rows {
				sum += row.ReversedRank
				saliences = append(saliences, row.Salience)
			}
			if want := length * (length + 1) / 2; sum != want {
				t.Errorf("sum of reversed ranks = %d, want %d", sum, want)
			}

			sort.Float64s(saliences)
			for i, s := range saliences {
				want := float64(i+1) / float64(length)
				if math.Abs(s-want) > 1e-12 {
					t.Errorf("salience[%d] = %v, want %v", i, s, want)
				}
			}

			if first := report.Rows[0].Salience; first != 1.0 {
				t.Errorf("first salience = %v, want 1.0", first)
			}
			if last := report.Rows[length-1].Salience; last != 1/float64(length) {
				t.Errorf("last salience = %v, want %v", last, 1/float64(length))
			}
		})
	}
}

func TestAnalyzeList_Empty(t *testing.T) {
	report, err := AnalyzeList(nil, 4)

	var malformed *MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedLineError, got %v", err)
	}
	if malformed.Line != 4 {
		t.Errorf("Line = %d, want 4", malformed.Line)
	}
	if report == nil || len(report.Rows) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		fold bool
		want []string
	}{
		{"single spaces", "dog cat bird", false, []string{"dog", "cat", "bird"}},
		{"mixed whitespace", "  dog\tcat   bird ", false, []string{"dog", "cat", "bird"}},
		{"blank", "   ", false, nil},
		{"empty", "", true, nil},
		{"case kept", "Dog dog", false, []string{"Dog", "dog"}},
		{"case folded", "Dog DOG École", true, []string{"dog", "dog", "école"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line, tt.fold)
			if len(tt.want) == 0 {
				if len(got) != 0 {
					t.Errorf("Tokenize(%q, %v) = %q, want no tokens", tt.line, tt.fold, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q, %v) = %q, want %q", tt.line, tt.fold, got, tt.want)
			}
		})
	}
}
