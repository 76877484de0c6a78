package output_test

import (
	"fmt"

	"github.com/blackwell-systems/anthropac/internal/output"
	"github.com/blackwell-systems/anthropac/internal/salience"
)

// Example showing the table for a single freelist
func ExampleRenderListTable() {
	report, _ := salience.AnalyzeList([]string{"dog", "cat", "bird"}, 1)
	fmt.Print(output.RenderListTable(report))
	// Output:
	// PARTICIPANT #1
	// Position in List  Word  Ranked Points  Salience
	// ───────────────────────────────────────────────
	// 1                 dog   3              1.00
	// 2                 cat   2              0.67
	// 3                 bird  1              0.33
}
