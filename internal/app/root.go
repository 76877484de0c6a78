package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/anthropac/internal/config"
	"github.com/blackwell-systems/anthropac/internal/freelist"
	"github.com/blackwell-systems/anthropac/internal/output"
	"github.com/blackwell-systems/anthropac/internal/salience"
)

// invocation is the usage hint shown in the error banner.
const invocation = "anthropac NAME_OF_FILE.txt"

var (
	foldCase    bool
	strict      bool
	summaryOnly bool
	verbose     bool
	top         int

	// RootCmd is the root command for anthropac
	RootCmd = &cobra.Command{
		Use:   "anthropac FILE",
		Short: "Frequency and cognitive salience analysis for freelists",
		Long: `anthropac analyzes freelisted ethnographic data. Each line of the input
file is one participant's freelist: the items they named, in the order they
named them, separated by spaces.

For every participant the items are ranked by position, and each item gets a
salience within that list:

  S = (L - R + 1) / L

where L is the length of the list and R is the item's position. Across all
lists, an item's composite salience (Smith's S) is the sum of its per-list
salience divided by the total number of lists N, so an item scores highly
when many participants mention it early.

Output:
  • One table per participant with position, ranked points, and salience
  • A summary sorted by frequency of mention
  • A summary sorted by composite salience

Settings may also be given in ~/.config/anthropac/config or the environment
(ANTHROPAC_FOLD_CASE, ANTHROPAC_STRICT, ANTHROPAC_TOP, ANTHROPAC_SUMMARY_ONLY,
ANTHROPAC_VERBOSE). Flags take precedence.`,
		Example: `  # Analyze a file of freelists
  anthropac vulgar_words.txt

  # Only print the two summary tables, top 20 items
  anthropac vulgar_words.txt --summary-only --top 20

  # Treat "Dog" and "dog" as the same item
  anthropac animals.txt --fold-case

  # Re-run the analysis whenever the file is saved
  anthropac watch animals.txt`,
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().BoolVar(&foldCase, "fold-case", false, "treat items that differ only by case as the same item")
	RootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on blank lines instead of counting them as empty lists")
	RootCmd.PersistentFlags().BoolVar(&summaryOnly, "summary-only", false, "skip the per-participant tables")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	RootCmd.PersistentFlags().IntVar(&top, "top", 0, "show only the first N rows of each summary (0 = all)")

	// Register subcommands
	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// ArgsError reports a command invoked without exactly one input file.
type ArgsError struct {
	Got int
}

func (e *ArgsError) Error() string {
	if e.Got == 0 {
		return "no freelist file was given"
	}
	return fmt.Sprintf("expected one freelist file, got %d arguments", e.Got)
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ArgsError{Got: len(args)}
	}
	return nil
}

// PrintError writes err to w. Input and argument problems get the error
// banner with the expected invocation; everything else is reported as is.
func PrintError(w io.Writer, err error) {
	var (
		inputErr  *freelist.InputError
		argsErr   *ArgsError
		malformed *salience.MalformedLineError
	)

	switch {
	case errors.As(err, &inputErr), errors.As(err, &argsErr):
		fmt.Fprint(w, output.RenderErrorBanner(err.Error(), invocation))
	case errors.As(err, &malformed):
		fmt.Fprintf(w, "Error: %v (blank lines are rejected with --strict)\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings.Verbose, cmd.ErrOrStderr())
	if settings.Source != "" {
		logger.Printf("settings loaded from %s", settings.Source)
	}

	lines, err := freelist.Load(args[0])
	if err != nil {
		return err
	}
	logger.Printf("read %d lines from %s", len(lines), args[0])

	return report(cmd.OutOrStdout(), lines, settings, logger)
}

// loadSettings reads the settings file and environment, then applies any
// flags given explicitly on the command line.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}

	s, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fold-case") {
		s.FoldCase = foldCase
	}
	if flags.Changed("strict") {
		s.Strict = strict
	}
	if flags.Changed("summary-only") {
		s.SummaryOnly = summaryOnly
	}
	if flags.Changed("verbose") {
		s.Verbose = verbose
	}
	if flags.Changed("top") {
		s.Top = top
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// newLogger returns a stderr diagnostics logger, or a silent one.
func newLogger(enabled bool, w io.Writer) *log.Logger {
	if !enabled {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "anthropac: ", 0)
}

// report analyzes lines and writes every table to w.
// Input without any items still produces the (empty) summary tables.
func report(w io.Writer, lines []string, s *config.Settings, logger *log.Logger) error {
	result, err := salience.Analyze(lines, salience.Options{
		FoldCase: s.FoldCase,
		Strict:   s.Strict,
		Logger:   logger,
	})
	if err != nil && !errors.Is(err, salience.ErrDivisionGuard) {
		return err
	}

	if !s.SummaryOnly {
		for _, list := range result.Lists {
			fmt.Fprintln(w, output.RenderListTable(list))
		}
	}

	if result.Summary == nil {
		logger.Printf("%v; no items to summarize", err)
		fmt.Fprintln(w, output.RenderSummaryTable(output.TitleByFrequency, nil, s.Top))
		fmt.Fprint(w, output.RenderSummaryTable(output.TitleBySalience, nil, s.Top))
		return nil
	}

	summary := result.Summary
	fmt.Fprintln(w, output.RenderSummaryTable(output.TitleByFrequency, summary.ByFrequency, s.Top))
	fmt.Fprintln(w, output.RenderSummaryTable(output.TitleBySalience, summary.BySalience, s.Top))
	fmt.Fprint(w, output.RenderSummaryFooter(summary))

	return nil
}
