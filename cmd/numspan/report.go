package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/numspan/numspan/pkg/highlighter"
	"github.com/numspan/numspan/pkg/store"
	"github.com/numspan/numspan/pkg/types"
)

var (
	reportDatastore string
	reportFormat    string
	reportColor     string
)

// styles holds the two parity renderings. Odd is deliberately
// undecorated; only the even groups stand out, which is what makes the
// alternation readable.
type styles struct {
	even    *color.Color
	heading *color.Color
	path    *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		even:    color.New(color.Bold, color.Underline),
		heading: color.New(color.Bold, color.FgHiWhite),
		path:    color.New(color.FgHiBlue),
	}
	if !enabled {
		s.even.DisableColor()
		s.heading.DisableColor()
		s.path.DisableColor()
	}
	return s
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render stored scan results",
	Long:  "Read literals from a scan database and render them with their digit grouping",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatastore, "datastore", "numspan.db", "Path to scan database")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := store.New(store.Config{Path: reportDatastore})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer s.Close()

	matches, err := s.AllMatches()
	if err != nil {
		return fmt.Errorf("reading matches: %w", err)
	}

	switch reportFormat {
	case "json":
		return outputScanJSON(cmd.OutOrStdout(), matches)
	case "human":
		return outputReportHuman(cmd.OutOrStdout(), matches)
	default:
		return fmt.Errorf("unknown format: %s", reportFormat)
	}
}

func outputReportHuman(out io.Writer, matches []store.MatchRecord) error {
	switch reportColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	}
	st := newStyles(!color.NoColor)

	lastPath := ""
	for _, rec := range matches {
		if rec.Path != lastPath {
			fmt.Fprintf(out, "%s\n", st.path.Sprint(rec.Path))
			lastPath = rec.Path
		}
		fmt.Fprintf(out, "  %6d  %-14s %s\n",
			rec.Span.Start, rec.Kind, renderLiteral(st, rec))
	}
	fmt.Fprintf(out, "%s\n", st.heading.Sprintf("%d literals", len(matches)))
	return nil
}

// renderLiteral styles the even groups of a literal. The spans are
// replayed through a TagSet so rendering sees exactly the merged tags a
// host store would hold.
func renderLiteral(st *styles, rec store.MatchRecord) string {
	tags := highlighter.NewTagSet()
	for _, g := range rec.Spans {
		tags.Merge(g)
	}

	runes := []rune(rec.Literal)
	base := rec.Span.Start

	out := ""
	run := ""
	even := false
	flush := func() {
		if run == "" {
			return
		}
		if even {
			out += st.even.Sprint(run)
		} else {
			out += run
		}
		run = ""
	}
	for i, r := range runes {
		e := tags.Has(base+i, types.Even)
		if e != even {
			flush()
			even = e
		}
		run += string(r)
	}
	flush()
	return out
}
