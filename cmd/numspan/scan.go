package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/numspan/numspan"
	"github.com/numspan/numspan/pkg/config"
	"github.com/numspan/numspan/pkg/enum"
	"github.com/numspan/numspan/pkg/prefilter"
	"github.com/numspan/numspan/pkg/store"
	"github.com/numspan/numspan/pkg/types"
)

var (
	scanConfigPath    string
	scanGroupSize     int
	scanThreshold     int
	scanFormat        string
	scanOutputPath    string
	scanIncludeHidden bool
	scanMaxFileSize   int64
)

var scanCmd = &cobra.Command{
	Use:   "scan <target>",
	Short: "Scan a target for numeric literals",
	Long: `Scan a file or directory for numeric literals and compute their digit
grouping. Use "-" as the target to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to YAML settings file")
	scanCmd.Flags().IntVar(&scanGroupSize, "group-size", 0, "Digits per decimal group (overrides settings file)")
	scanCmd.Flags().IntVar(&scanThreshold, "threshold", -1, "Minimum digit-run length before grouping (overrides settings file)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "human", "Output format: human, json")
	scanCmd.Flags().StringVar(&scanOutputPath, "output", "", "Store results in a database at this path")
	scanCmd.Flags().BoolVar(&scanIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	scanCmd.Flags().Int64Var(&scanMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to scan (bytes)")
}

// loadSettings resolves the settings file plus flag overrides.
func loadSettings() (config.Settings, error) {
	settings := config.Default()
	if scanConfigPath != "" {
		var err error
		settings, err = config.Load(scanConfigPath)
		if err != nil {
			return settings, err
		}
	}
	if scanGroupSize > 0 {
		settings.GroupSize = scanGroupSize
	}
	if scanThreshold >= 0 {
		settings.Threshold = scanThreshold
	}
	return settings, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, err := settings.Config()
	if err != nil {
		return err
	}
	allow, err := settings.KindFilter()
	if err != nil {
		return err
	}

	h, err := numspan.New(
		numspan.WithGroupSize(cfg.GroupSize),
		numspan.WithThreshold(cfg.Threshold),
	)
	if err != nil {
		return fmt.Errorf("creating highlighter: %w", err)
	}

	var s store.Store
	if scanOutputPath != "" {
		s, err = store.New(store.Config{Path: scanOutputPath})
		if err != nil {
			return fmt.Errorf("creating store: %w", err)
		}
		defer s.Close()
	}

	var (
		mu      sync.Mutex
		records []store.MatchRecord
	)
	gate := prefilter.New()

	scanOne := func(path string, content []byte) error {
		if !gate.Candidate(content) {
			return nil
		}
		text := string(content)
		runes := []rune(text)

		var fileRecords []store.MatchRecord
		err := h.Literals(text, 0, len(runes), func(m types.Match, spans []types.Group) error {
			if allow != nil && !allow[m.Kind] {
				return nil
			}
			fileRecords = append(fileRecords, store.MatchRecord{
				Path:    path,
				Kind:    m.Kind,
				Span:    m.Span,
				Literal: string(runes[m.Span.Start:m.Span.End]),
				Spans:   spans,
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		// The enumerator reads files in parallel; results are merged
		// under the lock.
		mu.Lock()
		defer mu.Unlock()
		if s != nil {
			if err := s.AddFile(path, int64(len(content))); err != nil {
				return err
			}
			for _, rec := range fileRecords {
				if err := s.AddMatch(rec); err != nil {
					return err
				}
			}
		}
		records = append(records, fileRecords...)
		return nil
	}

	if target == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := scanOne("<stdin>", content); err != nil {
			return err
		}
	} else {
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("target does not exist: %s", target)
		}
		enumerator := enum.NewFilesystem(enum.Config{
			Root:          target,
			MaxFileSize:   scanMaxFileSize,
			IncludeHidden: scanIncludeHidden,
		})
		if err := enumerator.Enumerate(context.Background(), scanOne); err != nil {
			return err
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}
		return records[i].Span.Start < records[j].Span.Start
	})

	switch scanFormat {
	case "json":
		return outputScanJSON(cmd.OutOrStdout(), records)
	case "human":
		return outputScanHuman(cmd.OutOrStdout(), records)
	default:
		return fmt.Errorf("unknown format: %s", scanFormat)
	}
}

// jsonSpan and jsonMatch shape the JSON output.
type jsonSpan struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Parity string `json:"parity"`
}

type jsonMatch struct {
	Path    string     `json:"path"`
	Kind    string     `json:"kind"`
	Start   int        `json:"start"`
	End     int        `json:"end"`
	Literal string     `json:"literal"`
	Spans   []jsonSpan `json:"spans"`
}

func outputScanJSON(out io.Writer, records []store.MatchRecord) error {
	items := make([]jsonMatch, 0, len(records))
	for _, rec := range records {
		item := jsonMatch{
			Path:    rec.Path,
			Kind:    rec.Kind.String(),
			Start:   rec.Span.Start,
			End:     rec.Span.End,
			Literal: rec.Literal,
		}
		for _, g := range rec.Spans {
			item.Spans = append(item.Spans, jsonSpan{Start: g.Start, End: g.End, Parity: g.Parity.String()})
		}
		items = append(items, item)
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

func outputScanHuman(out io.Writer, records []store.MatchRecord) error {
	for _, rec := range records {
		fmt.Fprintf(out, "%s:%d-%d %s %s -> %s\n",
			rec.Path, rec.Span.Start, rec.Span.End,
			rec.Kind, rec.Literal, groupedText(rec))
	}
	fmt.Fprintf(out, "%d literals\n", len(records))
	return nil
}

// groupedText renders a literal with its style groups parenthesized:
// prefixes, separators and ungrouped runs pass through untouched.
func groupedText(rec store.MatchRecord) string {
	runes := []rune(rec.Literal)
	base := rec.Span.Start

	var out []rune
	i := 0
	for i < len(runes) {
		grouped := false
		for _, g := range rec.Spans {
			if g.Start == base+i {
				out = append(out, '(')
				out = append(out, runes[i:g.End-base]...)
				out = append(out, ')')
				i = g.End - base
				grouped = true
				break
			}
		}
		if !grouped {
			out = append(out, runes[i])
			i++
		}
	}
	return string(out)
}
