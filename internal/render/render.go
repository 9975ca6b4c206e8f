package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/pathsift/pathsift/internal/search"
)

// Options controls result formatting.
type Options struct {
	Long  bool // table output instead of plain lines
	Color bool
	Width int // display columns available for a line; <= 0 disables truncation
}

var (
	headerColors = text.Colors{text.FgHiGreen, text.Bold}
	dirColors    = text.Colors{text.FgHiBlue, text.Bold}
	fileColors   = text.Colors{text.FgHiYellow, text.Bold}
	emptyColors  = text.Colors{text.FgHiRed, text.Bold}
)

// DetectTerminal returns Options with color and width derived from stdout.
// Non-terminal stdout (pipes, files) gets uncolored, untruncated output.
func DetectTerminal() Options {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return Options{}
	}
	opts := Options{Color: true}
	if width, _, err := term.GetSize(int(fd)); err == nil {
		opts.Width = width
	}
	return opts
}

// Results writes the ranked results to w, one entry per line in the form
// "[score] TYPE path", or as a table in long mode. An empty result list
// prints an explicit no-results message; it is not an error.
func Results(w io.Writer, results []search.ScoredPath, opts Options) {
	fmt.Fprintln(w, paint("Results:", headerColors, opts.Color))

	if len(results) == 0 {
		fmt.Fprintln(w, paint("No results found.", emptyColors, opts.Color))
		return
	}

	if opts.Long {
		fmt.Fprintln(w, longTable(results, opts))
		return
	}

	for _, sp := range results {
		kind := "FILE"
		colors := fileColors
		if sp.Entry.IsDir {
			kind = "DIR "
			colors = dirColors
		}
		line := fmt.Sprintf("[%5d] %s  %s", sp.Score, kind, sp.Entry.FullPath)
		if opts.Width > 0 {
			line = runewidth.Truncate(line, opts.Width, "…")
		}
		fmt.Fprintln(w, paint(line, colors, opts.Color))
	}
}

func longTable(results []search.ScoredPath, opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if opts.Width > 0 {
		tw.SetAllowedRowLength(opts.Width)
	}

	tw.AppendHeader(table.Row{"Score", "Type", "Size", "Modified", "Path"})
	for _, sp := range results {
		kind := "FILE"
		size := fmt.Sprintf("%d", sp.Entry.Size)
		if sp.Entry.IsDir {
			kind = "DIR"
			size = "-"
		}
		tw.AppendRow(table.Row{
			sp.Score,
			kind,
			size,
			sp.Entry.Modified.Format("2006-01-02 15:04"),
			sp.Entry.FullPath,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func paint(s string, colors text.Colors, enabled bool) string {
	if !enabled {
		return s
	}
	return colors.Sprint(s)
}
