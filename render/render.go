package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/stats"
)

// Options holds options shared by the printers.
type Options struct {
	Title     string // heading above the table; empty means no heading
	Precision int    // fractional digits for cell values
	MaxRows   int    // cap on printed body rows; 0 means all rows
}

// DefaultOptions returns printing defaults with six fractional digits.
func DefaultOptions() *Options {
	return &Options{Precision: 6}
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")).
			Bold(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))
)

// formatCell renders one value at the requested precision; NaN renders as
// a styled "NaN" token.
func formatCell(v float64, precision int) string {
	if math.IsNaN(v) {
		return missingStyle.Render("NaN")
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// cellWidth is the display width of a cell ignoring ANSI escapes.
func cellWidth(s string) int {
	return lipgloss.Width(s)
}

// writeTable lays out a table with a left label column, padding every
// column to its widest cell. Styling must already be applied to the cells.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = cellWidth(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			if cw := cellWidth(cell); cw > widths[c] {
				widths[c] = cw
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for c, cell := range cells {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			if c == 0 {
				// Labels align left, numbers align right.
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			} else {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			}
		}
		b.WriteByte('\n')
	}

	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTitle emits the styled heading when one is set.
func writeTitle(w io.Writer, title string) error {
	if title == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, titleStyle.Render(title))
	return err
}

// Frame prints the frame as an aligned table, index column first. With a
// positive MaxRows only that many body rows are printed, followed by an
// elision marker and the total shape.
func Frame[I comparable](w io.Writer, f *frame.Frame[I], opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := writeTitle(w, opts.Title); err != nil {
		return err
	}

	columns := f.Columns()
	header := make([]string, 0, len(columns)+1)
	header = append(header, headerStyle.Render(f.IndexName()))
	for _, name := range columns {
		header = append(header, headerStyle.Render(name))
	}

	printed := f.Rows()
	truncated := false
	if opts.MaxRows > 0 && printed > opts.MaxRows {
		printed = opts.MaxRows
		truncated = true
	}

	index := f.Index()
	rows := make([][]string, 0, printed)
	for r := 0; r < printed; r++ {
		row := make([]string, 0, len(columns)+1)
		row = append(row, indexStyle.Render(fmt.Sprint(index[r])))
		for c := range columns {
			v, err := f.Value(r, c)
			if err != nil {
				return err
			}
			row = append(row, formatCell(v, opts.Precision))
		}
		rows = append(rows, row)
	}
	if err := writeTable(w, header, rows); err != nil {
		return err
	}
	if truncated {
		shape := f.Shape()
		if _, err := fmt.Fprintf(w, "... %d rows x %d columns\n", shape[0], shape[1]); err != nil {
			return err
		}
	}
	return nil
}

// ColumnSummary prints per-column descriptive statistics together with the
// missing-value count of each column.
func ColumnSummary[I comparable](w io.Writer, f *frame.Frame[I], opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := writeTitle(w, opts.Title); err != nil {
		return err
	}

	summary := f.ColumnStats()
	columns := f.Columns()

	header := []string{headerStyle.Render("statistic")}
	for _, name := range columns {
		header = append(header, headerStyle.Render(name))
	}

	labels := summary.Index()
	rows := make([][]string, 0, len(labels)+1)
	for r, label := range labels {
		row := []string{indexStyle.Render(label)}
		for c := range columns {
			v, err := summary.Value(r, c)
			if err != nil {
				return err
			}
			precision := opts.Precision
			if label == "n" {
				precision = 0
			}
			row = append(row, formatCell(v, precision))
		}
		rows = append(rows, row)
	}

	missingRow := []string{indexStyle.Render("missing")}
	for _, name := range columns {
		values, err := f.Column(name)
		if err != nil {
			return err
		}
		missing := 0
		for _, v := range values {
			if math.IsNaN(v) {
				missing++
			}
		}
		missingRow = append(missingRow, strconv.Itoa(missing))
	}
	rows = append(rows, missingRow)

	return writeTable(w, header, rows)
}

// Percentiles prints the requested column percentiles as a table.
func Percentiles[I comparable](w io.Writer, f *frame.Frame[I], percentiles []float64, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	result, err := f.Percentiles(percentiles)
	if err != nil {
		return err
	}
	if err := writeTitle(w, opts.Title); err != nil {
		return err
	}

	header := []string{headerStyle.Render("percentile")}
	for _, name := range result.Columns() {
		header = append(header, headerStyle.Render(name))
	}
	labels := result.Index()
	rows := make([][]string, 0, len(labels))
	for r, label := range labels {
		row := []string{indexStyle.Render(label)}
		for c := 0; c < result.Cols(); c++ {
			v, err := result.Value(r, c)
			if err != nil {
				return err
			}
			row = append(row, formatCell(v, opts.Precision))
		}
		rows = append(rows, row)
	}
	return writeTable(w, header, rows)
}

// RowCompleteness prints how many rows are fully observed and how many
// carry at least one missing cell.
func RowCompleteness[I comparable](w io.Writer, f *frame.Frame[I], opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := writeTitle(w, opts.Title); err != nil {
		return err
	}

	complete := f.DropNaNRows().Rows()
	total := f.Rows()
	_, err := fmt.Fprintf(w, "rows: %d  complete: %d  with missing: %d\n",
		total, complete, total-complete)
	return err
}

// ColumnAutocorrelations prints the autocorrelation of each column for lags
// 1 through maxLag, computed over the column's non-missing values.
func ColumnAutocorrelations[I comparable](w io.Writer, f *frame.Frame[I], maxLag int, opts *Options) error {
	if opts == nil {
		opts = &Options{Precision: 3}
	}
	if maxLag <= 0 {
		return fmt.Errorf("%w: max lag must be positive", frame.ErrInvalidParameter)
	}
	if err := writeTitle(w, opts.Title); err != nil {
		return err
	}

	columns := f.Columns()
	header := []string{headerStyle.Render("lag")}
	for _, name := range columns {
		header = append(header, headerStyle.Render(name))
	}

	acfs := make([][]float64, len(columns))
	for c, name := range columns {
		values, err := f.Column(name)
		if err != nil {
			return err
		}
		observed := values[:0:0]
		for _, v := range values {
			if !math.IsNaN(v) {
				observed = append(observed, v)
			}
		}
		acfs[c] = stats.Autocorrelations(observed, maxLag)
	}

	rows := make([][]string, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		row := []string{indexStyle.Render(strconv.Itoa(lag))}
		for c := range columns {
			v := math.NaN()
			if lag-1 < len(acfs[c]) {
				v = acfs[c][lag-1]
			}
			row = append(row, formatCell(v, opts.Precision))
		}
		rows = append(rows, row)
	}
	return writeTable(w, header, rows)
}
