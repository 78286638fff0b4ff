package frame

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSV codec. The format is deliberately minimal: comma-separated fields with
// surrounding whitespace trimmed, a mandatory header row, blank lines
// skipped, missing cells as empty fields, and a tolerated trailing comma on
// the header. Embedded commas are not quoted or escaped; that is a stated
// limitation of the format.

// WriteCSVOptions holds options for WriteCSV.
type WriteCSVOptions struct {
	Header bool // write the header line
	Index  bool // write the index column
}

// DefaultWriteCSVOptions returns options writing both header and index.
func DefaultWriteCSVOptions() *WriteCSVOptions {
	return &WriteCSVOptions{Header: true, Index: true}
}

// splitCSVLine splits on commas and trims each field. A trailing comma
// yields one empty trailing field.
func splitCSVLine(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

// ReadCSV decodes a frame from CSV text. The first line is the header; with
// hasIndex the first header field becomes the index label and the first
// field of each row is parsed as an index value, otherwise index values are
// generated as the sequence 0, 1, 2, ... (which requires a numeric index
// type). Empty cells decode as NaN; any other cell must parse as a float64.
func ReadCSV[I comparable](r io.Reader, hasIndex bool) (*Frame[I], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		return nil, fmt.Errorf("%w: missing header row", ErrCorruptData)
	}
	header := splitCSVLine(scanner.Text())
	// Tolerate a single trailing comma on the header.
	if len(header) > 1 && header[len(header)-1] == "" {
		header = header[:len(header)-1]
	}
	if hasIndex && len(header) < 2 {
		return nil, fmt.Errorf("%w: need at least one data column when reading indices", ErrNoColumns)
	}

	f := &Frame[I]{indexName: DefaultIndexName}
	if hasIndex {
		f.indexName = header[0]
		f.cols = header[1:]
	} else {
		f.cols = header
	}
	if len(f.cols) == 0 {
		return nil, fmt.Errorf("%w: header has no columns", ErrNoColumns)
	}

	expected := len(f.cols)
	if hasIndex {
		expected++
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitCSVLine(line)
		if len(fields) != expected {
			return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMissingField, len(fields), expected)
		}

		var idx I
		offset := 0
		if hasIndex {
			parsed, err := parseIndex[I](fields[0])
			if err != nil {
				return nil, err
			}
			idx = parsed
			offset = 1
		} else {
			generated, err := generateIndex[I](len(f.index))
			if err != nil {
				return nil, err
			}
			idx = generated
		}

		row := make([]float64, len(f.cols))
		for c := range f.cols {
			token := fields[c+offset]
			if token == "" {
				row[c] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %q", ErrParse, token)
			}
			row[c] = v
		}

		f.index = append(f.index, idx)
		f.data = append(f.data, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return f, nil
}

// ReadCSVFile decodes a frame from a CSV file.
func ReadCSVFile[I comparable](path string, hasIndex bool) (*Frame[I], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV[I](file, hasIndex)
}

// WriteCSV encodes the frame as CSV text. Missing cells are written as empty
// fields so a round trip through ReadCSV reproduces them.
func (f *Frame[I]) WriteCSV(w io.Writer, opts *WriteCSVOptions) error {
	if opts == nil {
		opts = DefaultWriteCSVOptions()
	}
	bw := bufio.NewWriter(w)

	if opts.Header {
		if opts.Index {
			bw.WriteString(f.indexName)
			if len(f.cols) > 0 {
				bw.WriteByte(',')
			}
		}
		bw.WriteString(strings.Join(f.cols, ","))
		bw.WriteByte('\n')
	}

	// Internal consistency is re-checked here: emitting a malformed file
	// would be worse than failing.
	if opts.Index && len(f.index) != len(f.data) {
		return fmt.Errorf("%w: index size does not match row count", ErrLengthMismatch)
	}
	for r, row := range f.data {
		if len(row) != len(f.cols) {
			return fmt.Errorf("%w: row %d has %d cells for %d columns", ErrLengthMismatch, r, len(row), len(f.cols))
		}
		if opts.Index {
			label, err := formatIndex(f.index[r])
			if err != nil {
				return err
			}
			bw.WriteString(label)
			if len(row) > 0 {
				bw.WriteByte(',')
			}
		}
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(',')
			}
			if !math.IsNaN(v) {
				bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

// WriteCSVFile encodes the frame into a CSV file, truncating any existing
// contents.
func (f *Frame[I]) WriteCSVFile(path string, opts *WriteCSVOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteCSV(file, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
