package frame

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
)

// Binary codec. Fixed little-endian layout:
//
//	magic "DFBIN1" (6 bytes)
//	u64 row count
//	u64 column count
//	length-prefixed index label
//	u64 column count again (decode re-checks it as a corruption guard)
//	length-prefixed column names
//	per-row index values (encoding depends on the index kind)
//	row-major f64 cell matrix
//
// There is no checksum and no version field beyond the magic tag; the format
// trades forward compatibility for simplicity.

var binaryMagic = []byte("DFBIN1")

// WriteBinary encodes the frame in the fixed binary layout.
func (f *Frame[I]) WriteBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(binaryMagic); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if err := writeU64(bw, uint64(f.Rows())); err != nil {
		return err
	}
	if err := writeU64(bw, uint64(f.Cols())); err != nil {
		return err
	}
	if err := writeString(bw, f.indexName); err != nil {
		return err
	}
	if err := writeU64(bw, uint64(len(f.cols))); err != nil {
		return err
	}
	for _, name := range f.cols {
		if err := writeString(bw, name); err != nil {
			return err
		}
	}
	for _, v := range f.index {
		if err := writeIndexValue(bw, v); err != nil {
			return err
		}
	}
	for _, row := range f.data {
		for _, v := range row {
			if err := writeU64(bw, math.Float64bits(v)); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

// WriteBinaryFile encodes the frame into a file, truncating any existing
// contents.
func (f *Frame[I]) WriteBinaryFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteBinary(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadBinary decodes a frame written by WriteBinary. The magic tag and the
// redundant column count are both validated, and any short read fails the
// decode.
func ReadBinary[I comparable](r io.Reader) (*Frame[I], error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(binaryMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if !bytes.Equal(magic, binaryMagic) {
		return nil, fmt.Errorf("%w: got %q", ErrBadMagic, magic)
	}

	rowCount, err := readU64(br)
	if err != nil {
		return nil, err
	}
	colCount, err := readU64(br)
	if err != nil {
		return nil, err
	}
	if rowCount > math.MaxInt32 || colCount > math.MaxInt32 {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrCorruptData, rowCount, colCount)
	}

	f := &Frame[I]{}
	f.indexName, err = readString(br)
	if err != nil {
		return nil, err
	}

	namedCols, err := readU64(br)
	if err != nil {
		return nil, err
	}
	if namedCols != colCount {
		return nil, fmt.Errorf("%w: column metadata mismatch (%d vs %d)", ErrCorruptData, namedCols, colCount)
	}
	f.cols = make([]string, colCount)
	for i := range f.cols {
		f.cols[i], err = readString(br)
		if err != nil {
			return nil, err
		}
	}

	f.index = make([]I, rowCount)
	for i := range f.index {
		f.index[i], err = readIndexValue[I](br)
		if err != nil {
			return nil, err
		}
	}

	f.data = make([][]float64, rowCount)
	for r := range f.data {
		row := make([]float64, colCount)
		for c := range row {
			bits, err := readU64(br)
			if err != nil {
				return nil, err
			}
			row[c] = math.Float64frombits(bits)
		}
		f.data[r] = row
	}
	return f, nil
}

// ReadBinaryFile decodes a frame from a binary file.
func ReadBinaryFile[I comparable](path string) (*Frame[I], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadBinary[I](file)
}
