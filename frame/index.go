package frame

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sartorproj/goframe/calendar"
)

// The engine supports a closed set of index types. Each operation that needs
// more than equality (text conversion, ordering, binary layout, positional
// generation) dispatches on the concrete type at runtime, so a Frame keyed by
// an unsupported type fails on first use instead of at construction.
//
// Supported kinds: int, int64, float64, string, calendar.Date,
// calendar.DateTime.

// formatIndex renders an index value for CSV output and display.
func formatIndex[I comparable](v I) (string, error) {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case string:
		return x, nil
	case calendar.Date:
		return x.String(), nil
	case calendar.DateTime:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedIndex, v)
	}
}

// parseIndex parses an index value from a trimmed CSV token.
func parseIndex[I comparable](token string) (I, error) {
	var zero I
	switch any(zero).(type) {
	case int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return zero, fmt.Errorf("%w: index %q", ErrParse, token)
		}
		return any(n).(I), nil
	case int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: index %q", ErrParse, token)
		}
		return any(n).(I), nil
	case float64:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: index %q", ErrParse, token)
		}
		return any(f).(I), nil
	case string:
		return any(token).(I), nil
	case calendar.Date:
		d, err := calendar.ParseDate(token)
		if err != nil {
			return zero, fmt.Errorf("%w: index %q", ErrParse, token)
		}
		return any(d).(I), nil
	case calendar.DateTime:
		t, err := calendar.ParseDateTime(token)
		if err != nil {
			return zero, fmt.Errorf("%w: index %q", ErrParse, token)
		}
		return any(t).(I), nil
	default:
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedIndex, zero)
	}
}

// lessIndex orders two index values. Every supported kind is totally
// ordered; strings order lexicographically.
func lessIndex[I comparable](a, b I) (bool, error) {
	switch x := any(a).(type) {
	case int:
		return x < any(b).(int), nil
	case int64:
		return x < any(b).(int64), nil
	case float64:
		return x < any(b).(float64), nil
	case string:
		return x < any(b).(string), nil
	case calendar.Date:
		return x.Before(any(b).(calendar.Date)), nil
	case calendar.DateTime:
		return x.Before(any(b).(calendar.DateTime)), nil
	default:
		return false, fmt.Errorf("%w: %T", ErrUnsupportedIndex, a)
	}
}

// generateIndex produces the index value for row position pos when no index
// column is present. Only the numeric kinds can represent a generated
// sequence.
func generateIndex[I comparable](pos int) (I, error) {
	var zero I
	switch any(zero).(type) {
	case int:
		return any(pos).(I), nil
	case int64:
		return any(int64(pos)).(I), nil
	case float64:
		return any(float64(pos)).(I), nil
	default:
		return zero, fmt.Errorf("%w: index type %T cannot be auto-generated", ErrUnsupportedIndex, zero)
	}
}

// indexCapacity reports the largest row count an integral index kind can
// label, and whether the kind is integral at all. The synthetic generators
// require an integral index.
func indexCapacity[I comparable]() (uint64, bool) {
	var zero I
	switch any(zero).(type) {
	case int:
		return uint64(math.MaxInt), true
	case int64:
		return uint64(math.MaxInt64), true
	default:
		return 0, false
	}
}

// writeIndexValue appends the binary encoding of one index value. Numeric
// kinds are raw little-endian fixed width (int and int64 as 8-byte two's
// complement, float64 as IEEE-754 bits); strings are length-prefixed; dates
// are a fixed field sequence of little-endian int32s.
func writeIndexValue[I comparable](w io.Writer, v I) error {
	switch x := any(v).(type) {
	case int:
		return writeU64(w, uint64(int64(x)))
	case int64:
		return writeU64(w, uint64(x))
	case float64:
		return writeU64(w, math.Float64bits(x))
	case string:
		return writeString(w, x)
	case calendar.Date:
		return writeI32s(w, int32(x.Year), int32(x.Month), int32(x.Day))
	case calendar.DateTime:
		return writeI32s(w, int32(x.Year), int32(x.Month), int32(x.Day),
			int32(x.Hour), int32(x.Minute), int32(x.Second))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedIndex, v)
	}
}

// readIndexValue decodes one index value written by writeIndexValue.
func readIndexValue[I comparable](r io.Reader) (I, error) {
	var zero I
	switch any(zero).(type) {
	case int:
		u, err := readU64(r)
		if err != nil {
			return zero, err
		}
		return any(int(int64(u))).(I), nil
	case int64:
		u, err := readU64(r)
		if err != nil {
			return zero, err
		}
		return any(int64(u)).(I), nil
	case float64:
		u, err := readU64(r)
		if err != nil {
			return zero, err
		}
		return any(math.Float64frombits(u)).(I), nil
	case string:
		s, err := readString(r)
		if err != nil {
			return zero, err
		}
		return any(s).(I), nil
	case calendar.Date:
		fields, err := readI32s(r, 3)
		if err != nil {
			return zero, err
		}
		d := calendar.NewDate(int(fields[0]), int(fields[1]), int(fields[2]))
		return any(d).(I), nil
	case calendar.DateTime:
		fields, err := readI32s(r, 6)
		if err != nil {
			return zero, err
		}
		t := calendar.NewDateTime(int(fields[0]), int(fields[1]), int(fields[2]),
			int(fields[3]), int(fields[4]), int(fields[5]))
		return any(t).(I), nil
	default:
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedIndex, zero)
	}
}

func writeU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

func readU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeI32s(w io.Writer, vs ...int32) error {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

func readI32s(r io.Reader, n int) ([]int32, error) {
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return out, nil
}

func writeString(w io.Writer, s string) error {
	if err := writeU64(w, uint64(len(s))); err != nil {
		return err
	}
	if len(s) > 0 {
		if _, err := io.WriteString(w, s); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
	}
	return nil
}

func readString(r io.Reader) (string, error) {
	length, err := readU64(r)
	if err != nil {
		return "", err
	}
	if length > math.MaxInt32 {
		return "", fmt.Errorf("%w: string length %d too large", ErrCorruptData, length)
	}
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return string(buf), nil
}
