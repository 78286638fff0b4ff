package frame

import "errors"

// Sentinel errors for the four failure classes the frame engine surfaces:
// construction, decode, lookup, and numeric policy. Callers match with
// errors.Is; every returned error wraps exactly one of these.
var (
	// Construction errors.
	ErrNoColumns       = errors.New("frame: no columns provided")
	ErrEmptyColumnName = errors.New("frame: column name cannot be empty")
	ErrDuplicateColumn = errors.New("frame: column already exists")
	ErrLengthMismatch  = errors.New("frame: length mismatch")

	// Decode errors.
	ErrBadMagic     = errors.New("frame: invalid binary header")
	ErrCorruptData  = errors.New("frame: corrupt or truncated data")
	ErrParse        = errors.New("frame: unparsable token")
	ErrMissingField = errors.New("frame: row has unexpected number of fields")

	// Lookup errors.
	ErrColumnNotFound = errors.New("frame: column not found")
	ErrIndexNotFound  = errors.New("frame: index value not found")
	ErrOutOfRange     = errors.New("frame: position out of range")

	// Numeric-policy errors.
	ErrDivisionByZero   = errors.New("frame: division by zero")
	ErrNonPositiveLog   = errors.New("frame: log of non-positive value")
	ErrInvalidParameter = errors.New("frame: invalid parameter")
	ErrShapeMismatch    = errors.New("frame: shape mismatch")
	ErrColumnMismatch   = errors.New("frame: column sequence mismatch")
	ErrIndexMismatch    = errors.New("frame: index sequence mismatch")
	ErrInsufficientRows = errors.New("frame: not enough rows")

	// ErrUnsupportedIndex reports an index type outside the closed set the
	// engine can format, parse, and serialize.
	ErrUnsupportedIndex = errors.New("frame: unsupported index type")
)
