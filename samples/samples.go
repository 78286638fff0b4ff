// Package samples loads the bundled sample CSV layouts into frames.
//
// Two layouts are supported: daily price history indexed by date, and
// intraday bars indexed by date-time. Both are plain CSV files whose first
// column holds the index values.
package samples

import (
	"fmt"

	"github.com/sartorproj/goframe/calendar"
	"github.com/sartorproj/goframe/frame"
)

// PricesIndexName labels the index of daily price frames.
const PricesIndexName = "Date"

// IntradayIndexName labels the index of intraday bar frames.
const IntradayIndexName = "Datetime"

// LoadPrices reads a daily price history CSV whose first column holds
// YYYY-MM-DD dates. The index label is set to "Date" regardless of the
// header.
func LoadPrices(path string) (*frame.Frame[calendar.Date], error) {
	f, err := frame.ReadCSVFile[calendar.Date](path, true)
	if err != nil {
		return nil, fmt.Errorf("load prices %s: %w", path, err)
	}
	f.SetIndexName(PricesIndexName)
	return f, nil
}

// LoadIntraday reads an intraday bar CSV whose first column holds
// date-times in either "YYYY-MM-DD HH:MM:SS" or ISO "T"-separated form. The
// index label is set to "Datetime" regardless of the header.
func LoadIntraday(path string) (*frame.Frame[calendar.DateTime], error) {
	f, err := frame.ReadCSVFile[calendar.DateTime](path, true)
	if err != nil {
		return nil, fmt.Errorf("load intraday %s: %w", path, err)
	}
	f.SetIndexName(IntradayIndexName)
	return f, nil
}
