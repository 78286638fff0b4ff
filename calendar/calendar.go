package calendar

import (
	"fmt"
	"strconv"
)

// Date is a calendar date with no time-of-day or timezone component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateTime is a calendar date plus a time of day, with no timezone component.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// NewDate creates a Date. The fields are not validated; use ParseDate or
// Valid when the source is untrusted.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewDateTime creates a DateTime. The fields are not validated.
func NewDateTime(year, month, day, hour, minute, second int) DateTime {
	return DateTime{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

func validTime(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 && second >= 0 && second <= 59
}

// Valid reports whether the date names a real calendar day.
func (d Date) Valid() bool {
	return validDate(d.Year, d.Month, d.Day)
}

// Valid reports whether the date and time of day are both in range.
func (t DateTime) Valid() bool {
	return validDate(t.Year, t.Month, t.Day) && validTime(t.Hour, t.Minute, t.Second)
}

// Compare returns -1, 0, or +1 ordering d against other, most significant
// field first.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return cmpInt(d.Year, other.Year)
	}
	if d.Month != other.Month {
		return cmpInt(d.Month, other.Month)
	}
	return cmpInt(d.Day, other.Day)
}

// Before reports whether d orders strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d orders strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Compare returns -1, 0, or +1 ordering t against other.
func (t DateTime) Compare(other DateTime) int {
	if c := t.Date().Compare(other.Date()); c != 0 {
		return c
	}
	if t.Hour != other.Hour {
		return cmpInt(t.Hour, other.Hour)
	}
	if t.Minute != other.Minute {
		return cmpInt(t.Minute, other.Minute)
	}
	return cmpInt(t.Second, other.Second)
}

// Before reports whether t orders strictly before other.
func (t DateTime) Before(other DateTime) bool { return t.Compare(other) < 0 }

// After reports whether t orders strictly after other.
func (t DateTime) After(other DateTime) bool { return t.Compare(other) > 0 }

// Date returns the calendar-date part of t.
func (t DateTime) Date() Date {
	return Date{Year: t.Year, Month: t.Month, Day: t.Day}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String formats the date-time as "YYYY-MM-DD HH:MM:SS".
func (t DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// ParseDate parses an ISO-8601 calendar date of the exact form YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("calendar: invalid date format: %q", s)
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return Date{}, fmt.Errorf("calendar: invalid character in date: %q", s)
		}
	}
	year := atoi(s[0:4])
	month := atoi(s[5:7])
	day := atoi(s[8:10])
	if !validDate(year, month, day) {
		return Date{}, fmt.Errorf("calendar: invalid calendar date: %q", s)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDateTime parses an ISO-8601 date-time of the form
// "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DDTHH:MM:SS", optionally followed by a
// timezone designator (Z or ±HH:MM). A designator is accepted syntactically
// but the stored fields are not adjusted.
func ParseDateTime(s string) (DateTime, error) {
	if len(s) < 19 {
		return DateTime{}, fmt.Errorf("calendar: invalid datetime format: %q", s)
	}
	if s[4] != '-' || s[7] != '-' {
		return DateTime{}, fmt.Errorf("calendar: invalid datetime delimiters: %q", s)
	}
	if s[10] != ' ' && s[10] != 'T' {
		return DateTime{}, fmt.Errorf("calendar: invalid datetime separator: %q", s)
	}
	if s[13] != ':' || s[16] != ':' {
		return DateTime{}, fmt.Errorf("calendar: invalid time delimiters: %q", s)
	}
	for i := 0; i < 19; i++ {
		switch i {
		case 4, 7, 10, 13, 16:
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return DateTime{}, fmt.Errorf("calendar: invalid character in datetime: %q", s)
		}
	}
	t := DateTime{
		Year:   atoi(s[0:4]),
		Month:  atoi(s[5:7]),
		Day:    atoi(s[8:10]),
		Hour:   atoi(s[11:13]),
		Minute: atoi(s[14:16]),
		Second: atoi(s[17:19]),
	}
	if !validDate(t.Year, t.Month, t.Day) {
		return DateTime{}, fmt.Errorf("calendar: invalid calendar date: %q", s)
	}
	if !validTime(t.Hour, t.Minute, t.Second) {
		return DateTime{}, fmt.Errorf("calendar: invalid time of day: %q", s)
	}
	if err := checkTimezoneSuffix(s); err != nil {
		return DateTime{}, err
	}
	return t, nil
}

func checkTimezoneSuffix(s string) error {
	if len(s) == 19 {
		return nil
	}
	rest := s[19:]
	switch rest[0] {
	case 'Z':
		if len(rest) != 1 {
			return fmt.Errorf("calendar: unexpected characters after timezone: %q", s)
		}
		return nil
	case '+', '-':
		if len(rest) != 6 || rest[3] != ':' {
			return fmt.Errorf("calendar: invalid timezone specifier: %q", s)
		}
		for _, i := range []int{1, 2, 4, 5} {
			if rest[i] < '0' || rest[i] > '9' {
				return fmt.Errorf("calendar: invalid timezone specifier: %q", s)
			}
		}
		return nil
	default:
		return fmt.Errorf("calendar: invalid timezone marker: %q", s)
	}
}

// ParseDateInt parses an ISO date and packs it into a yyyymmdd integer.
func ParseDateInt(s string) (int, error) {
	d, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return d.Year*10000 + d.Month*100 + d.Day, nil
}

// FormatDateInt formats a yyyymmdd integer as an ISO date string. Values that
// do not unpack to a valid calendar date are echoed back as plain integers.
func FormatDateInt(yyyymmdd int) string {
	if yyyymmdd <= 0 {
		return strconv.Itoa(yyyymmdd)
	}
	year := yyyymmdd / 10000
	month := (yyyymmdd / 100) % 100
	day := yyyymmdd % 100
	if !validDate(year, month, day) {
		return strconv.Itoa(yyyymmdd)
	}
	return Date{Year: year, Month: month, Day: day}.String()
}

// atoi converts a digit-only substring; callers have already validated the
// characters.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
