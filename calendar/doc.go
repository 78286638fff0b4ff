// Package calendar provides Date and DateTime value types for frame indices.
//
// Both types are plain field structs with total ordering, equality, and
// ISO-8601 text conversion. They deliberately carry no timezone or epoch
// arithmetic: a Date is a calendar label, not an instant.
//
// # Parsing and Formatting
//
// Parse ISO-8601 text:
//
//	d, err := calendar.ParseDate("2024-02-29")
//	dt, err := calendar.ParseDateTime("2024-02-29T13:45:00Z")
//
// DateTime accepts either 'T' or a space between the date and time parts,
// and tolerates a trailing timezone designator (Z or ±HH:MM) without
// applying it to the stored fields.
//
// Format back to ISO text:
//
//	s := d.String()   // "2024-02-29"
//	s := dt.String()  // "2024-02-29 13:45:00"
//
// # Ordering
//
// Both types order lexicographically by field, most significant first:
//
//	if a.Before(b) { ... }
//	if a.Compare(b) <= 0 { ... }
package calendar
