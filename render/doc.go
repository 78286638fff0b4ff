// Package render pretty-prints frames to a console.
//
// Output is plain text with ANSI color styling applied to titles, headers,
// and index labels. All printers write to an io.Writer and accept an
// Options struct controlling the title, numeric precision, and row limit:
//
//	opts := render.DefaultOptions()
//	opts.Title = "daily returns"
//	render.Frame(os.Stdout, returns, opts)
//	render.ColumnSummary(os.Stdout, returns, opts)
package render
