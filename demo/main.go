// Command goframe-demo exercises the frame library against a daily price
// CSV: loading, return computation, descriptive statistics, correlation,
// rolling analytics, and codec round trips.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goframe/calendar"
	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/render"
	"github.com/sartorproj/goframe/samples"
)

var (
	pricesPath string
	maxRows    int
	precision  int
)

func main() {
	root := &cobra.Command{
		Use:   "goframe-demo",
		Short: "Explore a daily price CSV with the frame library",
		Long: `goframe-demo loads a date-indexed price CSV and walks through the
library's analytics: simple returns, summary statistics, correlation and
covariance, rolling windows, and the CSV/binary codecs.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&pricesPath, "file", "prices_2000_on.csv", "price CSV to load")
	root.PersistentFlags().IntVar(&maxRows, "rows", 8, "max table rows to print")
	root.PersistentFlags().IntVar(&precision, "precision", 4, "fractional digits in tables")

	root.AddCommand(headCmd(), returnsCmd(), statsCmd(), corrCmd(), rollingCmd(), roundtripCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadPrices() (*frame.Frame[calendar.Date], error) {
	return samples.LoadPrices(pricesPath)
}

func tableOptions(title string) *render.Options {
	return &render.Options{Title: title, Precision: precision, MaxRows: maxRows}
}

// returnsFromPrices computes percentage simple returns from the price frame.
func returnsFromPrices(prices *frame.Frame[calendar.Date]) (*frame.Frame[calendar.Date], error) {
	changes, err := prices.ProportionalChanges()
	if err != nil {
		return nil, err
	}
	return changes.MultiplyScalar(100), nil
}

func headCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Print the first rows of the price frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			shape := prices.Shape()
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d rows x %d columns from %s\n",
				shape[0], shape[1], pricesPath)
			return render.Frame(cmd.OutOrStdout(), prices, tableOptions("price data"))
		},
	}
}

func returnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "returns",
		Short: "Compute and print percentage returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			returns, err := returnsFromPrices(prices)
			if err != nil {
				return err
			}
			if err := render.Frame(cmd.OutOrStdout(), returns, tableOptions("returns (%)")); err != nil {
				return err
			}
			return render.RowCompleteness(cmd.OutOrStdout(), returns,
				&render.Options{Title: "row completeness"})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print return statistics, percentiles, and autocorrelations",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			returns, err := returnsFromPrices(prices)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := render.ColumnSummary(out, returns, tableOptions("return statistics")); err != nil {
				return err
			}
			percentiles := []float64{0, 1, 5, 25, 50, 75, 95, 99, 100}
			if err := render.Percentiles(out, returns, percentiles, tableOptions("return percentiles")); err != nil {
				return err
			}
			return render.ColumnAutocorrelations(out, returns, 5,
				&render.Options{Title: "return autocorrelations", Precision: 3})
		},
	}
}

func corrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr",
		Short: "Print correlation and covariance matrices of returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			returns, err := returnsFromPrices(prices)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			corr, err := returns.CorrelationMatrix()
			if err != nil {
				return err
			}
			if err := render.Frame(out, corr, tableOptions("return correlation")); err != nil {
				return err
			}
			spearman, err := returns.SpearmanMatrix()
			if err != nil {
				return err
			}
			if err := render.Frame(out, spearman, tableOptions("return Spearman correlation")); err != nil {
				return err
			}
			kendall, err := returns.KendallTauMatrix()
			if err != nil {
				return err
			}
			if err := render.Frame(out, kendall, tableOptions("return Kendall tau")); err != nil {
				return err
			}
			cov, err := returns.CovarianceMatrix()
			if err != nil {
				return err
			}
			return render.Frame(out, cov, tableOptions("return covariance"))
		},
	}
}

func rollingCmd() *cobra.Command {
	window := 20
	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Print rolling mean and volatility of returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			returns, err := returnsFromPrices(prices)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			mean, err := returns.RollingMean(window)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("rolling %d-day mean", window)
			if err := render.Frame(out, mean.TailRows(maxRows), tableOptions(title)); err != nil {
				return err
			}
			vol, err := returns.RollingStd(window)
			if err != nil {
				return err
			}
			title = fmt.Sprintf("rolling %d-day volatility", window)
			return render.Frame(out, vol.TailRows(maxRows), tableOptions(title))
		},
	}
	cmd.Flags().IntVar(&window, "window", 20, "rolling window size")
	return cmd
}

func roundtripCmd() *cobra.Command {
	outDir := "."
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Write returns to CSV and binary and reload them",
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := loadPrices()
			if err != nil {
				return err
			}
			returns, err := returnsFromPrices(prices)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			csvPath := filepath.Join(outDir, "returns.csv")
			if err := returns.WriteCSVFile(csvPath, nil); err != nil {
				return err
			}
			fromCSV, err := frame.ReadCSVFile[calendar.Date](csvPath, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "CSV round trip: wrote and reloaded %d rows from %s\n",
				fromCSV.Rows(), csvPath)

			binPath := filepath.Join(outDir, "returns.bin")
			if err := returns.WriteBinaryFile(binPath); err != nil {
				return err
			}
			fromBin, err := frame.ReadBinaryFile[calendar.Date](binPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "binary round trip: wrote and reloaded %d rows from %s\n",
				fromBin.Rows(), binPath)
			return render.Frame(out, fromBin.HeadRows(3), tableOptions("returns reloaded from binary"))
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for round-trip files")
	return cmd
}
