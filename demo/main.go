// Package main demonstrates uncertainty propagation and a weighted linear fit
// on laboratory data.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sartorproj/goscierror/datafile"
	"github.com/sartorproj/goscierror/measurement"
	"github.com/sartorproj/goscierror/regression"
	"github.com/sartorproj/goscierror/table"
)

// sampleData is extension (m) against load (N) for a spring, used when no
// data file is configured.
const sampleData = `load,extension,error
0.5,0.021,0.002
1.0,0.039,0.002
1.5,0.062,0.003
2.0,0.081,0.003
2.5,0.098,0.004
3.0,0.122,0.004
3.5,0.139,0.005
4.0,0.161,0.005`

// FitOverlay holds what a plotting tool needs to draw the data with error
// bars and the fitted line.
type FitOverlay struct {
	Source         string    `json:"source"`
	X              []float64 `json:"x"`
	Y              []float64 `json:"y"`
	YErr           []float64 `json:"yerr,omitempty"`
	Slope          float64   `json:"slope"`
	SlopeError     float64   `json:"slope_error"`
	Intercept      float64   `json:"intercept"`
	InterceptError float64   `json:"intercept_error"`
	ReducedChi2    float64   `json:"reduced_chi2"`
	Fitted         []float64 `json:"fitted"`
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode(cfg, logger, os.Stdout))
}

// exitCode runs the demo and flushes the logger before the process exits.
func exitCode(cfg *Config, logger *zap.Logger, out io.Writer) int {
	defer logger.Sync()

	if err := run(cfg, logger, out); err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *Config, logger *zap.Logger, out io.Writer) error {
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "Measurement arithmetic")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	printArithmetic(out)

	file, source, err := loadData(cfg)
	if err != nil {
		return err
	}
	logger.Debug("data loaded", zap.String("source", source), zap.Int("rows", file.NumRows()))

	x, y, yerr, err := columns(file, cfg.SkipRows)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	reg := regression.New(x, y, yerr)
	res, err := reg.Fit()
	if err != nil {
		return fmt.Errorf("fitting %s: %w", source, err)
	}
	logger.Info("fit complete",
		zap.String("source", source),
		zap.Int("points", res.N),
		zap.Stringer("slope", res.Slope),
		zap.Stringer("intercept", res.Intercept),
		zap.Float64("reduced_chi2", res.ReducedChiSquared),
	)

	fmt.Fprintf(out, "\n%s\nWeighted linear fit: %s\n%s\n", strings.Repeat("=", 60), source, strings.Repeat("=", 60))
	fmt.Fprintf(out, "  slope     m = %s\n", res.Slope)
	fmt.Fprintf(out, "  intercept c = %s\n", res.Intercept)
	fmt.Fprintf(out, "  chi2/dof    = %.4f\n", res.ReducedChiSquared)
	if gof := res.GoodnessOfFit(); gof != nil && yerr != nil {
		fmt.Fprintf(out, "  chi2 p      = %.4f (dof=%d)\n", gof.PValue, gof.DOF)
	}
	fmt.Fprintf(out, "  D-W         = %.4f\n\n", res.DurbinWatson())

	fitted := res.Line(x)
	if err := printTable(out, x, y, yerr, fitted, cfg.TableHere); err != nil {
		return err
	}

	if cfg.FitCSV != "" {
		if err := datafile.SaveCols(cfg.FitCSV, []string{"x", "fit"}, x, fitted); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.FitCSV, err)
		}
		logger.Info("fitted line exported", zap.String("path", cfg.FitCSV))
	}

	if cfg.Output != "" {
		overlay := FitOverlay{
			Source:         source,
			X:              x,
			Y:              y,
			YErr:           yerr,
			Slope:          res.Slope.Value(),
			SlopeError:     res.Slope.Error(),
			Intercept:      res.Intercept.Value(),
			InterceptError: res.Intercept.Error(),
			ReducedChi2:    res.ReducedChiSquared,
			Fitted:         fitted,
		}
		data, err := json.MarshalIndent(overlay, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.Output, err)
		}
		logger.Info("fit overlay exported", zap.String("path", cfg.Output))
	}

	return nil
}

// printArithmetic shows each operation on a set of sample weights.
func printArithmetic(out io.Writer) {
	weight1 := measurement.New(15, 0.1)
	weight2 := measurement.New(20, 0.5)
	weight3 := measurement.New(5, 0.5)
	angle := measurement.New(0.5, 0.1)

	lines := []struct {
		op     string
		result measurement.Measurement
	}{
		{"+", weight2.Add(weight1)},
		{"-", weight2.Sub(weight1)},
		{"*", weight2.Mul(weight1)},
		{"/", weight2.Div(weight1)},
		{"sin", measurement.Sin(weight3)},
		{"cos", measurement.Cos(weight3)},
		{"tan", measurement.Tan(weight3)},
		{"pow", measurement.Pow(weight3, 4)},
		{"log", measurement.Log(weight3)},
		{"log10", measurement.LogBase(weight3, 10)},
		{"exp", measurement.Exp(weight3)},
		{"arcsin", measurement.Arcsin(angle)},
		{"arccos", measurement.Arccos(angle)},
		{"arctan", measurement.Arctan(angle)},
	}

	for _, l := range lines {
		fmt.Fprintf(out, "  %-7s %s\n", l.op+":", l.result)
	}
}

func loadData(cfg *Config) (*datafile.File, string, error) {
	if cfg.Data == "" {
		f, err := datafile.LoadFromReader(strings.NewReader(sampleData), nil)
		return f, "built-in spring sample", err
	}
	f, err := datafile.Load(cfg.Data, nil)
	if err != nil {
		return nil, cfg.Data, fmt.Errorf("loading %s: %w", cfg.Data, err)
	}
	return f, cfg.Data, nil
}

// columns reads x, y and, when present, yerr from the first three columns
// of every row after skip.
func columns(f *datafile.File, skip int) (x, y, yerr []float64, err error) {
	if f.NumRows() <= skip {
		return nil, nil, nil, fmt.Errorf("no data rows after skipping %d", skip)
	}
	ncols := len(f.Row(skip))
	if ncols < 2 {
		return nil, nil, nil, fmt.Errorf("need at least 2 columns, got %d", ncols)
	}
	if ncols > 3 {
		ncols = 3
	}

	cols, err := f.ReadCols(skip, 0, f.NumRows(), ncols)
	if err != nil {
		return nil, nil, nil, err
	}
	if ncols == 3 {
		return cols[0], cols[1], cols[2], nil
	}
	return cols[0], cols[1], nil, nil
}

func printTable(out io.Writer, x, y, yerr, fitted []float64, here bool) error {
	rows := make([][]string, len(x))
	for i := range x {
		cell := fmt.Sprintf("%g", y[i])
		if yerr != nil {
			cell = measurement.New(y[i], yerr[i]).String()
		}
		rows[i] = []string{fmt.Sprintf("%g", x[i]), cell, fmt.Sprintf("%.4f", fitted[i])}
	}
	return table.LaTeX(out, rows, here)
}
