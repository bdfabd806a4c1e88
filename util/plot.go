package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/go-moea/moea/framework"
)

// PlotResults creates a scatter plot comparing the true Pareto front of the given Problem
// with the final population resulted from the algorithm. The chart is written
// to the current directory.
func PlotResults(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) error {
	return PlotResultsTo(".", results, problem, algorithmName)
}

// PlotResultsTo renders the scatter plot into dir, creating it if needed. The
// file is named after the problem and the algorithm. Two- and three-objective
// results are supported.
func PlotResultsTo(dir string, results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}

	var renderer interface{ Render(w io.Writer) error }
	switch len(results[0]) {
	case 2:
		renderer = scatter2D(results, problem, algorithmName)
	case 3:
		renderer = scatter3D(results, problem, algorithmName)
	default:
		return fmt.Errorf("can only plot 2 or 3 objectives for %s Benchmark, got %d", problem.Name(), len(results[0]))
	}

	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)))
	if err != nil {
		return err
	}
	defer f.Close()

	return renderer.Render(f)
}

func scatter2D(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	// Problems without a closed-form front plot the found points alone.
	if trueParetoFront := problem.TrueParetoFront(100); len(trueParetoFront) > 0 {
		trueX := make([]opts.ScatterData, len(trueParetoFront))
		for i, p := range trueParetoFront {
			trueX[i] = opts.ScatterData{
				Value:      p,
				Symbol:     "circle",
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("True Pareto Front", trueX)
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter
}

func scatter3D(results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) *charts.Scatter3D {
	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "f1(x)"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "f2(x)"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "f3(x)"}))

	if trueParetoFront := problem.TrueParetoFront(400); len(trueParetoFront) > 0 {
		trueX := make([]opts.Chart3DData, len(trueParetoFront))
		for i, p := range trueParetoFront {
			trueX[i] = opts.Chart3DData{
				Value: []interface{}{p[0], p[1], p[2]},
			}
		}
		scatter.AddSeries("True Pareto Front", trueX)
	}

	foundX := make([]opts.Chart3DData, len(results))
	for i, res := range results {
		foundX[i] = opts.Chart3DData{
			Value: []interface{}{res[0], res[1], res[2]},
		}
	}
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX)

	return scatter
}
