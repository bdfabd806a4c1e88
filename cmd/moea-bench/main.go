// Command moea-bench runs a suite of multi-objective optimization benchmarks
// described in a YAML file and prints a summary of each run.
//
// A minimal suite file:
//
//	kind: BenchmarkSuite
//	apiVersion: benchmark.go-moea.dev/v1alpha1
//	runs:
//	  - problem: zdt1
//	  - problem: dtlz2
//	    algorithm: rvea
//	    generations: 400
//
// Each run optimizes one of the bundled test problems and reports the size of
// the final population and its non-dominated front, the number of objective
// evaluations spent, and the inverted generational distance to the true
// Pareto front where one is known. Unless disabled in the suite, an HTML
// scatter chart of the found front is written to the output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/go-moea/moea/algorithms"
	"github.com/go-moea/moea/apis/benchmark/v1alpha1"
	"github.com/go-moea/moea/benchmarks"
	"github.com/go-moea/moea/framework"
	"github.com/go-moea/moea/util"
)

func main() {
	klog.InitFlags(nil)

	suitePath := pflag.String("suite", "suite.yaml", "path to the benchmark suite file")
	outputDir := pflag.String("output-dir", "", "override the suite's output directory")
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := run(ctx, *suitePath, *outputDir)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, outputDir string) error {
	suite, err := loadSuite(path)
	if err != nil {
		return err
	}
	if outputDir != "" {
		suite.OutputDir = outputDir
	}

	logger := klog.Background()

	results := make([]runResult, 0, len(suite.Runs))
	for i := range suite.Runs {
		r := &suite.Runs[i]
		runLogger := klog.LoggerWithValues(logger, "run", r.Name, "id", uuid.NewString())

		res, err := execute(klog.NewContext(ctx, runLogger), r, suite)
		if err != nil {
			return fmt.Errorf("run %s: %w", r.Name, err)
		}
		results = append(results, res)
	}

	printSummary(os.Stdout, suite.Runs, results)
	return nil
}

// loadSuite parses, defaults and validates the suite document at path.
func loadSuite(path string) (*v1alpha1.BenchmarkSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite v1alpha1.BenchmarkSuite
	if err := yaml.UnmarshalStrict(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	suite.Default()
	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return &suite, nil
}

type runResult struct {
	algorithm   string
	survivors   int
	front       int
	evaluations int
	igd         float64
	hasIGD      bool
	duration    time.Duration
}

func execute(ctx context.Context, run *v1alpha1.BenchmarkRun, suite *v1alpha1.BenchmarkSuite) (runResult, error) {
	problem, err := buildProblem(run)
	if err != nil {
		return runResult{}, err
	}

	logger := klog.FromContext(ctx)
	logger.V(2).Info("starting benchmark", "problem", problem.Name(),
		"algorithm", run.Algorithm, "generations", run.Generations)

	start := time.Now()

	var (
		alg   framework.Algorithm
		front []framework.ObjectiveSpacePoint
		res   runResult
	)
	switch run.Algorithm {
	case v1alpha1.AlgorithmNSGAII:
		n := algorithms.NewNSGAII(algorithms.NSGA2Config{
			PopulationSize: run.PopulationSize,
			MaxGenerations: run.Generations,
		}, problem)

		pop := n.Run()
		front = algorithms.GetParetoFront(pop)
		alg = n
		res.survivors = len(pop)
		res.evaluations = n.Evaluations()

	default:
		r, err := algorithms.NewRVEA(algorithms.RVEAConfig{
			Alpha:          run.Alpha,
			AdaptFrequency: run.AdaptFrequency,
			PopulationSize: run.PopulationSize,
			Termination:    &algorithms.MaxGenerations{N: run.Generations},
		}, problem)
		if err != nil {
			return runResult{}, err
		}

		pop, err := r.Run(ctx)
		if err != nil {
			return runResult{}, err
		}
		front = paretoValues(algorithms.Optimum(pop))
		alg = r
		res.survivors = len(pop)
		res.evaluations = r.Evaluations()
	}

	res.algorithm = alg.Name()
	res.front = len(front)
	res.duration = time.Since(start)

	if ref := problem.TrueParetoFront(500); len(ref) > 0 {
		res.igd = util.InvertedGenerationalDistance(ref, front)
		res.hasIGD = true
	}

	logger.V(2).Info("benchmark finished", "survivors", res.survivors,
		"front", res.front, "evaluations", res.evaluations, "duration", res.duration)

	if *suite.Plot {
		if err := util.PlotResultsTo(suite.OutputDir, front, problem, alg.Name()); err != nil {
			return runResult{}, fmt.Errorf("plotting: %w", err)
		}
	}

	return res, nil
}

func buildProblem(run *v1alpha1.BenchmarkRun) (framework.Problem, error) {
	switch run.Problem {
	case v1alpha1.ProblemZDT1:
		return benchmarks.NewZDT1(run.NumVariables), nil
	case v1alpha1.ProblemZDT2:
		return benchmarks.NewZDT2(run.NumVariables), nil
	case v1alpha1.ProblemZDT3:
		return benchmarks.NewZDT3(run.NumVariables), nil
	case v1alpha1.ProblemDTLZ1:
		return benchmarks.NewDTLZ1(run.NumVariables, run.NumObjectives), nil
	case v1alpha1.ProblemDTLZ2:
		return benchmarks.NewDTLZ2(run.NumVariables, run.NumObjectives), nil
	case v1alpha1.ProblemBinhKorn:
		return benchmarks.NewBinhKorn(), nil
	default:
		return nil, fmt.Errorf("unknown problem %q", run.Problem)
	}
}

// paretoValues extracts the objective vectors of the first non-dominated
// front of the reported optimum set.
func paretoValues(opt []*framework.Individual) []framework.ObjectiveSpacePoint {
	fronts := framework.NonDominatedSort(opt)
	if len(fronts) == 0 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, ind := range fronts[0] {
		points[i] = ind.Value
	}
	return points
}

func printSummary(w io.Writer, runs []v1alpha1.BenchmarkRun, results []runResult) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tALGORITHM\tSURVIVORS\tFRONT\tEVALUATIONS\tIGD\tDURATION")
	for i, res := range results {
		igd := "-"
		if res.hasIGD {
			igd = fmt.Sprintf("%.4f", res.igd)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			runs[i].Name, res.algorithm, res.survivors, res.front,
			humanize.Comma(int64(res.evaluations)), igd,
			res.duration.Round(time.Millisecond))
	}
	tw.Flush()
}
