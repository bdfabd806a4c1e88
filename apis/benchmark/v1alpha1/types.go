// Package v1alpha1 contains the versioned configuration consumed by the
// moea-bench command. Files are written in YAML and unmarshalled through
// sigs.k8s.io/yaml, so the JSON tags below define the accepted field names.
package v1alpha1

import (
	"fmt"
	"strings"
)

const (
	// Kind is the expected kind of a suite document.
	Kind = "BenchmarkSuite"
	// APIVersion is the version of the config schema this package parses.
	APIVersion = "benchmark.go-moea.dev/v1alpha1"
)

// Supported problem and algorithm identifiers.
const (
	ProblemZDT1     = "zdt1"
	ProblemZDT2     = "zdt2"
	ProblemZDT3     = "zdt3"
	ProblemDTLZ1    = "dtlz1"
	ProblemDTLZ2    = "dtlz2"
	ProblemBinhKorn = "binhkorn"

	AlgorithmRVEA   = "rvea"
	AlgorithmNSGAII = "nsga2"
)

// BenchmarkSuite is the root document of a suite file: a list of benchmark
// runs plus suite-wide output settings.
type BenchmarkSuite struct {
	Kind       string `json:"kind,omitempty"`
	APIVersion string `json:"apiVersion,omitempty"`

	// OutputDir is where result plots are written. Defaults to "results".
	OutputDir string `json:"outputDir,omitempty"`

	// Plot controls whether runs render an HTML chart of the found front.
	// Defaults to true.
	Plot *bool `json:"plot,omitempty"`

	Runs []BenchmarkRun `json:"runs"`
}

// BenchmarkRun describes a single problem/algorithm execution.
type BenchmarkRun struct {
	// Name identifies the run in logs and the summary table. Defaults to
	// "<problem>-<algorithm>".
	Name string `json:"name,omitempty"`

	// Problem is one of zdt1, zdt2, zdt3, dtlz1, dtlz2, binhkorn.
	Problem string `json:"problem"`

	// Algorithm is one of rvea, nsga2. Defaults to rvea.
	Algorithm string `json:"algorithm,omitempty"`

	// NumVariables is the decision-vector length. Defaults to 30 for the
	// ZDT family, 7 (DTLZ1) or 12 (DTLZ2) for the scalable problems, and is
	// fixed at 2 for binhkorn.
	NumVariables int `json:"numVariables,omitempty"`

	// NumObjectives only applies to the scalable DTLZ problems. Defaults
	// to 3.
	NumObjectives int `json:"numObjectives,omitempty"`

	// Generations is the termination budget. Defaults to 250.
	Generations int `json:"generations,omitempty"`

	// PopulationSize overrides the algorithm default (RVEA binds it to the
	// reference-direction count, NSGA-II uses 100).
	PopulationSize int `json:"populationSize,omitempty"`

	// Alpha is RVEA's penalty exponent. Defaults to 2.0.
	Alpha float64 `json:"alpha,omitempty"`

	// AdaptFrequency is RVEA's reference-direction adaptation cadence as a
	// fraction of total progress. Defaults to 0.1.
	AdaptFrequency float64 `json:"adaptFrequency,omitempty"`
}

// Default fills in unset fields on the suite and all of its runs.
func (s *BenchmarkSuite) Default() {
	if s.Kind == "" {
		s.Kind = Kind
	}
	if s.APIVersion == "" {
		s.APIVersion = APIVersion
	}
	if s.OutputDir == "" {
		s.OutputDir = "results"
	}
	if s.Plot == nil {
		t := true
		s.Plot = &t
	}
	for i := range s.Runs {
		s.Runs[i].Default()
	}
}

// Default normalizes the problem and algorithm identifiers and fills in
// unset fields on the run.
func (r *BenchmarkRun) Default() {
	r.Problem = strings.ToLower(r.Problem)
	r.Algorithm = strings.ToLower(r.Algorithm)

	if r.Algorithm == "" {
		r.Algorithm = AlgorithmRVEA
	}
	if r.Name == "" {
		r.Name = fmt.Sprintf("%s-%s", r.Problem, r.Algorithm)
	}
	if r.NumVariables == 0 {
		switch r.Problem {
		case ProblemDTLZ1:
			r.NumVariables = 7
		case ProblemDTLZ2:
			r.NumVariables = 12
		case ProblemBinhKorn:
			r.NumVariables = 2
		default:
			r.NumVariables = 30
		}
	}
	if r.NumObjectives == 0 {
		switch r.Problem {
		case ProblemDTLZ1, ProblemDTLZ2:
			r.NumObjectives = 3
		default:
			r.NumObjectives = 2
		}
	}
	if r.Generations == 0 {
		r.Generations = 250
	}
	if r.Alpha == 0 {
		r.Alpha = 2.0
	}
	if r.AdaptFrequency == 0 {
		r.AdaptFrequency = 0.1
	}
}

// Validate reports the first problem found with the suite document.
func (s *BenchmarkSuite) Validate() error {
	if s.Kind != "" && s.Kind != Kind {
		return fmt.Errorf("unexpected kind %q, want %q", s.Kind, Kind)
	}
	if s.APIVersion != "" && s.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", s.APIVersion, APIVersion)
	}
	if len(s.Runs) == 0 {
		return fmt.Errorf("suite contains no runs")
	}
	for i := range s.Runs {
		if err := s.Runs[i].Validate(); err != nil {
			return fmt.Errorf("run %d (%s): %w", i, s.Runs[i].Name, err)
		}
	}
	return nil
}

// Validate reports the first problem found with the run.
func (r *BenchmarkRun) Validate() error {
	switch strings.ToLower(r.Problem) {
	case ProblemZDT1, ProblemZDT2, ProblemZDT3, ProblemDTLZ1, ProblemDTLZ2, ProblemBinhKorn:
	case "":
		return fmt.Errorf("problem is required")
	default:
		return fmt.Errorf("unknown problem %q", r.Problem)
	}

	switch strings.ToLower(r.Algorithm) {
	case AlgorithmRVEA, AlgorithmNSGAII:
	default:
		return fmt.Errorf("unknown algorithm %q", r.Algorithm)
	}

	if r.NumVariables < 1 {
		return fmt.Errorf("numVariables must be positive, got %d", r.NumVariables)
	}
	if r.Generations < 1 {
		return fmt.Errorf("generations must be positive, got %d", r.Generations)
	}
	if r.Problem == ProblemBinhKorn && r.NumVariables != 2 {
		return fmt.Errorf("binhkorn is fixed at 2 variables, got %d", r.NumVariables)
	}
	return nil
}
