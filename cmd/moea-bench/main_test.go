package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-moea/moea/apis/benchmark/v1alpha1"
)

func TestLoadSuite(t *testing.T) {
	suite, err := loadSuite(filepath.Join("testdata", "suite.yaml"))
	if err != nil {
		t.Fatalf("loadSuite failed: %v", err)
	}

	if suite.OutputDir != "out" {
		t.Errorf("expected output dir %q, got %q", "out", suite.OutputDir)
	}
	if suite.Plot == nil || !*suite.Plot {
		t.Error("expected plotting to default to enabled")
	}

	want := []v1alpha1.BenchmarkRun{
		{
			Name:           "zdt1-rvea",
			Problem:        "zdt1",
			Algorithm:      "rvea",
			NumVariables:   30,
			NumObjectives:  2,
			Generations:    250,
			Alpha:          2.0,
			AdaptFrequency: 0.1,
		},
		{
			Name:           "cube",
			Problem:        "dtlz2",
			Algorithm:      "rvea",
			NumVariables:   12,
			NumObjectives:  3,
			Generations:    400,
			Alpha:          2.0,
			AdaptFrequency: 0.1,
		},
		{
			Name:           "binhkorn-nsga2",
			Problem:        "binhkorn",
			Algorithm:      "nsga2",
			NumVariables:   2,
			NumObjectives:  2,
			Generations:    250,
			PopulationSize: 60,
			Alpha:          2.0,
			AdaptFrequency: 0.1,
		},
	}
	if diff := cmp.Diff(want, suite.Runs); diff != "" {
		t.Errorf("unexpected runs after defaulting (-want +got):\n%s", diff)
	}
}

func TestLoadSuiteRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	doc := "runs:\n  - problem: zdt1\n    seed: 7\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSuite(path); err == nil {
		t.Error("expected strict parsing to reject the unknown field")
	}
}

func TestLoadSuiteRejectsEmptySuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte("runs: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSuite(path); err == nil {
		t.Error("expected validation to reject a suite without runs")
	}
}

func TestBuildProblem(t *testing.T) {
	tests := []struct {
		problem  string
		wantName string
		wantVars int
	}{
		{v1alpha1.ProblemZDT1, "ZDT1", 30},
		{v1alpha1.ProblemZDT2, "ZDT2", 30},
		{v1alpha1.ProblemZDT3, "ZDT3", 30},
		{v1alpha1.ProblemDTLZ1, "DTLZ1", 7},
		{v1alpha1.ProblemDTLZ2, "DTLZ2", 12},
		{v1alpha1.ProblemBinhKorn, "BinhKorn", 2},
	}
	for _, tc := range tests {
		run := v1alpha1.BenchmarkRun{Problem: tc.problem}
		run.Default()

		problem, err := buildProblem(&run)
		if err != nil {
			t.Fatalf("buildProblem(%s) failed: %v", tc.problem, err)
		}
		if problem.Name() != tc.wantName {
			t.Errorf("expected problem %q, got %q", tc.wantName, problem.Name())
		}
		if len(problem.Bounds()) != tc.wantVars {
			t.Errorf("%s: expected %d variables, got %d", tc.wantName, tc.wantVars, len(problem.Bounds()))
		}
	}

	run := v1alpha1.BenchmarkRun{Problem: "knapsack"}
	if _, err := buildProblem(&run); err == nil {
		t.Error("expected an error for an unknown problem")
	}
}
