package storage

import (
	"strings"
	"testing"

	"github.com/junyaoshi/snakesim/internal/dynamo"
)

func testResult() *dynamo.Result {
	return &dynamo.Result{
		States: []dynamo.State{
			{0, 0, 0},
			{0.1, 0.2, 0.3},
			{0.2, 0.4, 0.6},
		},
		Controls: []dynamo.Control{
			{1, -1},
			{-1, 1},
		},
		Times:      []float64{0, 0.25, 0.5},
		Metrics:    map[string]float64{"displacement": 0.447},
		StepsTaken: 2,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Model:      "swimmer",
		Gait:       "square",
		Integrator: "rk4",
		Seed:       42,
		TInterval:  0.25,
		Timestep:   1,
		Steps:      2,
	}
	labels := []string{"x", "y", "theta"}

	runID, err := store.Save(meta, labels, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "swimmer_") {
		t.Errorf("expected model-prefixed run id, got %q", runID)
	}

	loaded, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ID != runID || loaded.Model != "swimmer" || loaded.Seed != 42 {
		t.Errorf("metadata roundtrip lost fields: %+v", loaded)
	}
	if loaded.Metrics["displacement"] != 0.447 {
		t.Errorf("expected metrics persisted, got %v", loaded.Metrics)
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	labels := []string{"x", "y", "theta"}
	for i := 0; i < 3; i++ {
		if _, err := store.Save(RunMetadata{Model: "wheeled"}, labels, testResult()); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	store := New(t.TempDir() + "/nope")

	runs, err := store.List()
	if err != nil {
		t.Fatalf("expected missing base dir tolerated, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadTrajectory(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	labels := []string{"x", "y", "theta"}
	runID, err := store.Save(RunMetadata{Model: "swimmer"}, labels, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	header, rows, err := store.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	want := []string{"time", "x", "y", "theta", "a1dot_cmd", "a2dot_cmd"}
	if len(header) != len(want) {
		t.Fatalf("expected header %v, got %v", want, header)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header[%d]: expected %q, got %q", i, want[i], header[i])
		}
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// the first row carries zero controls; later rows carry the commands that
	// produced them
	if rows[0][4] != 0 || rows[0][5] != 0 {
		t.Errorf("expected zero controls on the initial row, got %v", rows[0])
	}
	if rows[1][4] != 1 || rows[1][5] != -1 {
		t.Errorf("expected controls (1, -1) on row 1, got %v", rows[1])
	}
	if rows[1][1] != 0.1 {
		t.Errorf("expected x 0.1 on row 1, got %v", rows[1])
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("missing_run"); err == nil {
		t.Error("expected an error for an unknown run id")
	}
	if _, _, err := store.LoadTrajectory("missing_run"); err == nil {
		t.Error("expected an error for an unknown trajectory")
	}
}
