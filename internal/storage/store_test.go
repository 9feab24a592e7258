package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
)

func runTrial(t *testing.T) (ddm.Params, *ddm.Trial) {
	t.Helper()

	p := ddm.DefaultParams()
	p.NoiseScale = 0 // deterministic trajectory for the roundtrip

	sim, err := ddm.New(p, nil)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	trial, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return p, trial
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, trial := runTrial(t)

	runID, err := st.Save(p, 42, trial)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "trial_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Boundary != "upper" {
		t.Errorf("expected upper boundary, got %s", meta.Boundary)
	}
	if meta.Steps != trial.Steps() {
		t.Errorf("expected %d steps, got %d", trial.Steps(), meta.Steps)
	}

	times, evidences, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	if len(times) != len(trial.Times) {
		t.Fatalf("expected %d samples, got %d", len(trial.Times), len(times))
	}
	// values roundtrip through 6-decimal CSV formatting
	for i := range times {
		if diff := times[i] - trial.Times[i]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("time %d drifted through roundtrip: %f vs %f", i, times[i], trial.Times[i])
		}
		if diff := evidences[i] - trial.Evidences[i]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("evidence %d drifted through roundtrip: %f vs %f", i, evidences[i], trial.Evidences[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, trial := runTrial(t)
	if _, err := st.Save(p, 1, trial); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	p, trial := runTrial(t)
	meta := &RunMetadata{ID: "trial_1", DriftRate: p.DriftRate, Boundary: trial.Boundary.String()}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, trial.Times, trial.Evidences); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.ID != "trial_1" {
		t.Errorf("expected id trial_1, got %s", data.ID)
	}
	if len(data.Evidences) != len(trial.Evidences) {
		t.Errorf("expected %d evidences, got %d", len(trial.Evidences), len(data.Evidences))
	}
}
