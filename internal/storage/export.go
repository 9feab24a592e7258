package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID           string    `json:"id"`
	DriftRate    float64   `json:"drift_rate"`
	Threshold    float64   `json:"threshold"`
	StartingBias float64   `json:"starting_bias"`
	NoiseScale   float64   `json:"noise_scale"`
	Dt           float64   `json:"dt"`
	MaxTime      float64   `json:"max_time"`
	Seed         int64     `json:"seed"`
	Decided      bool      `json:"decided"`
	Boundary     string    `json:"boundary"`
	DecisionTime float64   `json:"decision_time"`
	Steps        int       `json:"steps"`
	Times        []float64 `json:"times"`
	Evidences    []float64 `json:"evidences"`
}

func exportData(meta *RunMetadata, times, evidences []float64) ExportData {
	return ExportData{
		ID:           meta.ID,
		DriftRate:    meta.DriftRate,
		Threshold:    meta.Threshold,
		StartingBias: meta.StartingBias,
		NoiseScale:   meta.NoiseScale,
		Dt:           meta.Dt,
		MaxTime:      meta.MaxTime,
		Seed:         meta.Seed,
		Decided:      meta.Decided,
		Boundary:     meta.Boundary,
		DecisionTime: meta.DecisionTime,
		Steps:        meta.Steps,
		Times:        times,
		Evidences:    evidences,
	}
}

func ExportJSON(w io.Writer, meta *RunMetadata, times, evidences []float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, times, evidences))
}

func ExportJSONStdout(meta *RunMetadata, times, evidences []float64) error {
	return ExportJSON(os.Stdout, meta, times, evidences)
}
