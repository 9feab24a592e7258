package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
)

// Store persists trials as one directory per run: metadata.json plus
// trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Seed         int64     `json:"seed"`
	DriftRate    float64   `json:"drift_rate"`
	Threshold    float64   `json:"threshold"`
	StartingBias float64   `json:"starting_bias"`
	NoiseScale   float64   `json:"noise_scale"`
	Dt           float64   `json:"dt"`
	MaxTime      float64   `json:"max_time"`
	Decided      bool      `json:"decided"`
	Boundary     string    `json:"boundary"`
	DecisionTime float64   `json:"decision_time"`
	Steps        int       `json:"steps"`
}

func (s *Store) Save(p ddm.Params, seed int64, trial *ddm.Trial) (string, error) {
	runID := fmt.Sprintf("trial_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Seed:         seed,
		DriftRate:    p.DriftRate,
		Threshold:    p.Threshold,
		StartingBias: p.StartingBias,
		NoiseScale:   p.NoiseScale,
		Dt:           p.Dt,
		MaxTime:      p.MaxTime,
		Decided:      trial.Decided,
		Boundary:     trial.Boundary.String(),
		DecisionTime: trial.DecisionTime,
		Steps:        trial.Steps(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "evidence"}); err != nil {
		return "", err
	}
	for i := range trial.Times {
		row := []string{
			strconv.FormatFloat(trial.Times[i], 'f', 6, 64),
			strconv.FormatFloat(trial.Evidences[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	evidences := make([]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		tm, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		ev, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		times = append(times, tm)
		evidences = append(evidences, ev)
	}

	return times, evidences, nil
}
