// Package storage persists workload runs: metadata as JSON, the per-step
// pair-count series as CSV, and the full pair lifecycle journal in a SQLite
// database per run.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/zeunio/reactphysics3d/internal/sim"
)

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
	ID           string             `json:"id"`
	Preset       string             `json:"preset,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	Bodies       int                `json:"bodies"`
	Steps        int                `json:"steps"`
	Dt           float64            `json:"dt"`
	PeakPairs    int                `json:"peak_pairs"`
	TotalAdded   int                `json:"total_added"`
	TotalRemoved int                `json:"total_removed"`
	FinalTable   int                `json:"final_table_size"`
	Metrics      map[string]float64 `json:"metrics"`
}

var runSeq int

// Save writes one completed run under a fresh run ID and returns it.
func (s *Store) Save(meta RunMetadata, result *sim.Result, events []sim.PairEvent) (string, error) {
	runSeq++
	runID := fmt.Sprintf("run_%d_%d", time.Now().Unix(), runSeq)
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Steps = result.Steps
	meta.PeakPairs = result.PeakPairs
	meta.TotalAdded = result.TotalAdded
	meta.TotalRemoved = result.TotalRemoved
	meta.FinalTable = result.Final.TableSize
	meta.Metrics = result.Metrics

	data, err := sonnet.Marshal(meta)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, "metadata.json"), data, 0644); err != nil {
		return "", err
	}

	if err := writeCounts(filepath.Join(runDir, "counts.csv"), result.Counts); err != nil {
		return "", err
	}

	if err := writeEvents(filepath.Join(runDir, "events.db"), events); err != nil {
		return "", err
	}

	return runID, nil
}

func writeCounts(path string, counts []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"step", "pairs"}); err != nil {
		return err
	}
	for i, c := range counts {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(c, 'f', 0, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := sonnet.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := sonnet.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCounts reads back the per-step pair-count series of a run.
func (s *Store) LoadCounts(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "counts.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	counts := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}
		counts = append(counts, v)
	}
	return counts, nil
}
