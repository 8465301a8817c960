package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// Store writes trace exports of headless runs under baseDir, one
// directory per run.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID         string             `json:"id"`
	Setup      string             `json:"setup"`
	Timestamp  time.Time          `json:"timestamp"`
	Frames     int                `json:"frames"`
	Integrator string             `json:"integrator"`
	Capture    bool               `json:"capture"`
	Sources    int                `json:"sources"`
	Particles  int                `json:"particles"`
	Tracked    []int              `json:"tracked"`
	Metrics    map[string]float64 `json:"metrics"`
}

type TraceRow struct {
	Frame    int
	Particle int
	X, Y     float64
	VX, VY   float64
	Alive    bool
	Circling bool
}

var traceHeader = []string{"frame", "particle", "x", "y", "vx", "vy", "alive", "circling"}

// Save writes metadata.json and trace.csv and returns the run id.
func (s *Store) Save(meta TraceMetadata, rows []TraceRow) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", meta.Setup, ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = ts

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Frame),
			strconv.Itoa(r.Particle),
			strconv.FormatFloat(r.X, 'f', 6, 64),
			strconv.FormatFloat(r.Y, 'f', 6, 64),
			strconv.FormatFloat(r.VX, 'f', 6, 64),
			strconv.FormatFloat(r.VY, 'f', 6, 64),
			strconv.FormatBool(r.Alive),
			strconv.FormatBool(r.Circling),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns the metadata of every exported trace, oldest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
