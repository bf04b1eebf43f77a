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

	"github.com/google/uuid"

	"github.com/san-kum/dynarray/internal/workload"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
	workloadFile = "workload.yaml"
)

var traceHeader = []string{"step", "op", "size", "cap", "generation", "output", "error"}

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
	ID              string             `json:"id" msgpack:"id"`
	Workload        string             `json:"workload" msgpack:"workload"`
	Description     string             `json:"description,omitempty" msgpack:"description"`
	Timestamp       time.Time          `json:"timestamp" msgpack:"timestamp"`
	InitialCapacity int                `json:"initial_capacity" msgpack:"initial_capacity"`
	Ops             int                `json:"ops" msgpack:"ops"`
	Errors          int                `json:"errors" msgpack:"errors"`
	FinalSize       int                `json:"final_size" msgpack:"final_size"`
	FinalCap        int                `json:"final_cap" msgpack:"final_cap"`
	ElapsedNanos    int64              `json:"elapsed_ns" msgpack:"elapsed_ns"`
	Metrics         map[string]float64 `json:"metrics" msgpack:"metrics"`
}

// Save writes the run metadata, its trace and the workload script under a
// new run directory and returns the run id.
func (s *Store) Save(w *workload.Workload, result *workload.Result) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	runID := id.String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Workload:        w.Name,
		Description:     w.Description,
		Timestamp:       time.Now(),
		InitialCapacity: w.InitialCapacity,
		Ops:             len(w.Ops),
		Errors:          len(result.Errors),
		ElapsedNanos:    result.Elapsed.Nanoseconds(),
		Metrics:         result.Metrics,
	}
	if n := len(result.Snapshots); n > 0 {
		meta.FinalSize = result.Snapshots[n-1].Size
		meta.FinalCap = result.Snapshots[n-1].Cap
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTrace(filepath.Join(runDir, traceFile), result.Snapshots); err != nil {
		return "", err
	}

	if err := workload.Save(filepath.Join(runDir, workloadFile), w); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTrace(path string, snaps []workload.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, snap := range snaps {
		row := []string{
			strconv.Itoa(snap.Step),
			snap.Op,
			strconv.Itoa(snap.Size),
			strconv.Itoa(snap.Cap),
			strconv.FormatUint(snap.Generation, 10),
			snap.Output,
			snap.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadWorkload(runID string) (*workload.Workload, error) {
	return workload.Load(filepath.Join(s.baseDir, runID, workloadFile))
}

func (s *Store) LoadTrace(runID string) ([]workload.Snapshot, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []workload.Snapshot{}, nil
	}

	snaps := make([]workload.Snapshot, 0, len(records)-1)
	for i, record := range records[1:] {
		snap, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", traceFile, i+2, err)
		}
		snaps = append(snaps, snap)
	}

	return snaps, nil
}

func parseRow(record []string) (workload.Snapshot, error) {
	var snap workload.Snapshot
	var err error

	if snap.Step, err = strconv.Atoi(record[0]); err != nil {
		return snap, err
	}
	snap.Op = record[1]
	if snap.Size, err = strconv.Atoi(record[2]); err != nil {
		return snap, err
	}
	if snap.Cap, err = strconv.Atoi(record[3]); err != nil {
		return snap, err
	}
	if snap.Generation, err = strconv.ParseUint(record[4], 10, 64); err != nil {
		return snap, err
	}
	snap.Output = record[5]
	snap.Err = record[6]
	return snap, nil
}
