package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sandfall/internal/sandbox"
)

// Store persists headless session telemetry: one directory per session
// holding metadata.json and frames.csv. Particle state itself is never
// written.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Emitter   string             `json:"emitter"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(dt, duration float64, emitter string, result *sandbox.Result) (string, error) {
	sessionID := fmt.Sprintf("session_%d", time.Now().Unix())
	sessionDir := filepath.Join(s.baseDir, sessionID)

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:        sessionID,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Emitter:   emitter,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(sessionDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(sessionDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "live", "spawned", "evicted"}); err != nil {
		return "", err
	}
	for _, f := range result.Frames {
		row := []string{
			strconv.FormatFloat(f.T, 'f', 6, 64),
			strconv.Itoa(f.Live),
			strconv.Itoa(f.Spawned),
			strconv.Itoa(f.Evicted),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sessionID, nil
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		sessions = append(sessions, meta)
	}

	return sessions, nil
}

func (s *Store) Load(sessionID string) (*SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(sessionID string) ([]sandbox.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, sessionID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sandbox.Frame{}, nil
	}

	frames := make([]sandbox.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		live, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		spawned, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		evicted, err := strconv.Atoi(record[3])
		if err != nil {
			continue
		}

		frames = append(frames, sandbox.Frame{T: t, Live: live, Spawned: spawned, Evicted: evicted})
	}

	return frames, nil
}
