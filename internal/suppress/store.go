package suppress

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// JSONLStore persists entries as JSON Lines. Every write is a single
// O_APPEND record, so evidence of intent survives a crash mid-mutation.
// Status changes append a superseding record for the same id; Load keeps
// the last record per id, in first-appearance order. Full scan on load,
// which is fine at suppression-log sizes.
type JSONLStore struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

// OpenJSONLStore creates or opens the log file, creating parent
// directories as needed.
func OpenJSONLStore(path string) (*JSONLStore, error) {
	if path == "" {
		return nil, errors.New("suppression log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening suppression log")
	}
	return &JSONLStore{path: path, f: f}, nil
}

func (s *JSONLStore) Append(e Entry) error {
	return s.write(e)
}

func (s *JSONLStore) Update(e Entry) error {
	return s.write(e)
}

func (s *JSONLStore) write(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return errors.New("store is closed")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "encoding entry")
	}
	data = append(data, '\n')
	if _, err := s.f.Write(data); err != nil {
		return errors.Wrap(err, "appending entry")
	}
	return s.f.Sync()
}

// Load scans the whole file. Damaged lines (torn final write after a
// crash) are skipped, not fatal.
func (s *JSONLStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading suppression log")
	}
	defer f.Close()

	latest := make(map[string]Entry)
	var order []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil || e.ID == "" {
			continue
		}
		if _, seen := latest[e.ID]; !seen {
			order = append(order, e.ID)
		}
		latest[e.ID] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning suppression log")
	}

	out := make([]Entry, 0, len(order))
	for _, id := range order {
		out = append(out, latest[id])
	}
	return out, nil
}

// Close closes the underlying file.
func (s *JSONLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
