package planlog

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// JSONLStore stores plan records in a JSONL file with automatic rotation.
type JSONLStore struct {
	mu     sync.Mutex
	logger *lumberjack.Logger
	path   string
}

// NewJSONLStore creates a store with rotation options in megabytes and days.
func NewJSONLStore(path string, maxSizeMB, maxBackups, maxAgeDays int) (*JSONLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return &JSONLStore{logger: lj, path: path}, nil
}

// Append writes the record and triggers rotation if needed.
func (s *JSONLStore) Append(ctx context.Context, rec Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.NewEncoder(s.logger).Encode(rec)
}

// Query reads all log files including rotated ones. Unparseable lines are
// skipped.
func (s *JSONLStore) Query(ctx context.Context, q Query) ([]Record, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	// lumberjack names backups by inserting a timestamp before the
	// extension (plans-<ts>.jsonl), so the glob must split around it
	ext := filepath.Ext(s.path)
	base := strings.TrimSuffix(s.path, ext)
	files, err := filepath.Glob(base + "*" + ext)
	if err != nil {
		return nil, err
	}
	var res []Record
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			var r Record
			if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
				continue
			}
			if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
				continue
			}
			if !q.End.IsZero() && r.Timestamp.After(q.End) {
				continue
			}
			if q.Feasible != nil && r.Feasible != *q.Feasible {
				continue
			}
			res = append(res, r)
		}
		_ = f.Close()
	}
	return res, nil
}

// Close closes the underlying writer.
func (s *JSONLStore) Close() error {
	return s.logger.Close()
}
