// Package projectstore provides a file-based implementation of ProjectRepository.
// The encoding (JSON or YAML) is chosen from the file extension.
package projectstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/runoshun/gantt/internal/domain"
	"gopkg.in/yaml.v3"
)

// formatVersion is written into every project file.
const formatVersion = 1

// storeData represents the project file structure.
// Tasks are kept as a list so their order survives a round trip.
type storeData struct {
	Tasks []*domain.Task `json:"tasks" yaml:"tasks"`
	Meta  meta           `json:"meta" yaml:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version" yaml:"version"`
}

// codec encodes and decodes storeData.
type codec interface {
	marshal(data *storeData) ([]byte, error)
	unmarshal(content []byte, data *storeData) error
}

type jsonCodec struct{}

func (jsonCodec) marshal(data *storeData) ([]byte, error) {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}

func (jsonCodec) unmarshal(content []byte, data *storeData) error {
	return json.Unmarshal(content, data)
}

type yamlCodec struct{}

func (yamlCodec) marshal(data *storeData) ([]byte, error) {
	return yaml.Marshal(data)
}

func (yamlCodec) unmarshal(content []byte, data *storeData) error {
	return yaml.Unmarshal(content, data)
}

// codecFor returns the codec matching the file extension. JSON is the default.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

// Store implements domain.ProjectRepository using a single file.
type Store struct {
	codec    codec
	path     string
	lockPath string
}

// Ensure Store implements ProjectRepository.
var _ domain.ProjectRepository = (*Store)(nil)

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{
		codec:    codecFor(path),
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the project file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored tasks in order.
func (s *Store) Load() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		tasks = data.Tasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	for _, t := range tasks {
		t.RecalcEnd()
	}
	return tasks, nil
}

// Save replaces the stored tasks.
func (s *Store) Save(tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(&storeData{
			Meta:  meta{Version: formatVersion},
			Tasks: tasks,
		})
	})
}

// Exists checks if the project file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// withLock executes fn while holding a lock of the given type.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var data storeData
	if err := s.codec.unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse project file %s: %w", s.path, err)
	}
	for i, t := range data.Tasks {
		if t == nil {
			return nil, fmt.Errorf("parse project file %s: task %d is empty", s.path, i+1)
		}
	}
	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := s.codec.marshal(data)
	if err != nil {
		return fmt.Errorf("marshal project data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
