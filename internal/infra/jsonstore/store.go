// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository          = (*Store)(nil)
	_ domain.RecurringTaskRepository = (*Store)(nil)
	_ domain.StoreInitializer        = (*Store)(nil)
)

// storeData represents the JSON file structure.
type storeData struct {
	Tasks     map[string]*taskData             `json:"tasks"`
	Recurring map[string]*domain.RecurringTask `json:"recurring,omitempty"`
	Meta      meta                             `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID      int `json:"nextTaskID"`
	NextRecurringID int `json:"nextRecurringID"`
}

// taskData is the JSON representation of a task (without ID, which is the map key).
type taskData = domain.Task

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created by Initialize.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Get retrieves a task by ID. Returns nil if not found or soft-deleted.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		key := strconv.Itoa(id)
		if t, ok := data.Tasks[key]; ok && !t.SoftDeleted {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// List retrieves tasks matching the filter. Completed tasks are excluded
// unless the filter asks for them.
func (s *Store) List(filter domain.TaskFilter) ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id

			if t.SoftDeleted {
				continue
			}
			if t.IsCompleted && !filter.IncludeCompleted {
				continue
			}
			if filter.Color != "" && t.Color != filter.Color {
				continue
			}
			if filter.Priority != 0 && t.PriorityLevel != filter.Priority {
				continue
			}

			tasks = append(tasks, *t)
		}
		return nil
	})

	// Sort by ID for consistent ordering
	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return a.ID - b.ID
	})

	return tasks, err
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(task.ID)
		data.Tasks[key] = task
		return nil
	})
}

// Delete soft-deletes a task by ID. The entry stays in the store file but
// disappears from Get and List.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		t, ok := data.Tasks[key]
		if !ok || t.SoftDeleted {
			return domain.ErrTaskNotFound
		}
		t.SoftDeleted = true
		return nil
	})
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// GetRecurring retrieves a recurring template by ID. Returns nil if not found.
func (s *Store) GetRecurring(id int) (*domain.RecurringTask, error) {
	var rt *domain.RecurringTask
	err := s.withLock(func(data *storeData) error {
		key := strconv.Itoa(id)
		if r, ok := data.Recurring[key]; ok {
			rt = r
			rt.ID = id
		}
		return nil
	})
	return rt, err
}

// ListRecurring retrieves recurring templates, sorted by ID.
func (s *Store) ListRecurring(activeOnly bool) ([]domain.RecurringTask, error) {
	var templates []domain.RecurringTask
	err := s.withLock(func(data *storeData) error {
		for key, r := range data.Recurring {
			id, _ := strconv.Atoi(key)
			r.ID = id

			if activeOnly && !r.IsActive {
				continue
			}
			templates = append(templates, *r)
		}
		return nil
	})

	slices.SortFunc(templates, func(a, b domain.RecurringTask) int {
		return a.ID - b.ID
	})

	return templates, err
}

// SaveRecurring creates or updates a recurring template.
func (s *Store) SaveRecurring(rt *domain.RecurringTask) error {
	return s.withLockWrite(func(data *storeData) error {
		if data.Recurring == nil {
			data.Recurring = make(map[string]*domain.RecurringTask)
		}
		data.Recurring[strconv.Itoa(rt.ID)] = rt
		return nil
	})
}

// DeleteRecurring removes a recurring template by ID.
func (s *Store) DeleteRecurring(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		key := strconv.Itoa(id)
		if _, ok := data.Recurring[key]; !ok {
			return domain.ErrTemplateNotFound
		}
		delete(data.Recurring, key)
		return nil
	})
}

// NextRecurringID returns the next available template ID.
func (s *Store) NextRecurringID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextRecurringID
		data.Meta.NextRecurringID++
		return nil
	})
	return id, err
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	// Create empty store
	data := &storeData{
		Meta:      meta{NextTaskID: 1, NextRecurringID: 1},
		Tasks:     make(map[string]*taskData),
		Recurring: make(map[string]*domain.RecurringTask),
	}

	return s.write(data)
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
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
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure maps are initialized
	if data.Tasks == nil {
		data.Tasks = make(map[string]*taskData)
	}
	if data.Recurring == nil {
		data.Recurring = make(map[string]*domain.RecurringTask)
	}
	// Store files written before recurring templates existed carry no counter.
	if data.Meta.NextRecurringID == 0 {
		data.Meta.NextRecurringID = 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
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
