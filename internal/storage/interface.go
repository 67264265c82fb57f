package storage

import (
	"errors"

	"github.com/julianstephens/missionlog/internal/models"
)

// ErrNotFound marks lookups for rows that do not exist. Callers match it
// with errors.Is; the HTTP layer maps it to a 404.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Log entries (immutable once created)
	AddLog(date, category, outcome string) (models.LogEntry, error)
	// ListLogs returns the date's entries ordered by creation timestamp
	// ascending, identifier breaking ties.
	ListLogs(date string) ([]models.LogEntry, error)

	// Tasks
	AddTask(date, description string) (models.Task, error)
	// ToggleTask flips the done flag and returns the updated task.
	// Two calls in a row restore the original state.
	ToggleTask(id int64) (models.Task, error)
	// ListTasks returns the date's tasks ordered by identifier ascending
	// (creation order).
	ListTasks(date string) ([]models.Task, error)

	// GetConfigPath returns the SQLite file path or a description of the
	// PostgreSQL target, for diagnostics and backups.
	GetConfigPath() string
}
