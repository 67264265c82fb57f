package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/missionlog/internal/backup"
	"github.com/julianstephens/missionlog/internal/config"
	"github.com/julianstephens/missionlog/internal/constants"
	"github.com/julianstephens/missionlog/internal/logger"
	"github.com/julianstephens/missionlog/internal/models"
	"github.com/julianstephens/missionlog/internal/storage"
	"github.com/julianstephens/missionlog/internal/storage/sqlite"
	"github.com/julianstephens/missionlog/internal/validation"
)

// Context carries the resolved configuration and the active storage
// backend to every command.
type Context struct {
	Store  storage.Provider
	Config config.Config
}

// PerformAutomaticBackup snapshots the SQLite database and silently handles
// errors; PostgreSQL backends are skipped.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt the command
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolveDate turns a command's date argument into a concrete ISO date,
// treating "today" (or empty) as the current local date.
func resolveDate(arg string) (string, error) {
	if arg == "" || arg == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if err := validation.Day(arg); err != nil {
		return "", err
	}
	return arg, nil
}

// fetchDay loads one date's log entries and tasks.
func fetchDay(store storage.Provider, date string) (models.Day, error) {
	logs, err := store.ListLogs(date)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to list log entries: %w", err)
	}
	tasks, err := store.ListTasks(date)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return models.Day{Date: date, Logs: logs, Tasks: tasks}, nil
}
