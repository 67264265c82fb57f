package server

import (
	"errors"

	"github.com/julianstephens/missionlog/internal/models"
)

var errStorageDown = errors.New("database unreachable")

// failingProvider satisfies storage.Provider and fails every data call,
// for exercising the 500 paths without a database.
type failingProvider struct{}

func (f *failingProvider) Init() error  { return nil }
func (f *failingProvider) Load() error  { return errStorageDown }
func (f *failingProvider) Close() error { return nil }

func (f *failingProvider) AddLog(date, category, outcome string) (models.LogEntry, error) {
	return models.LogEntry{}, errStorageDown
}

func (f *failingProvider) ListLogs(date string) ([]models.LogEntry, error) {
	return nil, errStorageDown
}

func (f *failingProvider) AddTask(date, description string) (models.Task, error) {
	return models.Task{}, errStorageDown
}

func (f *failingProvider) ToggleTask(id int64) (models.Task, error) {
	return models.Task{}, errStorageDown
}

func (f *failingProvider) ListTasks(date string) ([]models.Task, error) {
	return nil, errStorageDown
}

func (f *failingProvider) GetConfigPath() string { return "stub" }
