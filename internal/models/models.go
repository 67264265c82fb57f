package models

import "time"

// LogEntry is an immutable record of a categorized outcome for a single day.
type LogEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Category  string    `json:"category"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// Task is a checklist item for a single day. Done is the only mutable field.
type Task struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Description string    `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// Status returns the human-readable done state used in exports and listings.
func (t Task) Status() string {
	if t.Done {
		return "Done"
	}
	return "Pending"
}

// Day groups one date's entries and tasks for rendering and export.
// It is derived per request, never persisted.
type Day struct {
	Date  string     `json:"date"` // YYYY-MM-DD
	Logs  []LogEntry `json:"logs"`
	Tasks []Task     `json:"tasks"`
}
