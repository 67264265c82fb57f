package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/missionlog/internal/constants"
)

// Error describes a single rejected input field. Handlers map it to a
// 400 response; the CLI prints it as a plain error.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func errorf(field, reason string) *Error {
	return &Error{Field: field, Reason: reason}
}

// Day checks that date is a calendar day in YYYY-MM-DD form.
func Day(date string) error {
	if strings.TrimSpace(date) == "" {
		return errorf("date", "cannot be empty")
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return errorf("date", "must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

// LogEntry checks the fields of a new log entry.
func LogEntry(date, category, outcome string) error {
	if err := Day(date); err != nil {
		return err
	}
	if strings.TrimSpace(category) == "" {
		return errorf("category", "cannot be empty")
	}
	if strings.TrimSpace(outcome) == "" {
		return errorf("outcome", "cannot be empty")
	}
	return nil
}

// Task checks the fields of a new task.
func Task(date, description string) error {
	if err := Day(date); err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return errorf("description", "cannot be empty")
	}
	return nil
}
