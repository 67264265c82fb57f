package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/missionlog/internal/models"
	"github.com/julianstephens/missionlog/internal/validation"
)

func (s *Store) AddLog(date, category, outcome string) (models.LogEntry, error) {
	if err := validation.LogEntry(date, category, outcome); err != nil {
		return models.LogEntry{}, err
	}

	// Stored timestamps have second precision, so keep the returned
	// struct consistent with what a re-read would produce.
	createdAt := time.Now().UTC().Truncate(time.Second)

	res, err := s.db.Exec(`
		INSERT INTO log_entries (log_date, category, outcome, created_at)
		VALUES (?, ?, ?, ?)`,
		date, category, outcome, createdAt.Format(time.RFC3339))
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to insert log entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("failed to get log entry id: %w", err)
	}

	return models.LogEntry{
		ID:        id,
		Date:      date,
		Category:  category,
		Outcome:   outcome,
		CreatedAt: createdAt,
	}, nil
}

func (s *Store) ListLogs(date string) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, log_date, category, outcome, created_at
		FROM log_entries WHERE log_date = ?
		ORDER BY created_at, id`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		var createdAt string

		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}

		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate log entries: %w", err)
	}

	return entries, nil
}
