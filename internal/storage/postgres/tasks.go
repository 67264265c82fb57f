package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/missionlog/internal/models"
	"github.com/julianstephens/missionlog/internal/storage"
	"github.com/julianstephens/missionlog/internal/validation"
)

func (s *Store) AddTask(date, description string) (models.Task, error) {
	if err := validation.Task(date, description); err != nil {
		return models.Task{}, err
	}

	createdAt := time.Now().UTC().Truncate(time.Second)

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO tasks (log_date, description, done, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id`,
		date, description, createdAt.Format(time.RFC3339)).Scan(&id)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	return models.Task{
		ID:          id,
		Date:        date,
		Description: description,
		Done:        false,
		CreatedAt:   createdAt,
	}, nil
}

func (s *Store) getTask(id int64) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, log_date, description, done, created_at
		FROM tasks WHERE id = $1`, id)

	var t models.Task
	var createdAt string

	err := row.Scan(&t.ID, &t.Date, &t.Description, &t.Done, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}

func (s *Store) ToggleTask(id int64) (models.Task, error) {
	task, err := s.getTask(id)
	if err != nil {
		return models.Task{}, err
	}

	task.Done = !task.Done

	res, err := s.db.Exec(`UPDATE tasks SET done = $1 WHERE id = $2`, task.Done, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}

	return task, nil
}

func (s *Store) ListTasks(date string) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, log_date, description, done, created_at
		FROM tasks WHERE log_date = $1
		ORDER BY id`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var createdAt string

		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Done, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
