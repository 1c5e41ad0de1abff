package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Anal-Rauth/Task-Manager/models"
)

// TaskStore is the remote task collection. Every operation is scoped by an
// equality match on the owner's user id, so a task can never be read or
// written by anyone but its owner.
type TaskStore interface {
	List(ctx context.Context, userID string, filters models.Filters) ([]models.Task, error)
	Create(ctx context.Context, task models.Task) error
	Update(ctx context.Context, id, userID string, input models.TaskInput, updatedAt time.Time) error
	Delete(ctx context.Context, id, userID string) error
	SetStatus(ctx context.Context, id, userID, status string, updatedAt time.Time) error
}

// ListQuery builds the single SELECT for a list load: scoped to the owner,
// with equality clauses added only for non-"all" status and priority
// filters, a case-insensitive substring match on title when a search term is
// present, and one ORDER BY chosen by a fixed mapping on the sort key.
func ListQuery(userID string, filters models.Filters) (string, []interface{}) {
	query := `SELECT id, user_id, title, description, priority, due_date, status, created_at, updated_at
        FROM tasks
        WHERE user_id = $1`
	params := []interface{}{userID}
	paramCount := 2

	if filters.Status != models.FilterAll {
		query += fmt.Sprintf(" AND status = $%d", paramCount)
		params = append(params, filters.Status)
		paramCount++
	}

	if filters.Priority != models.FilterAll {
		query += fmt.Sprintf(" AND priority = $%d", paramCount)
		params = append(params, filters.Priority)
		paramCount++
	}

	if filters.Search != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", paramCount)
		params = append(params, "%"+filters.Search+"%")
	}

	switch filters.Sort {
	case models.SortPriority:
		query += " ORDER BY priority ASC"
	case models.SortCreatedAt:
		query += " ORDER BY created_at DESC"
	default:
		query += " ORDER BY due_date ASC"
	}

	return query, params
}

// PostgresTaskStore runs the task collection against the hosted Postgres
// backend.
type PostgresTaskStore struct {
	db *sql.DB
}

func NewPostgresTaskStore(db *sql.DB) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

func (s *PostgresTaskStore) List(ctx context.Context, userID string, filters models.Filters) ([]models.Task, error) {
	query, params := ListQuery(userID, filters)

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Priority, &task.DueDate, &task.Status,
			&task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (s *PostgresTaskStore) Create(ctx context.Context, task models.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, user_id, title, description, priority, due_date, status, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.UserID, task.Title, task.Description,
		task.Priority, task.DueDate, task.Status,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Update writes every validated field of the task. The WHERE clause matches
// both the task id and the owner id, so a guessed id belonging to another
// user updates nothing.
func (s *PostgresTaskStore) Update(ctx context.Context, id, userID string, input models.TaskInput, updatedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE tasks
         SET title = $1, description = $2, priority = $3, due_date = $4, status = $5, updated_at = $6
         WHERE id = $7 AND user_id = $8`,
		input.Title, input.Description, input.Priority, input.DueDate, input.Status,
		updatedAt, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (s *PostgresTaskStore) Delete(ctx context.Context, id, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *PostgresTaskStore) SetStatus(ctx context.Context, id, userID, status string, updatedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		status, updatedAt, id, userID,
	)
	if err != nil {
		return fmt.Errorf("set task status: %w", err)
	}
	return nil
}
