package taskrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const taskColumns = `id, employer_id, assignee_id, template_id, title, description, amount, status, deadline, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID, &task.EmployerID, &task.AssigneeID, &task.TemplateID,
		&task.Title, &task.Description, &task.Amount, &task.Status,
		&task.Deadline, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *Repository) Save(ctx context.Context, task *domain.Task) error {
	query := `
        INSERT INTO tasks (employer_id, template_id, title, description, amount, status, deadline)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			task.EmployerID, task.TemplateID, task.Title, task.Description,
			task.Amount, task.Status, task.Deadline,
		)
		if err := row.Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			zap.L().Error("can't save task", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, taskID int) (*domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE id = $1
    `
	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) Update(ctx context.Context, task *domain.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, description = $2, amount = $3, deadline = $4, updated_at = now()
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, task.Title, task.Description, task.Amount, task.Deadline, task.ID)
		if err != nil {
			zap.L().Error("failed to update task", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatusFrom moves the task from one exact status to another. A false
// return means the task was no longer in the expected status at write time.
func (r *Repository) UpdateStatusFrom(ctx context.Context, taskID int, from, to string) (bool, error) {
	query := `
        UPDATE tasks
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, taskID, from)
	if err != nil {
		zap.L().Error("failed to update task status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Assign sets the assignee with a compare-and-set on (status, assignee):
// exactly one of several concurrent callers gets the row back, the rest get nil.
func (r *Repository) Assign(ctx context.Context, taskID, assigneeID int) (*domain.Task, error) {
	query := `
        UPDATE tasks
        SET assignee_id = $1, status = $2, updated_at = now()
        WHERE id = $3 AND status = $4 AND assignee_id IS NULL
        RETURNING ` + taskColumns + `
    `
	task, err := scanTask(r.db.QueryRow(ctx, query, assigneeID, domain.TaskStatusAssigned, taskID, domain.TaskStatusPublished))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to assign task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// Cancel moves any non-terminal task to cancelled, clearing the assignee.
func (r *Repository) Cancel(ctx context.Context, taskID int) (bool, error) {
	query := `
        UPDATE tasks
        SET status = $1, assignee_id = NULL, updated_at = now()
        WHERE id = $2 AND status NOT IN ($3, $4)
    `
	var affected bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.TaskStatusCancelled, taskID, domain.TaskStatusCompleted, domain.TaskStatusCancelled)
		if err != nil {
			zap.L().Error("failed to cancel task", zap.Error(err))
			return err
		}
		affected = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected, nil
}

func (r *Repository) FindByEmployerID(ctx context.Context, employerID int, status string) ([]domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE employer_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, employerID, status)
}

// FindForFreelancer returns the freelancer's own tasks plus unassigned
// published tasks available to take.
func (r *Repository) FindForFreelancer(ctx context.Context, freelancerID int, status string) ([]domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE (assignee_id = $1 OR (assignee_id IS NULL AND status = $3))
          AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, freelancerID, status, domain.TaskStatusPublished)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *Repository) SaveTemplate(ctx context.Context, tpl *domain.TaskTemplate) error {
	query := `
        INSERT INTO task_templates (employer_id, name, title, description, default_amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tpl.EmployerID, tpl.Name, tpl.Title, tpl.Description, tpl.DefaultAmount).
		Scan(&tpl.ID, &tpl.CreatedAt)
	if err != nil {
		zap.L().Error("can't save task template", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindTemplateByID(ctx context.Context, templateID int) (*domain.TaskTemplate, error) {
	query := `
        SELECT id, employer_id, name, title, description, default_amount, created_at
        FROM task_templates
        WHERE id = $1
    `
	var tpl domain.TaskTemplate
	err := r.db.QueryRow(ctx, query, templateID).
		Scan(&tpl.ID, &tpl.EmployerID, &tpl.Name, &tpl.Title, &tpl.Description, &tpl.DefaultAmount, &tpl.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find task template", zap.Error(err))
		return nil, err
	}
	return &tpl, nil
}

func (r *Repository) FindTemplatesByEmployerID(ctx context.Context, employerID int) ([]domain.TaskTemplate, error) {
	query := `
        SELECT id, employer_id, name, title, description, default_amount, created_at
        FROM task_templates
        WHERE employer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		zap.L().Error("can't get task templates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var templates []domain.TaskTemplate
	for rows.Next() {
		var tpl domain.TaskTemplate
		err := rows.Scan(&tpl.ID, &tpl.EmployerID, &tpl.Name, &tpl.Title, &tpl.Description, &tpl.DefaultAmount, &tpl.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan task template row", zap.Error(err))
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}
