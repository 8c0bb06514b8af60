package taskservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

type Repo interface {
	Save(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, taskID int) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatusFrom(ctx context.Context, taskID int, from, to string) (bool, error)
	Assign(ctx context.Context, taskID, assigneeID int) (*domain.Task, error)
	Cancel(ctx context.Context, taskID int) (bool, error)
	FindByEmployerID(ctx context.Context, employerID int, status string) ([]domain.Task, error)
	FindForFreelancer(ctx context.Context, freelancerID int, status string) ([]domain.Task, error)
	SaveTemplate(ctx context.Context, tpl *domain.TaskTemplate) error
	FindTemplateByID(ctx context.Context, templateID int) (*domain.TaskTemplate, error)
	FindTemplatesByEmployerID(ctx context.Context, employerID int) ([]domain.TaskTemplate, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

type CreateTaskParams struct {
	TemplateID  *int
	Title       string
	Description string
	Amount      float64
	Deadline    *time.Time
}

type UpdateTaskParams struct {
	Title       *string
	Description *string
	Amount      *float64
	Deadline    *time.Time
}

// CreateTask creates a draft. Blank fields are prefilled from the referenced
// template, which must belong to the caller; the template is not coupled to
// the task afterwards.
func (s *Service) CreateTask(ctx context.Context, principal domain.Principal, params CreateTaskParams) (*domain.Task, error) {
	if !principal.IsEmployer {
		return nil, domain.ErrForbidden
	}

	task := &domain.Task{
		EmployerID:  principal.ID,
		TemplateID:  params.TemplateID,
		Title:       params.Title,
		Description: params.Description,
		Amount:      params.Amount,
		Status:      domain.TaskStatusDraft,
		Deadline:    params.Deadline,
	}

	if params.TemplateID != nil {
		tpl, err := s.repo.FindTemplateByID(ctx, *params.TemplateID)
		if err != nil {
			return nil, err
		}
		if tpl == nil || tpl.EmployerID != principal.ID {
			return nil, domain.ErrNotFound
		}
		if task.Title == "" {
			task.Title = tpl.Title
		}
		if task.Description == "" {
			task.Description = tpl.Description
		}
		if task.Amount == 0 && tpl.DefaultAmount > 0 {
			task.Amount = tpl.DefaultAmount
		}
	}

	if task.Title == "" || task.Description == "" || task.Amount <= 0 {
		return nil, domain.ErrValidation
	}

	if err := s.repo.Save(ctx, task); err != nil {
		zap.L().Error("can't save task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// UpdateTask edits a draft. Published tasks are immutable, amount included.
func (s *Service) UpdateTask(ctx context.Context, principal domain.Principal, taskID int, params UpdateTaskParams) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusDraft {
		return nil, domain.ErrInvalidState
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Amount != nil {
		if *params.Amount <= 0 {
			return nil, domain.ErrValidation
		}
		task.Amount = *params.Amount
	}
	if params.Deadline != nil {
		task.Deadline = params.Deadline
	}

	if err := s.repo.Update(ctx, task); err != nil {
		zap.L().Error("failed to update task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// Publish moves a draft to published. Calling it on any other status is an
// invalid transition, not a no-op.
func (s *Service) Publish(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusDraft {
		return nil, domain.ErrInvalidState
	}
	if task.Title == "" || task.Description == "" || task.Amount <= 0 {
		return nil, domain.ErrValidation
	}

	ok, err := s.repo.UpdateStatusFrom(ctx, taskID, domain.TaskStatusDraft, domain.TaskStatusPublished)
	if err != nil {
		zap.L().Error("failed to publish task", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}

	task.Status = domain.TaskStatusPublished
	return task, nil
}

// Assign sets the caller as the task's freelancer. The repository performs a
// compare-and-set; a caller that loses the race gets ErrConflict.
func (s *Service) Assign(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error) {
	if !principal.IsFreelancer {
		return nil, domain.ErrForbidden
	}

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.AssigneeID != nil {
		return nil, domain.ErrConflict
	}
	if task.Status != domain.TaskStatusPublished {
		return nil, domain.ErrInvalidState
	}

	assigned, err := s.repo.Assign(ctx, taskID, principal.ID)
	if err != nil {
		zap.L().Error("failed to assign task", zap.Error(err))
		return nil, err
	}
	if assigned == nil {
		zap.L().Info("lost assign race", zap.Int("task_id", taskID), zap.Int("freelancer_id", principal.ID))
		return nil, domain.ErrConflict
	}
	return assigned, nil
}

func (s *Service) Complete(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.AssigneeID == nil || *task.AssigneeID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusAssigned {
		return nil, domain.ErrInvalidState
	}

	ok, err := s.repo.UpdateStatusFrom(ctx, taskID, domain.TaskStatusAssigned, domain.TaskStatusCompleted)
	if err != nil {
		zap.L().Error("failed to complete task", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}

	task.Status = domain.TaskStatusCompleted
	return task, nil
}

// Cancel moves any non-terminal task to cancelled and releases the assignee.
func (s *Service) Cancel(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if domain.IsTerminal(task.Status) {
		return nil, domain.ErrInvalidState
	}

	ok, err := s.repo.Cancel(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to cancel task", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}

	task.Status = domain.TaskStatusCancelled
	task.AssigneeID = nil
	return task, nil
}

// GetTask hides tasks outside the caller's view, the same way listing does.
func (s *Service) GetTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !s.visibleTo(principal, task) {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (s *Service) visibleTo(principal domain.Principal, task *domain.Task) bool {
	if task.EmployerID == principal.ID {
		return true
	}
	if task.AssigneeID != nil && *task.AssigneeID == principal.ID {
		return true
	}
	return principal.IsFreelancer && task.AssigneeID == nil && task.Status == domain.TaskStatusPublished
}

// ListTasks returns the caller's slice of the marketplace: employers see their
// own tasks, freelancers see their tasks plus open published ones.
func (s *Service) ListTasks(ctx context.Context, principal domain.Principal, status string) ([]domain.Task, error) {
	switch {
	case principal.IsEmployer:
		return s.repo.FindByEmployerID(ctx, principal.ID, status)
	case principal.IsFreelancer:
		return s.repo.FindForFreelancer(ctx, principal.ID, status)
	default:
		return nil, nil
	}
}

func (s *Service) CreateTemplate(ctx context.Context, principal domain.Principal, tpl *domain.TaskTemplate) (*domain.TaskTemplate, error) {
	if !principal.IsEmployer {
		return nil, domain.ErrForbidden
	}
	if tpl.Name == "" || tpl.Title == "" {
		return nil, domain.ErrValidation
	}
	tpl.EmployerID = principal.ID

	if err := s.repo.SaveTemplate(ctx, tpl); err != nil {
		zap.L().Error("can't save task template", zap.Error(err))
		return nil, err
	}
	return tpl, nil
}

func (s *Service) ListTemplates(ctx context.Context, principal domain.Principal) ([]domain.TaskTemplate, error) {
	if !principal.IsEmployer {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindTemplatesByEmployerID(ctx, principal.ID)
}
