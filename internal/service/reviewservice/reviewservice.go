package reviewservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

type Repo interface {
	CreateReview(ctx context.Context, review *domain.Review) error
	FindByTaskID(ctx context.Context, taskID int) (*domain.Review, error)
	FindByFreelancerID(ctx context.Context, freelancerID int) ([]domain.Review, error)
}

type TaskRepo interface {
	FindByID(ctx context.Context, taskID int) (*domain.Task, error)
}

type Service struct {
	repo     Repo
	taskRepo TaskRepo
}

func New(repo Repo, taskRepo TaskRepo) *Service {
	return &Service{
		repo:     repo,
		taskRepo: taskRepo,
	}
}

// CreateReview lets the employer rate the freelancer after completion. The
// freelancer is derived from the task, never taken from the caller.
func (s *Service) CreateReview(ctx context.Context, principal domain.Principal, taskID, rating int, comment string) (*domain.Review, error) {
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return nil, domain.ErrValidation
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.EmployerID != principal.ID {
		return nil, domain.ErrForbidden
	}
	if task.Status != domain.TaskStatusCompleted || task.AssigneeID == nil {
		return nil, domain.ErrInvalidState
	}

	review := &domain.Review{
		TaskID:       task.ID,
		EmployerID:   task.EmployerID,
		FreelancerID: *task.AssigneeID,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		if !errors.Is(err, domain.ErrDuplicateReview) {
			zap.L().Error("failed to create review", zap.Error(err))
		}
		return nil, err
	}
	return review, nil
}

func (s *Service) GetReviewByTask(ctx context.Context, taskID int) (*domain.Review, error) {
	review, err := s.repo.FindByTaskID(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to get review", zap.Error(err))
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	return review, nil
}

func (s *Service) ListReviewsForFreelancer(ctx context.Context, freelancerID int) ([]domain.Review, error) {
	reviews, err := s.repo.FindByFreelancerID(ctx, freelancerID)
	if err != nil {
		zap.L().Error("failed to fetch reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}
