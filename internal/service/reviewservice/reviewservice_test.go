package reviewservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTaskRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	taskRepo := NewMockTaskRepo(ctrl)
	service := New(repo, taskRepo)
	defer ctrl.Finish()
	return service, repo, taskRepo
}

func intPtr(v int) *int { return &v }

var employer = domain.Principal{ID: 10, IsEmployer: true}

func TestCreateReview(t *testing.T) {
	service, repo, taskRepo := NewMock(t)

	completedTask := &domain.Task{
		ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusCompleted,
	}

	tests := []struct {
		name          string
		principal     domain.Principal
		rating        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Review created, freelancer derived from the task",
			principal: employer,
			rating:    5,
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(completedTask, nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Rating below the scale",
			principal:     employer,
			rating:        0,
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Rating above the scale",
			principal:     employer,
			rating:        6,
			expectedError: domain.ErrValidation,
		},
		{
			name:      "Only the employer can review",
			principal: domain.Principal{ID: 20, IsFreelancer: true},
			rating:    5,
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(completedTask, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Task not completed",
			principal: employer,
			rating:    5,
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:      "Second review for the same task",
			principal: employer,
			rating:    4,
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(completedTask, nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateReview)
			},
			expectedError: domain.ErrDuplicateReview,
		},
		{
			name:      "Task not found",
			principal: employer,
			rating:    5,
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			review, err := service.CreateReview(context.Background(), tt.principal, 1, tt.rating, "Great work")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 20, review.FreelancerID)
				assert.Equal(t, 10, review.EmployerID)
				assert.Equal(t, tt.rating, review.Rating)
			}
		})
	}
}

func TestGetReviewByTask(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Review found", func(t *testing.T) {
		repo.EXPECT().FindByTaskID(gomock.Any(), 1).Return(&domain.Review{ID: 1, TaskID: 1, Rating: 5}, nil)

		review, err := service.GetReviewByTask(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("No review for the task", func(t *testing.T) {
		repo.EXPECT().FindByTaskID(gomock.Any(), 1).Return(nil, nil)

		_, err := service.GetReviewByTask(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListReviewsForFreelancer(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Reviews listed", func(t *testing.T) {
		repo.EXPECT().FindByFreelancerID(gomock.Any(), 20).Return([]domain.Review{{ID: 1}, {ID: 2}}, nil)

		reviews, err := service.ListReviewsForFreelancer(context.Background(), 20)
		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("Repo failure", func(t *testing.T) {
		repo.EXPECT().FindByFreelancerID(gomock.Any(), 20).Return(nil, errors.New("db error"))

		_, err := service.ListReviewsForFreelancer(context.Background(), 20)
		assert.Error(t, err)
	})
}
