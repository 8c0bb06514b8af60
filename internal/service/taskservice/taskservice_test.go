package taskservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

var (
	employer   = domain.Principal{ID: 10, IsEmployer: true}
	freelancer = domain.Principal{ID: 20, IsFreelancer: true}
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateTask(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		params        CreateTaskParams
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Draft created successfully",
			principal: employer,
			params:    CreateTaskParams{Title: "Design a logo", Description: "Vector logo", Amount: 5000},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Freelancer cannot create tasks",
			principal:     freelancer,
			params:        CreateTaskParams{Title: "Design a logo", Description: "Vector logo", Amount: 5000},
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "Missing title",
			principal:     employer,
			params:        CreateTaskParams{Description: "Vector logo", Amount: 5000},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Non-positive amount",
			principal:     employer,
			params:        CreateTaskParams{Title: "Design a logo", Description: "Vector logo", Amount: 0},
			expectedError: domain.ErrValidation,
		},
		{
			name:      "Prefill from template",
			principal: employer,
			params:    CreateTaskParams{TemplateID: intPtr(1)},
			prepareMock: func() {
				repo.EXPECT().FindTemplateByID(gomock.Any(), 1).Return(&domain.TaskTemplate{
					ID: 1, EmployerID: 10, Title: "Design a logo", Description: "Vector logo", DefaultAmount: 5000,
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "Template owned by another employer",
			principal: employer,
			params:    CreateTaskParams{TemplateID: intPtr(2), Title: "Design a logo", Description: "Vector logo", Amount: 5000},
			prepareMock: func() {
				repo.EXPECT().FindTemplateByID(gomock.Any(), 2).Return(&domain.TaskTemplate{ID: 2, EmployerID: 99}, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:      "Save fails",
			principal: employer,
			params:    CreateTaskParams{Title: "Design a logo", Description: "Vector logo", Amount: 5000},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			task, err := service.CreateTask(context.Background(), tt.principal, tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TaskStatusDraft, task.Status)
				assert.Equal(t, tt.principal.ID, task.EmployerID)
				assert.NotEmpty(t, task.Title)
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		params        UpdateTaskParams
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Draft updated successfully",
			principal: employer,
			params:    UpdateTaskParams{Title: strPtr("New title"), Amount: floatPtr(6000)},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Title: "Old", Description: "Desc", Amount: 5000, Status: domain.TaskStatusDraft,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "Published tasks are immutable",
			principal: employer,
			params:    UpdateTaskParams{Amount: floatPtr(6000)},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusPublished,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:      "Not the owner",
			principal: domain.Principal{ID: 11, IsEmployer: true},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusDraft,
				}, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Non-positive amount rejected",
			principal: employer,
			params:    UpdateTaskParams{Amount: floatPtr(-1)},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusDraft,
				}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:      "Task not found",
			principal: employer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			task, err := service.UpdateTask(context.Background(), tt.principal, 1, tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New title", task.Title)
				assert.Equal(t, 6000.0, task.Amount)
			}
		})
	}
}

func TestPublish(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Draft published successfully",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Title: "T", Description: "D", Amount: 100, Status: domain.TaskStatusDraft,
				}, nil)
				repo.EXPECT().UpdateStatusFrom(gomock.Any(), 1, domain.TaskStatusDraft, domain.TaskStatusPublished).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Already published",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Title: "T", Description: "D", Amount: 100, Status: domain.TaskStatusPublished,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "Incomplete draft cannot be published",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Title: "T", Amount: 100, Status: domain.TaskStatusDraft,
				}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Lost the transition race",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Title: "T", Description: "D", Amount: 100, Status: domain.TaskStatusDraft,
				}, nil)
				repo.EXPECT().UpdateStatusFrom(gomock.Any(), 1, domain.TaskStatusDraft, domain.TaskStatusPublished).Return(false, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			task, err := service.Publish(context.Background(), employer, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TaskStatusPublished, task.Status)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Assigned successfully",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusPublished,
				}, nil)
				repo.EXPECT().Assign(gomock.Any(), 1, 20).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Employer cannot take tasks",
			principal:     employer,
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Already assigned",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(30), Status: domain.TaskStatusAssigned,
				}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:      "Not published",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusDraft,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:      "Lost the assign race",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusPublished,
				}, nil)
				repo.EXPECT().Assign(gomock.Any(), 1, 20).Return(nil, nil)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			task, err := service.Assign(context.Background(), tt.principal, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TaskStatusAssigned, task.Status)
				assert.Equal(t, 20, *task.AssigneeID)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Completed successfully",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
				repo.EXPECT().UpdateStatusFrom(gomock.Any(), 1, domain.TaskStatusAssigned, domain.TaskStatusCompleted).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:      "Only the assignee can complete",
			principal: domain.Principal{ID: 30, IsFreelancer: true},
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Employer cannot complete on the freelancer's behalf",
			principal: employer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Not in progress",
			principal: freelancer,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusCompleted,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			task, err := service.Complete(context.Background(), tt.principal, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TaskStatusCompleted, task.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Assigned task cancelled, assignee released",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned,
				}, nil)
				repo.EXPECT().Cancel(gomock.Any(), 1).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Completed tasks cannot be cancelled",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusCompleted,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "Already cancelled",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Task{
					ID: 1, EmployerID: 10, Status: domain.TaskStatusCancelled,
				}, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			task, err := service.Cancel(context.Background(), employer, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TaskStatusCancelled, task.Status)
				assert.Nil(t, task.AssigneeID)
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		task          *domain.Task
		expectedError error
	}{
		{
			name:      "Owner sees own draft",
			principal: employer,
			task:      &domain.Task{ID: 1, EmployerID: 10, Status: domain.TaskStatusDraft},
		},
		{
			name:      "Freelancer sees open published task",
			principal: freelancer,
			task:      &domain.Task{ID: 1, EmployerID: 10, Status: domain.TaskStatusPublished},
		},
		{
			name:      "Assignee sees assigned task",
			principal: freelancer,
			task:      &domain.Task{ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned},
		},
		{
			name:          "Stranger's draft is hidden as not found",
			principal:     freelancer,
			task:          &domain.Task{ID: 1, EmployerID: 10, Status: domain.TaskStatusDraft},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Other freelancer's assignment is hidden",
			principal:     domain.Principal{ID: 30, IsFreelancer: true},
			task:          &domain.Task{ID: 1, EmployerID: 10, AssigneeID: intPtr(20), Status: domain.TaskStatusAssigned},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindByID(gomock.Any(), 1).Return(tt.task, nil)

			task, err := service.GetTask(context.Background(), tt.principal, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.task, task)
			}
		})
	}
}

func TestListTasks(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Employer lists own tasks", func(t *testing.T) {
		repo.EXPECT().FindByEmployerID(gomock.Any(), 10, "draft").Return([]domain.Task{{ID: 1}}, nil)

		tasks, err := service.ListTasks(context.Background(), employer, "draft")
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("Freelancer lists own plus open tasks", func(t *testing.T) {
		repo.EXPECT().FindForFreelancer(gomock.Any(), 20, "").Return([]domain.Task{{ID: 1}, {ID: 2}}, nil)

		tasks, err := service.ListTasks(context.Background(), freelancer, "")
		assert.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestCreateTemplate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		principal     domain.Principal
		tpl           *domain.TaskTemplate
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Template created successfully",
			principal: employer,
			tpl:       &domain.TaskTemplate{Name: "Logo design", Title: "Design a logo"},
			prepareMock: func() {
				repo.EXPECT().SaveTemplate(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Freelancer cannot create templates",
			principal:     freelancer,
			tpl:           &domain.TaskTemplate{Name: "Logo design", Title: "Design a logo"},
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "Missing name",
			principal:     employer,
			tpl:           &domain.TaskTemplate{Title: "Design a logo"},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			tpl, err := service.CreateTemplate(context.Background(), tt.principal, tt.tpl)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.principal.ID, tpl.EmployerID)
			}
		})
	}
}
