package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/dto"
	taskservice "github.com/nickolaa/konsol-pro-clone/internal/service/taskservice"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
)

func NewMock(t *testing.T) (*TaskHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var employer = domain.Principal{ID: 10, IsEmployer: true}

func authed(r *http.Request, principal domain.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.PrincipalKey, principal))
}

func withTaskID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taskID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateTaskHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Draft created",
			body: `{"title":"Logo design","description":"Vector logo","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateTask(gomock.Any(), employer, taskservice.CreateTaskParams{
						Title:       "Logo design",
						Description: "Vector logo",
						Amount:      5000,
					}).
					Return(&domain.Task{
						ID: 1, EmployerID: 10, Title: "Logo design",
						Description: "Vector logo", Amount: 5000, Status: domain.TaskStatusDraft,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          "not json",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Missing title",
			body: `{"description":"Vector logo","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateTask(gomock.Any(), employer, gomock.Any()).
					Return(nil, domain.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Freelancer cannot create tasks",
			body: `{"title":"Logo design","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateTask(gomock.Any(), employer, gomock.Any()).
					Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Internal server error",
			body: `{"title":"Logo design","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateTask(gomock.Any(), employer, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(tt.body)), employer)
			w := httptest.NewRecorder()

			handler.CreateTask(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.TaskResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.TaskStatusDraft, body.Status)
			}
		})
	}
}

func TestCreateTaskHandlerUnauthorized(t *testing.T) {
	handler, _ := NewMock(t)

	r := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()

	handler.CreateTask(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestUpdateTaskHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		taskID        string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Draft updated",
			taskID: "1",
			body:   `{"amount":6000}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateTask(gomock.Any(), employer, 1, gomock.Any()).
					Return(&domain.Task{ID: 1, EmployerID: 10, Amount: 6000, Status: domain.TaskStatusDraft}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid task id",
			taskID:        "abc",
			body:          `{"amount":6000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid task id",
		},
		{
			name:   "Published task is immutable",
			taskID: "1",
			body:   `{"amount":6000}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateTask(gomock.Any(), employer, 1, gomock.Any()).
					Return(nil, domain.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Task not found",
			taskID: "1",
			body:   `{"amount":6000}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateTask(gomock.Any(), employer, 1, gomock.Any()).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/api/tasks/"+tt.taskID, bytes.NewBufferString(tt.body))
			r = authed(withTaskID(r, tt.taskID), employer)
			w := httptest.NewRecorder()

			handler.UpdateTask(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestTransitionHandlers(t *testing.T) {
	handler, service := NewMock(t)

	published := &domain.Task{ID: 1, EmployerID: 10, Status: domain.TaskStatusPublished}

	tests := []struct {
		name          string
		call          func(w http.ResponseWriter, r *http.Request)
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Publish succeeds",
			call: handler.Publish,
			prepareMock: func() {
				service.EXPECT().Publish(gomock.Any(), employer, 1).Return(published, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Publish from non-draft state",
			call: handler.Publish,
			prepareMock: func() {
				service.EXPECT().Publish(gomock.Any(), employer, 1).Return(nil, domain.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Assign race lost",
			call: handler.Assign,
			prepareMock: func() {
				service.EXPECT().Assign(gomock.Any(), employer, 1).Return(nil, domain.ErrConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Complete by non-assignee",
			call: handler.Complete,
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), employer, 1).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Cancel succeeds",
			call: handler.Cancel,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), employer, 1).
					Return(&domain.Task{ID: 1, EmployerID: 10, Status: domain.TaskStatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Cancel missing task",
			call: handler.Cancel,
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), employer, 1).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/tasks/1/transition", nil)
			r = authed(withTaskID(r, "1"), employer)
			w := httptest.NewRecorder()

			tt.call(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetTaskHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Task returned", func(t *testing.T) {
		service.EXPECT().
			GetTask(gomock.Any(), employer, 1).
			Return(&domain.Task{ID: 1, EmployerID: 10, Title: "Logo design", Status: domain.TaskStatusPublished}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil)
		r = authed(withTaskID(r, "1"), employer)
		w := httptest.NewRecorder()

		handler.GetTask(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.TaskResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "Logo design", body.Title)
	})

	t.Run("Hidden task looks absent", func(t *testing.T) {
		service.EXPECT().GetTask(gomock.Any(), employer, 1).Return(nil, domain.ErrNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil)
		r = authed(withTaskID(r, "1"), employer)
		w := httptest.NewRecorder()

		handler.GetTask(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListTasksHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		status        string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Tasks listed",
			url:  "/api/tasks",
			prepareMock: func() {
				service.EXPECT().
					ListTasks(gomock.Any(), employer, "").
					Return([]domain.Task{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Status filter forwarded",
			url:  "/api/tasks?status=published",
			prepareMock: func() {
				service.EXPECT().
					ListTasks(gomock.Any(), employer, "published").
					Return([]domain.Task{{ID: 1, Status: domain.TaskStatusPublished}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "No tasks",
			url:  "/api/tasks",
			prepareMock: func() {
				service.EXPECT().ListTasks(gomock.Any(), employer, "").Return(nil, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No tasks found",
		},
		{
			name: "Internal server error",
			url:  "/api/tasks",
			prepareMock: func() {
				service.EXPECT().ListTasks(gomock.Any(), employer, "").Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodGet, tt.url, nil), employer)
			w := httptest.NewRecorder()

			handler.ListTasks(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.TaskResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestCreateTemplateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Template created", func(t *testing.T) {
		service.EXPECT().
			CreateTemplate(gomock.Any(), employer, gomock.Any()).
			Return(&domain.TaskTemplate{ID: 3, Name: "Design brief", Title: "Logo design", DefaultAmount: 5000}, nil)

		body := `{"name":"Design brief","title":"Logo design","default_amount":5000}`
		r := authed(httptest.NewRequest(http.MethodPost, "/api/task-templates", bytes.NewBufferString(body)), employer)
		w := httptest.NewRecorder()

		handler.CreateTemplate(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.TemplateResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, 3, resp.ID)
	})

	t.Run("Missing name", func(t *testing.T) {
		service.EXPECT().
			CreateTemplate(gomock.Any(), employer, gomock.Any()).
			Return(nil, domain.ErrValidation)

		r := authed(httptest.NewRequest(http.MethodPost, "/api/task-templates", bytes.NewBufferString(`{"title":"Logo design"}`)), employer)
		w := httptest.NewRecorder()

		handler.CreateTemplate(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTemplatesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Templates listed", func(t *testing.T) {
		service.EXPECT().
			ListTemplates(gomock.Any(), employer).
			Return([]domain.TaskTemplate{{ID: 3, Name: "Design brief"}}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/task-templates", nil), employer)
		w := httptest.NewRecorder()

		handler.ListTemplates(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No templates", func(t *testing.T) {
		service.EXPECT().ListTemplates(gomock.Any(), employer).Return(nil, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/task-templates", nil), employer)
		w := httptest.NewRecorder()

		handler.ListTemplates(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Body.String(), "No templates found")
	})
}
