package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/dto"
	taskservice "github.com/nickolaa/konsol-pro-clone/internal/service/taskservice"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
	"github.com/nickolaa/konsol-pro-clone/pkg/utils"
)

type Service interface {
	CreateTask(ctx context.Context, principal domain.Principal, params taskservice.CreateTaskParams) (*domain.Task, error)
	UpdateTask(ctx context.Context, principal domain.Principal, taskID int, params taskservice.UpdateTaskParams) (*domain.Task, error)
	Publish(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error)
	Assign(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error)
	Complete(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error)
	Cancel(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error)
	GetTask(ctx context.Context, principal domain.Principal, taskID int) (*domain.Task, error)
	ListTasks(ctx context.Context, principal domain.Principal, status string) ([]domain.Task, error)
	CreateTemplate(ctx context.Context, principal domain.Principal, tpl *domain.TaskTemplate) (*domain.TaskTemplate, error)
	ListTemplates(ctx context.Context, principal domain.Principal) ([]domain.TaskTemplate, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func taskResponse(task *domain.Task) dto.TaskResponseDTO {
	return dto.TaskResponseDTO{
		ID:          task.ID,
		EmployerID:  task.EmployerID,
		AssigneeID:  task.AssigneeID,
		Title:       task.Title,
		Description: task.Description,
		Amount:      task.Amount,
		Status:      task.Status,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func taskIDFromURL(r *http.Request) (int, bool) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	return taskID, err == nil
}

// CreateTask godoc
//
//	@Summary		Create a task draft
//	@Description	Create a new task in draft status, optionally prefilled from a template owned by the caller.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTaskRequestDTO	true	"Task fields"
//	@Success		201		{object}	dto.TaskResponseDTO			"Created draft"
//	@Failure		400		{object}	utils.Response				"Missing required fields or non-positive amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Caller is not an employer"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), principal, taskservice.CreateTaskParams{
		TemplateID:  req.TemplateID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, taskResponse(task))
}

// UpdateTask godoc
//
//	@Summary		Update a draft task
//	@Description	Edit title, description, amount or deadline of an unpublished task.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		int							true	"Task ID"
//	@Param			request	body		dto.UpdateTaskRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task already published"
//	@Router			/api/tasks/{taskID} [patch]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, ok := taskIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.UpdateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), principal, taskID, taskservice.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskResponse(task))
}

// Publish godoc
//
//	@Summary		Publish a task
//	@Description	Move a draft to published, making it visible to freelancers.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Required fields missing"
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task is not a draft"
//	@Router			/api/tasks/{taskID}/publish [post]
func (h *TaskHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.Publish)
}

// Assign godoc
//
//	@Summary		Take a published task
//	@Description	Assign the calling freelancer to an open published task. Exactly one of several concurrent callers wins.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not a freelancer"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task already assigned"
//	@Router			/api/tasks/{taskID}/assign [post]
func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.Assign)
}

// Complete godoc
//
//	@Summary		Complete an assigned task
//	@Description	The assigned freelancer marks the work as done.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not the assignee"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task is not in progress"
//	@Router			/api/tasks/{taskID}/complete [post]
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.Complete)
}

// Cancel godoc
//
//	@Summary		Cancel a task
//	@Description	The employer cancels any task that is not yet completed or cancelled.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task already finished"
//	@Router			/api/tasks/{taskID}/cancel [post]
func (h *TaskHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.taskService.Cancel)
}

func (h *TaskHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, domain.Principal, int) (*domain.Task, error)) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, ok := taskIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := fn(r.Context(), principal, taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskResponse(task))
}

// GetTask godoc
//
//	@Summary		Get task details
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		404		{object}	utils.Response	"Task not found or not visible to the caller"
//	@Router			/api/tasks/{taskID} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, ok := taskIDFromURL(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), principal, taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskResponse(task))
}

// ListTasks godoc
//
//	@Summary		List tasks visible to the caller
//	@Description	Employers see their own tasks, freelancers see theirs plus open published tasks. Optional status filter.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		dto.TaskResponseDTO
//	@Success		204		{object}	utils.Response	"No tasks"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), principal, r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(tasks) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No tasks found")
		return
	}

	response := make([]dto.TaskResponseDTO, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateTemplate godoc
//
//	@Summary		Create a task template
//	@Tags			Templates
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTemplateRequestDTO	true	"Template fields"
//	@Success		201		{object}	dto.TemplateResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing name or title"
//	@Failure		403		{object}	utils.Response	"Caller is not an employer"
//	@Router			/api/task-templates [post]
func (h *TaskHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateTemplateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tpl, err := h.taskService.CreateTemplate(r.Context(), principal, &domain.TaskTemplate{
		Name:          req.Name,
		Title:         req.Title,
		Description:   req.Description,
		DefaultAmount: req.DefaultAmount,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TemplateResponseDTO{
		ID:            tpl.ID,
		Name:          tpl.Name,
		Title:         tpl.Title,
		Description:   tpl.Description,
		DefaultAmount: tpl.DefaultAmount,
		CreatedAt:     tpl.CreatedAt,
	})
}

// ListTemplates godoc
//
//	@Summary		List the caller's task templates
//	@Tags			Templates
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TemplateResponseDTO
//	@Success		204	{object}	utils.Response	"No templates"
//	@Failure		403	{object}	utils.Response	"Caller is not an employer"
//	@Router			/api/task-templates [get]
func (h *TaskHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	templates, err := h.taskService.ListTemplates(r.Context(), principal)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(templates) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No templates found")
		return
	}

	response := make([]dto.TemplateResponseDTO, len(templates))
	for i, tpl := range templates {
		response[i] = dto.TemplateResponseDTO{
			ID:            tpl.ID,
			Name:          tpl.Name,
			Title:         tpl.Title,
			Description:   tpl.Description,
			DefaultAmount: tpl.DefaultAmount,
			CreatedAt:     tpl.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
