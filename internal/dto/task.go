package dto

import "time"

type CreateTaskRequestDTO struct {
	TemplateID  *int       `json:"template_id,omitempty" example:"3"`
	Title       string     `json:"title" example:"Logo design"`
	Description string     `json:"description" example:"Design a logo for a coffee shop"`
	Amount      float64    `json:"amount" example:"5000"`
	Deadline    *time.Time `json:"deadline,omitempty" example:"2026-10-01T00:00:00Z"`
}

type UpdateTaskRequestDTO struct {
	Title       *string    `json:"title,omitempty" example:"Logo design v2"`
	Description *string    `json:"description,omitempty"`
	Amount      *float64   `json:"amount,omitempty" example:"6000"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type TaskResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	EmployerID  int        `json:"employer_id" example:"10"`
	AssigneeID  *int       `json:"assignee_id,omitempty" example:"20"`
	Title       string     `json:"title" example:"Logo design"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount" example:"5000"`
	Status      string     `json:"status" example:"published"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateTemplateRequestDTO struct {
	Name          string  `json:"name" example:"Design brief"`
	Title         string  `json:"title" example:"Logo design"`
	Description   string  `json:"description"`
	DefaultAmount float64 `json:"default_amount" example:"5000"`
}

type TemplateResponseDTO struct {
	ID            int       `json:"id" example:"3"`
	Name          string    `json:"name" example:"Design brief"`
	Title         string    `json:"title" example:"Logo design"`
	Description   string    `json:"description"`
	DefaultAmount float64   `json:"default_amount" example:"5000"`
	CreatedAt     time.Time `json:"created_at"`
}
