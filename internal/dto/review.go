package dto

import "time"

type CreateReviewRequestDTO struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment,omitempty" example:"Great work, on time"`
}

type ReviewResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	TaskID       int       `json:"task_id" example:"1"`
	EmployerID   int       `json:"employer_id" example:"10"`
	FreelancerID int       `json:"freelancer_id" example:"20"`
	Rating       int       `json:"rating" example:"5"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
