package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/dto"
	"github.com/nickolaa/konsol-pro-clone/pkg/auth"
	"github.com/nickolaa/konsol-pro-clone/pkg/utils"
)

type Service interface {
	CreateReview(ctx context.Context, principal domain.Principal, taskID, rating int, comment string) (*domain.Review, error)
	GetReviewByTask(ctx context.Context, taskID int) (*domain.Review, error)
	ListReviewsForFreelancer(ctx context.Context, freelancerID int) ([]domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
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
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrDuplicateReview):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func reviewResponse(review *domain.Review) dto.ReviewResponseDTO {
	return dto.ReviewResponseDTO{
		ID:           review.ID,
		TaskID:       review.TaskID,
		EmployerID:   review.EmployerID,
		FreelancerID: review.FreelancerID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

// CreateReview godoc
//
//	@Summary		Leave a review for a completed task
//	@Description	The employer rates the freelancer once per task, rating 1 to 5.
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		int							true	"Task ID"
//	@Param			request	body		dto.CreateReviewRequestDTO	true	"Rating and comment"
//	@Success		201		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Rating out of range"
//	@Failure		403		{object}	utils.Response	"Caller is not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task not completed or already reviewed"
//	@Router			/api/tasks/{taskID}/review [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req dto.CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), principal, taskID, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reviewResponse(review))
}

// GetReview godoc
//
//	@Summary		Get the review for a task
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		int	true	"Task ID"
//	@Success		200		{object}	dto.ReviewResponseDTO
//	@Failure		404		{object}	utils.Response	"No review for this task"
//	@Router			/api/tasks/{taskID}/review [get]
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.PrincipalFromContext(r.Context()); !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	taskID, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	review, err := h.reviewService.GetReviewByTask(r.Context(), taskID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reviewResponse(review))
}

// ListReviews godoc
//
//	@Summary		List reviews received by a freelancer
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Produce		json
//	@Param			freelancer_id	query		int	true	"Freelancer ID"
//	@Success		200				{array}		dto.ReviewResponseDTO
//	@Success		204				{object}	utils.Response	"No reviews"
//	@Failure		400				{object}	utils.Response	"Missing freelancer_id"
//	@Router			/api/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.PrincipalFromContext(r.Context()); !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	freelancerID, err := strconv.Atoi(r.URL.Query().Get("freelancer_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid freelancer_id")
		return
	}

	reviews, err := h.reviewService.ListReviewsForFreelancer(r.Context(), freelancerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(reviews) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No reviews found")
		return
	}

	response := make([]dto.ReviewResponseDTO, len(reviews))
	for i := range reviews {
		response[i] = reviewResponse(&reviews[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
