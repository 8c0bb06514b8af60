package reviewrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/domain"
	"github.com/nickolaa/konsol-pro-clone/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateReview persists the review; the unique index on task_id enforces the
// one-review-per-task rule under concurrency.
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) error {
	query := `
        INSERT INTO reviews (task_id, employer_id, freelancer_id, rating, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		review.TaskID, review.EmployerID, review.FreelancerID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "reviews_task_key") {
			return domain.ErrDuplicateReview
		}
		zap.L().Error("can't save review", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTaskID(ctx context.Context, taskID int) (*domain.Review, error) {
	query := `
        SELECT id, task_id, employer_id, freelancer_id, rating, comment, created_at
        FROM reviews
        WHERE task_id = $1
    `
	var review domain.Review
	err := r.db.QueryRow(ctx, query, taskID).
		Scan(&review.ID, &review.TaskID, &review.EmployerID, &review.FreelancerID, &review.Rating, &review.Comment, &review.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find review", zap.Error(err))
		return nil, err
	}
	return &review, nil
}

func (r *Repository) FindByFreelancerID(ctx context.Context, freelancerID int) ([]domain.Review, error) {
	query := `
        SELECT id, task_id, employer_id, freelancer_id, rating, comment, created_at
        FROM reviews
        WHERE freelancer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, freelancerID)
	if err != nil {
		zap.L().Error("can't get reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.TaskID, &review.EmployerID, &review.FreelancerID, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan review row", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
