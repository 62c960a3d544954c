package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "promarket.com/promarket/internal/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ListByReviewee(ctx context.Context, revieweeID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

// AverageRatingByReviewee returns 0 when the user has no reviews.
func (r *ReviewRepository) AverageRatingByReviewee(ctx context.Context, revieweeID string) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("reviewee_id = ?", revieweeID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error
	return avg, err
}

func (r *ReviewRepository) CountByReviewee(ctx context.Context, revieweeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("reviewee_id = ?", revieweeID).Count(&count).Error
	return count, err
}
