package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promarket.com/promarket/internal/constants"
	apperrors "promarket.com/promarket/internal/errors"
	model "promarket.com/promarket/internal/models"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) WithTx(tx *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: tx}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).Preload("Tasker").First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByJob returns every application for a job in insertion order.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Preload("Tasker").
		Where("job_id = ?", jobID).
		Order("created_at asc").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListByTasker(ctx context.Context, taskerID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Preload("Job").
		Where("tasker_id = ?", taskerID).
		Order("created_at asc").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ExistsByJobAndTasker(ctx context.Context, jobID, taskerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("job_id = ? AND tasker_id = ?", jobID, taskerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) Update(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *ApplicationRepository) CountByTasker(ctx context.Context, taskerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("tasker_id = ?", taskerID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepository) CountByTaskerAndStatus(
	ctx context.Context,
	taskerID string,
	status constants.ApplicationStatus,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("tasker_id = ? AND status = ?", taskerID, status).
		Count(&count).Error
	return count, err
}

// CountForRequesterJobs counts applications across all jobs posted by the
// given requester, any status.
func (r *ApplicationRepository) CountForRequesterJobs(ctx context.Context, requesterID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.requester_id = ?", requesterID).
		Count(&count).Error
	return count, err
}
