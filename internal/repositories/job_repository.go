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

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) WithTx(tx *gorm.DB) *JobRepository {
	return &JobRepository{db: tx}
}

// JobFilter carries the optional listing filters; zero values mean "not set".
type JobFilter struct {
	Search    string
	Status    constants.JobStatus
	MinBudget *float64
	MaxBudget *float64
	Location  string
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).
		Preload("Requester").Preload("AssignedTasker").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Search applies the shared five-field filter: substring over title OR
// description, status equality, inclusive budget range and a location
// substring, all ANDed together.
func (r *JobRepository) Search(ctx context.Context, filter JobFilter, limit, offset int) ([]model.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Job{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinBudget != nil {
		query = query.Where("budget >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget <= ?", *filter.MaxBudget)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// DeleteWithDependents removes a job together with its applications, reviews
// and attachments in a single transaction.
func (r *JobRepository) DeleteWithDependents(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Application{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Review{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.FileResource{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Job{}, "id = ?", id).Error
	})
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepository) CountByStatus(ctx context.Context, status constants.JobStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepository) CountByRequester(ctx context.Context, requesterID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("requester_id = ?", requesterID).Count(&count).Error
	return count, err
}

func (r *JobRepository) CountCompletedByTasker(ctx context.Context, taskerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("assigned_tasker_id = ? AND status = ?", taskerID, constants.JobCompleted).
		Count(&count).Error
	return count, err
}
