package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"promarket.com/promarket/internal/audit"
	"promarket.com/promarket/internal/constants"
	apperrors "promarket.com/promarket/internal/errors"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
)

// JobService owns the job catalog and the application workflow. Every
// mutation touching more than one row runs inside a single transaction.
type JobService struct {
	db             *gorm.DB
	jobs           *repository.JobRepository
	apps           *repository.ApplicationRepository
	users          *repository.UserRepository
	payments       *repository.PaymentRepository
	reviews        *repository.ReviewRepository
	auditSink      audit.Sink
	logger         *zap.Logger
	commissionRate float64
}

func NewJobService(
	db *gorm.DB,
	jobs *repository.JobRepository,
	apps *repository.ApplicationRepository,
	users *repository.UserRepository,
	payments *repository.PaymentRepository,
	reviews *repository.ReviewRepository,
	auditSink audit.Sink,
	logger *zap.Logger,
	commissionRate float64,
) *JobService {
	return &JobService{
		db:             db,
		jobs:           jobs,
		apps:           apps,
		users:          users,
		payments:       payments,
		reviews:        reviews,
		auditSink:      auditSink,
		logger:         logger,
		commissionRate: commissionRate,
	}
}

// JobSpec carries the caller-editable job fields.
type JobSpec struct {
	Title       string
	Description string
	Budget      float64
	Deadline    time.Time
	Location    string
	Skills      []string
}

func (s *JobService) CreateJob(ctx context.Context, spec JobSpec, requesterID string) (*model.Job, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	job := &model.Job{
		Title:       spec.Title,
		Description: spec.Description,
		Budget:      round2(spec.Budget),
		Deadline:    spec.Deadline,
		Location:    spec.Location,
		Skills:      spec.Skills,
		Status:      constants.JobOpen,
		RequesterID: requester.ID,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		zap.String("job_id", job.ID),
		zap.String("requester_id", requester.ID),
	)
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) ListJobs(ctx context.Context, filter repository.JobFilter, limit, offset int) ([]model.Job, int64, error) {
	return s.jobs.Search(ctx, filter, limit, offset)
}

// UpdateJob overwrites the caller-editable fields and never touches status,
// requester or assignment. Only the owning requester or an admin may update.
func (s *JobService) UpdateJob(ctx context.Context, id string, spec JobSpec, caller *model.User) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageJob(job, caller) {
		return nil, apperrors.ErrForbidden
	}

	job.Title = spec.Title
	job.Description = spec.Description
	job.Budget = round2(spec.Budget)
	job.Deadline = spec.Deadline
	job.Location = spec.Location
	job.Skills = spec.Skills

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob hard-deletes a job and cascades to its applications, reviews
// and attachments.
func (s *JobService) DeleteJob(ctx context.Context, id string, caller *model.User) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageJob(job, caller) {
		return apperrors.ErrForbidden
	}

	if err := s.jobs.DeleteWithDependents(ctx, id); err != nil {
		return err
	}

	_ = s.auditSink.Record(ctx, audit.Event{
		Action:       "job.delete",
		ResourceID:   id,
		ResourceType: "job",
		ActorID:      caller.ID,
		Timestamp:    time.Now().UTC(),
	})

	s.logger.Info("job deleted", zap.String("job_id", id), zap.String("actor_id", caller.ID))
	return nil
}

// Apply files a PENDING proposal. A tasker may apply once per job; applying
// to a non-open job stays allowed, the proposal just can never be accepted
// while the job is not open.
func (s *JobService) Apply(
	ctx context.Context,
	jobID, taskerID string,
	proposal string,
	proposedAmount float64,
	proposedDeadline *time.Time,
) (*model.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	tasker, err := s.users.FindByID(ctx, taskerID)
	if err != nil {
		return nil, err
	}

	var app *model.Application
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		apps := s.apps.WithTx(tx)

		exists, err := apps.ExistsByJobAndTasker(ctx, job.ID, tasker.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrAlreadyApplied
		}

		app = &model.Application{
			Proposal:         proposal,
			ProposedAmount:   round2(proposedAmount),
			ProposedDeadline: proposedDeadline,
			Status:           constants.ApplicationPending,
			JobID:            job.ID,
			TaskerID:         tasker.ID,
		}
		return apps.Create(ctx, app)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application filed",
		zap.String("application_id", app.ID),
		zap.String("job_id", job.ID),
		zap.String("tasker_id", tasker.ID),
	)
	return app, nil
}

func (s *JobService) ListApplications(ctx context.Context, jobID string) ([]model.Application, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(ctx, jobID)
}

func (s *JobService) MyApplications(ctx context.Context, taskerID string) ([]model.Application, error) {
	return s.apps.ListByTasker(ctx, taskerID)
}

// AcceptApplication moves one PENDING application to ACCEPTED and, in the
// same transaction, assigns the tasker and moves the job to IN_PROGRESS.
// The job must still be OPEN: a second accept cannot silently reassign an
// already-running job.
func (s *JobService) AcceptApplication(ctx context.Context, jobID, appID string, caller *model.User) (*model.Application, error) {
	var accepted *model.Application

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobs := s.jobs.WithTx(tx)
		apps := s.apps.WithTx(tx)

		job, err := jobs.FindByID(ctx, jobID)
		if err != nil {
			return err
		}
		if !canManageJob(job, caller) {
			return apperrors.ErrForbidden
		}
		if !job.IsOpen() {
			return apperrors.ErrJobNotOpen
		}

		app, err := apps.FindByID(ctx, appID)
		if err != nil {
			return err
		}
		if app.JobID != job.ID {
			return apperrors.ErrApplicationNotFound
		}
		if !app.IsPending() {
			return apperrors.ErrApplicationNotPending
		}

		app.Status = constants.ApplicationAccepted
		if err := apps.Update(ctx, app); err != nil {
			return err
		}

		taskerID := app.TaskerID
		job.AssignedTaskerID = &taskerID
		job.Status = constants.JobInProgress
		if err := jobs.Update(ctx, job); err != nil {
			return err
		}

		accepted = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application accepted",
		zap.String("application_id", accepted.ID),
		zap.String("job_id", jobID),
		zap.String("tasker_id", accepted.TaskerID),
	)
	return accepted, nil
}

// RejectApplication marks a PENDING application REJECTED and never touches
// the job.
func (s *JobService) RejectApplication(ctx context.Context, jobID, appID string, caller *model.User) (*model.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canManageJob(job, caller) {
		return nil, apperrors.ErrForbidden
	}

	app, err := s.apps.FindByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.JobID != job.ID {
		return nil, apperrors.ErrApplicationNotFound
	}
	if !app.IsPending() {
		return nil, apperrors.ErrApplicationNotPending
	}

	app.Status = constants.ApplicationRejected
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// WithdrawApplication lets a tasker retract their own PENDING proposal.
func (s *JobService) WithdrawApplication(ctx context.Context, appID, taskerID string) (*model.Application, error) {
	app, err := s.apps.FindByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.TaskerID != taskerID {
		return nil, apperrors.ErrForbidden
	}
	if !app.IsPending() {
		return nil, apperrors.ErrApplicationNotPending
	}

	app.Status = constants.ApplicationWithdrawn
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// CompleteJob moves an IN_PROGRESS job to COMPLETED, stamps completedAt and
// writes the payment ledger rows in the same transaction: the full budget
// from requester to tasker plus the platform commission.
func (s *JobService) CompleteJob(ctx context.Context, jobID string, caller *model.User) (*model.Job, error) {
	var completed *model.Job

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobs := s.jobs.WithTx(tx)
		payments := s.payments.WithTx(tx)

		job, err := jobs.FindByID(ctx, jobID)
		if err != nil {
			return err
		}
		if !canManageJob(job, caller) {
			return apperrors.ErrForbidden
		}
		if !job.IsInProgress() {
			return apperrors.ErrJobNotInProgress
		}

		now := time.Now().UTC()
		job.Status = constants.JobCompleted
		job.CompletedAt = &now
		if err := jobs.Update(ctx, job); err != nil {
			return err
		}

		jobRef := job.ID
		payment := &model.PaymentTransaction{
			Amount:      job.Budget,
			Status:      constants.PaymentCompleted,
			Type:        constants.PaymentTypePayment,
			PayerID:     job.RequesterID,
			PayeeID:     job.AssignedTaskerID,
			JobID:       &jobRef,
			ProcessedAt: &now,
		}
		if err := payments.Create(ctx, payment); err != nil {
			return err
		}

		commission := &model.PaymentTransaction{
			Amount:      round2(job.Budget * s.commissionRate),
			Status:      constants.PaymentCompleted,
			Type:        constants.PaymentTypeCommission,
			PayerID:     job.RequesterID,
			JobID:       &jobRef,
			ProcessedAt: &now,
		}
		if err := payments.Create(ctx, commission); err != nil {
			return err
		}

		completed = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("job completed",
		zap.String("job_id", completed.ID),
		zap.Float64("budget", completed.Budget),
	)
	return completed, nil
}

// CreateReview attaches a rating to a completed job.
func (s *JobService) CreateReview(
	ctx context.Context,
	jobID string,
	reviewer *model.User,
	revieweeID string,
	rating int,
	comment string,
) (*model.Review, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsCompleted() {
		return nil, apperrors.ErrJobNotCompleted
	}
	if _, err := s.users.FindByID(ctx, revieweeID); err != nil {
		return nil, err
	}

	jobRef := job.ID
	review := &model.Review{
		Rating:     rating,
		Comment:    comment,
		ReviewerID: reviewer.ID,
		RevieweeID: revieweeID,
		JobID:      &jobRef,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ReviewSummary is a user's public review feed with its rollup numbers.
type ReviewSummary struct {
	Reviews       []model.Review `json:"reviews"`
	TotalReviews  int64          `json:"totalReviews"`
	AverageRating float64        `json:"averageRating"`
}

func (s *JobService) UserReviews(ctx context.Context, userID string) (*ReviewSummary, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	summary := &ReviewSummary{}
	var err error
	if summary.Reviews, err = s.reviews.ListByReviewee(ctx, userID); err != nil {
		return nil, err
	}
	if summary.TotalReviews, err = s.reviews.CountByReviewee(ctx, userID); err != nil {
		return nil, err
	}
	if summary.AverageRating, err = s.reviews.AverageRatingByReviewee(ctx, userID); err != nil {
		return nil, err
	}
	return summary, nil
}

func canManageJob(job *model.Job, caller *model.User) bool {
	return caller.IsAdmin() || job.RequesterID == caller.ID
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
