package services

import (
	"context"
	"math"
	"time"

	"promarket.com/promarket/internal/constants"
	model "promarket.com/promarket/internal/models"
	repository "promarket.com/promarket/internal/repositories"
)

// DashboardService computes the per-role rollups. Every number is read
// fresh from the store on each request; nothing is cached.
type DashboardService struct {
	users    *repository.UserRepository
	jobs     *repository.JobRepository
	apps     *repository.ApplicationRepository
	reviews  *repository.ReviewRepository
	payments *repository.PaymentRepository
}

func NewDashboardService(
	users *repository.UserRepository,
	jobs *repository.JobRepository,
	apps *repository.ApplicationRepository,
	reviews *repository.ReviewRepository,
	payments *repository.PaymentRepository,
) *DashboardService {
	return &DashboardService{
		users:    users,
		jobs:     jobs,
		apps:     apps,
		reviews:  reviews,
		payments: payments,
	}
}

type RequesterDashboard struct {
	TotalJobs          int64   `json:"totalJobs"`
	ActiveApplications int64   `json:"activeApplications"`
	TotalSpent         float64 `json:"totalSpent"`
	OpenJobs           int64   `json:"openJobs"`
	InProgressJobs     int64   `json:"inProgressJobs"`
	CompletedJobs      int64   `json:"completedJobs"`
	CancelledJobs      int64   `json:"cancelledJobs"`
	AverageRating      float64 `json:"averageRating"`
}

// Requester mixes personal numbers (totalJobs, activeApplications,
// totalSpent, averageRating) with marketplace-wide per-status job counts.
func (s *DashboardService) Requester(ctx context.Context, user *model.User) (*RequesterDashboard, error) {
	d := &RequesterDashboard{}
	var err error

	if d.TotalJobs, err = s.jobs.CountByRequester(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.ActiveApplications, err = s.apps.CountForRequesterJobs(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.TotalSpent, err = s.payments.TotalPaidBy(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.OpenJobs, err = s.jobs.CountByStatus(ctx, constants.JobOpen); err != nil {
		return nil, err
	}
	if d.InProgressJobs, err = s.jobs.CountByStatus(ctx, constants.JobInProgress); err != nil {
		return nil, err
	}
	if d.CompletedJobs, err = s.jobs.CountByStatus(ctx, constants.JobCompleted); err != nil {
		return nil, err
	}
	if d.CancelledJobs, err = s.jobs.CountByStatus(ctx, constants.JobCancelled); err != nil {
		return nil, err
	}
	if d.AverageRating, err = s.averageRating(ctx, user.ID); err != nil {
		return nil, err
	}
	return d, nil
}

type TaskerDashboard struct {
	TotalApplications    int64   `json:"totalApplications"`
	PendingApplications  int64   `json:"pendingApplications"`
	AcceptedApplications int64   `json:"acceptedApplications"`
	RejectedApplications int64   `json:"rejectedApplications"`
	TotalEarned          float64 `json:"totalEarned"`
	CompletedJobs        int64   `json:"completedJobs"`
	AverageRating        float64 `json:"averageRating"`
}

func (s *DashboardService) Tasker(ctx context.Context, user *model.User) (*TaskerDashboard, error) {
	d := &TaskerDashboard{}
	var err error

	if d.TotalApplications, err = s.apps.CountByTasker(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.PendingApplications, err = s.apps.CountByTaskerAndStatus(ctx, user.ID, constants.ApplicationPending); err != nil {
		return nil, err
	}
	if d.AcceptedApplications, err = s.apps.CountByTaskerAndStatus(ctx, user.ID, constants.ApplicationAccepted); err != nil {
		return nil, err
	}
	if d.RejectedApplications, err = s.apps.CountByTaskerAndStatus(ctx, user.ID, constants.ApplicationRejected); err != nil {
		return nil, err
	}
	if d.TotalEarned, err = s.payments.TotalReceivedBy(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.CompletedJobs, err = s.jobs.CountCompletedByTasker(ctx, user.ID); err != nil {
		return nil, err
	}
	if d.AverageRating, err = s.averageRating(ctx, user.ID); err != nil {
		return nil, err
	}
	return d, nil
}

type AdminDashboard struct {
	TotalUsers      int64   `json:"totalUsers"`
	RequesterCount  int64   `json:"requesterCount"`
	TaskerCount     int64   `json:"taskerCount"`
	AdminCount      int64   `json:"adminCount"`
	TotalJobs       int64   `json:"totalJobs"`
	OpenJobs        int64   `json:"openJobs"`
	InProgressJobs  int64   `json:"inProgressJobs"`
	CompletedJobs   int64   `json:"completedJobs"`
	CancelledJobs   int64   `json:"cancelledJobs"`
	PlatformRevenue float64 `json:"platformRevenue"`
	GrowthRate      float64 `json:"growthRate"`
}

func (s *DashboardService) Admin(ctx context.Context) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	var err error

	if d.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if d.RequesterCount, err = s.users.CountByRole(ctx, constants.RoleRequester); err != nil {
		return nil, err
	}
	if d.TaskerCount, err = s.users.CountByRole(ctx, constants.RoleTasker); err != nil {
		return nil, err
	}
	if d.AdminCount, err = s.users.CountByRole(ctx, constants.RoleAdmin); err != nil {
		return nil, err
	}
	if d.TotalJobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if d.OpenJobs, err = s.jobs.CountByStatus(ctx, constants.JobOpen); err != nil {
		return nil, err
	}
	if d.InProgressJobs, err = s.jobs.CountByStatus(ctx, constants.JobInProgress); err != nil {
		return nil, err
	}
	if d.CompletedJobs, err = s.jobs.CountByStatus(ctx, constants.JobCompleted); err != nil {
		return nil, err
	}
	if d.CancelledJobs, err = s.jobs.CountByStatus(ctx, constants.JobCancelled); err != nil {
		return nil, err
	}
	if d.PlatformRevenue, err = s.payments.PlatformRevenue(ctx); err != nil {
		return nil, err
	}
	if d.GrowthRate, err = s.growthRate(ctx, d.TotalUsers); err != nil {
		return nil, err
	}
	return d, nil
}

type Analytics struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalJobs       int64   `json:"totalJobs"`
	PlatformRevenue float64 `json:"platformRevenue"`
	GrowthRate      float64 `json:"growthRate"`
}

func (s *DashboardService) Analytics(ctx context.Context) (*Analytics, error) {
	a := &Analytics{}
	var err error

	if a.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if a.TotalJobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if a.PlatformRevenue, err = s.payments.PlatformRevenue(ctx); err != nil {
		return nil, err
	}
	if a.GrowthRate, err = s.growthRate(ctx, a.TotalUsers); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *DashboardService) averageRating(ctx context.Context, userID string) (float64, error) {
	avg, err := s.reviews.AverageRatingByReviewee(ctx, userID)
	if err != nil {
		return 0, err
	}
	return math.Round(avg*10) / 10, nil
}

// growthRate is the share of the user base registered in the last 30 days,
// as a percentage.
func (s *DashboardService) growthRate(ctx context.Context, totalUsers int64) (float64, error) {
	if totalUsers == 0 {
		return 0, nil
	}
	recent, err := s.users.CountCreatedSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return 0, err
	}
	return math.Round(float64(recent)/float64(totalUsers)*1000) / 10, nil
}
