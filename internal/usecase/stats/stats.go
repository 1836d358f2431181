package stats

import (
	"context"
	"time"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/domain/stats"
	"github.com/barberia-elite/booking-api/internal/timezone"
)

const (
	popularityWindow = 7 * 24 * time.Hour
	popularityLimit  = 5
)

type GetStats struct {
	repo stats.Repository
	now  func() time.Time
}

func NewGetStats(repo stats.Repository) *GetStats {
	return &GetStats{
		repo: repo,
		now:  timezone.Now,
	}
}

// WithNow overrides the clock source.
func (uc *GetStats) WithNow(now func() time.Time) *GetStats {
	uc.now = now
	return uc
}

func (uc *GetStats) Execute(ctx context.Context) (*stats.Summary, error) {
	dayStart, dayEnd := timezone.DayBounds(uc.now())

	today, err := uc.repo.CountForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	confirmed, err := uc.repo.CountByStatus(ctx, string(domain.StatusConfirmed))
	if err != nil {
		return nil, err
	}

	cancelled, err := uc.repo.CountByStatus(ctx, string(domain.StatusCancelled))
	if err != nil {
		return nil, err
	}

	return &stats.Summary{
		Today:     today,
		Confirmed: confirmed,
		Cancelled: cancelled,
		Total:     confirmed + cancelled,
	}, nil
}

type GetDashboardStats struct {
	repo stats.Repository
	now  func() time.Time
}

func NewGetDashboardStats(repo stats.Repository) *GetDashboardStats {
	return &GetDashboardStats{
		repo: repo,
		now:  timezone.Now,
	}
}

// WithNow overrides the clock source.
func (uc *GetDashboardStats) WithNow(now func() time.Time) *GetDashboardStats {
	uc.now = now
	return uc
}

func (uc *GetDashboardStats) Execute(ctx context.Context) (*stats.Dashboard, error) {
	now := uc.now()
	dayStart, dayEnd := timezone.DayBounds(now)

	daily, err := uc.repo.DailyStats(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	since := now.Add(-popularityWindow)

	barbers, err := uc.repo.TopBarbers(ctx, since, popularityLimit)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.TopServices(ctx, since, popularityLimit)
	if err != nil {
		return nil, err
	}

	return &stats.Dashboard{
		Daily:           daily,
		PopularBarbers:  barbers,
		PopularServices: services,
		Timestamp:       now,
	}, nil
}
