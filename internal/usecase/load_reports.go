package usecase

import (
	"context"
	"sync"

	"github.com/workasana/workasana/internal/domain"
)

// LoadReportsOutput contains the derived report data for display.
type LoadReportsOutput struct {
	LastWeek []domain.DayCount   // Completed per day, oldest first
	Pending  []domain.StatusWork // Remaining work by status
	Closed   *domain.ClosedTasksReport
}

// LoadReports is the use case for the reports screen. The three report
// endpoints are fetched concurrently and shaped into chart-ready series.
type LoadReports struct {
	api   domain.ReportAPI
	clock domain.Clock
}

// NewLoadReports creates a new LoadReports use case.
func NewLoadReports(api domain.ReportAPI, clock domain.Clock) *LoadReports {
	return &LoadReports{api: api, clock: clock}
}

// Execute fetches and derives all three reports.
func (uc *LoadReports) Execute(ctx context.Context) (*LoadReportsOutput, error) {
	var (
		lastWeek *domain.LastWeekReport
		pending  *domain.PendingReport
		closed   *domain.ClosedTasksReport
	)

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		lastWeek, errs[0] = uc.api.LastWeekReport(ctx)
	}()
	go func() {
		defer wg.Done()
		pending, errs[1] = uc.api.PendingReport(ctx)
	}()
	go func() {
		defer wg.Done()
		closed, errs[2] = uc.api.ClosedTasksReport(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &LoadReportsOutput{
		LastWeek: domain.LastWeekBuckets(lastWeek, uc.clock.Now()),
		Pending:  domain.PendingByStatus(pending),
		Closed:   closed,
	}, nil
}
