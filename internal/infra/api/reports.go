package api

import (
	"context"
	"net/http"

	"github.com/workasana/workasana/internal/domain"
)

// LastWeekReport returns tasks completed in the trailing week.
func (c *Client) LastWeekReport(ctx context.Context) (*domain.LastWeekReport, error) {
	var report domain.LastWeekReport
	if err := c.do(ctx, http.MethodGet, "/report/last-week", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// PendingReport returns unfinished tasks and their remaining work.
func (c *Client) PendingReport(ctx context.Context) (*domain.PendingReport, error) {
	var report domain.PendingReport
	if err := c.do(ctx, http.MethodGet, "/report/pending", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ClosedTasksReport returns closed-task counts grouped by team, project and
// owner.
func (c *Client) ClosedTasksReport(ctx context.Context) (*domain.ClosedTasksReport, error) {
	var report domain.ClosedTasksReport
	if err := c.do(ctx, http.MethodGet, "/report/closed-tasks", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
