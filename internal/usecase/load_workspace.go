package usecase

import (
	"context"
	"sync"

	"github.com/workasana/workasana/internal/domain"
)

// LoadWorkspaceInput contains the parameters for loading the workspace
// snapshot.
type LoadWorkspaceInput struct {
	// TaskCriteria is passed to the backend as query filters for the task
	// collection; the other collections are always fetched whole.
	TaskCriteria domain.Criteria
}

// LoadWorkspaceOutput contains the loaded snapshot.
type LoadWorkspaceOutput struct {
	Snapshot *domain.Snapshot
}

// LoadWorkspace is the use case for loading the per-view collection
// snapshot. The four collections are fetched concurrently and the snapshot
// is only produced once all of them settle; on any failure the caller keeps
// whatever snapshot it already had. Mutations elsewhere always trigger a
// full reload through this use case instead of patching collections in
// place, so a reload can never leave a half-merged view.
type LoadWorkspace struct {
	api domain.API
}

// NewLoadWorkspace creates a new LoadWorkspace use case.
func NewLoadWorkspace(api domain.API) *LoadWorkspace {
	return &LoadWorkspace{api: api}
}

// Execute fetches all collections and returns a fresh snapshot.
func (uc *LoadWorkspace) Execute(ctx context.Context, in LoadWorkspaceInput) (*LoadWorkspaceOutput, error) {
	snapshot := &domain.Snapshot{}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		snapshot.Tasks, errs[0] = uc.api.GetTasks(ctx, in.TaskCriteria)
	}()
	go func() {
		defer wg.Done()
		snapshot.Projects, errs[1] = uc.api.GetProjects(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Teams, errs[2] = uc.api.GetTeams(ctx)
	}()
	go func() {
		defer wg.Done()
		snapshot.Users, errs[3] = uc.api.GetUsers(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &LoadWorkspaceOutput{Snapshot: snapshot}, nil
}
