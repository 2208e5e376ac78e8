package dispatch

import "context"

// Repository provides access to dispatch tasks and the weekly regional
// fuel summary fixture.
type Repository interface {
	ListTasks(ctx context.Context) ([]Task, error)
	GetTask(ctx context.Context, peaDispatchNo string) (*Task, error)
	CreateTask(ctx context.Context, task *Task) error
	UpdateTaskStatus(ctx context.Context, peaDispatchNo string, status Status) error

	ListRegionalFuelSummaries(ctx context.Context) ([]RegionFuelSummary, error)
}
