package memory

import (
	"context"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	appErrors "fuel-dispatch-monitor/pkg/errors"
)

type dispatchRepository struct {
	store *Store
}

func (r *dispatchRepository) ListTasks(_ context.Context) ([]dispatch.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]dispatch.Task(nil), r.store.tasks...), nil
}

func (r *dispatchRepository) GetTask(_ context.Context, peaDispatchNo string) (*dispatch.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.tasksByNo[peaDispatchNo]
	if !ok {
		return nil, appErrors.ErrTaskNotFound
	}
	task := r.store.tasks[i]
	return &task, nil
}

func (r *dispatchRepository) CreateTask(_ context.Context, task *dispatch.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.tasksByNo[task.PEADispatchNo]; exists {
		return appErrors.ErrTaskAlreadyExists
	}

	r.store.tasks = append(r.store.tasks, *task)
	r.store.reindex()
	return nil
}

func (r *dispatchRepository) UpdateTaskStatus(_ context.Context, peaDispatchNo string, status dispatch.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.tasksByNo[peaDispatchNo]
	if !ok {
		return appErrors.ErrTaskNotFound
	}
	r.store.tasks[i].Status = status
	return nil
}

func (r *dispatchRepository) ListRegionalFuelSummaries(_ context.Context) ([]dispatch.RegionFuelSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]dispatch.RegionFuelSummary(nil), r.store.regionalFuel...), nil
}
