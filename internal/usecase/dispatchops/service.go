package dispatchops

import (
	"context"
	"strings"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/logger"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"go.uber.org/zap"
)

// Service implements dispatch task use cases.
type Service struct {
	dispatchRepo dispatch.Repository
	now          func() time.Time
}

func NewService(dispatchRepo dispatch.Repository) *Service {
	return &Service{
		dispatchRepo: dispatchRepo,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	task := &dispatch.Task{
		PEADispatchNo:      strings.TrimSpace(req.PEADispatchNo),
		OilCompanyID:       req.OilCompanyID,
		TransporterID:      req.TransporterID,
		VehicleID:          req.VehicleID,
		DispatchDateTime:   req.DispatchDateTime,
		DispatchLocation:   utils.SanitizeString(req.DispatchLocation),
		DestinationDepotID: req.DestinationDepotID,
		ETADateTime:        req.ETADateTime,
		FuelType:           dispatch.FuelType(req.FuelType),
		DispatchedLiters:   req.DispatchedLiters,
		Status:             dispatch.StatusOnTransit,
	}

	if err := s.dispatchRepo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	logger.Info("Dispatch task created",
		zap.String("pea_dispatch_no", task.PEADispatchNo),
		zap.String("fuel_type", string(task.FuelType)),
		zap.Float64("liters", task.DispatchedLiters),
		zap.String("event", "dispatch_created"),
	)

	return s.toResponse(task), nil
}

func (s *Service) GetTask(ctx context.Context, peaDispatchNo string) (*TaskResponse, error) {
	task, err := s.dispatchRepo.GetTask(ctx, peaDispatchNo)
	if err != nil {
		return nil, err
	}

	return s.toResponse(task), nil
}

func (s *Service) ListTasks(ctx context.Context, filter *ListFilter) ([]TaskResponse, error) {
	tasks, err := s.dispatchRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	status := strings.TrimSpace(filter.Status)

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if query != "" && !strings.Contains(strings.ToLower(t.PEADispatchNo), query) {
			continue
		}
		if status != "" && status != "All" && t.Status != dispatch.Status(status) {
			continue
		}
		responses = append(responses, *s.toResponse(t))
	}

	return responses, nil
}

func (s *Service) UpdateStatus(ctx context.Context, peaDispatchNo string, req *UpdateStatusRequest) (*TaskResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	task, err := s.dispatchRepo.GetTask(ctx, peaDispatchNo)
	if err != nil {
		return nil, err
	}

	newStatus := dispatch.Status(req.Status)
	if err := dispatch.ValidateStatusTransition(task.Status, newStatus); err != nil {
		return nil, err
	}

	if err := s.dispatchRepo.UpdateTaskStatus(ctx, peaDispatchNo, newStatus); err != nil {
		return nil, err
	}

	logger.Info("Dispatch status changed",
		zap.String("pea_dispatch_no", peaDispatchNo),
		zap.String("old_status", string(task.Status)),
		zap.String("new_status", string(newStatus)),
		zap.String("reason", req.Reason),
		zap.String("event", "dispatch_status_changed"),
	)

	updated, err := s.dispatchRepo.GetTask(ctx, peaDispatchNo)
	if err != nil {
		return nil, err
	}

	return s.toResponse(updated), nil
}

func (s *Service) toResponse(task *dispatch.Task) *TaskResponse {
	now := s.now()
	return &TaskResponse{
		Task:          *task,
		StatusDetail:  dispatch.StatusDetail(now, task),
		DerivedStatus: dispatch.DeriveStatus(now, task),
	}
}
