package dispatchops

import (
	"context"
	"os"
	"testing"
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/logger"
	"fuel-dispatch-monitor/internal/repository/memory"
	appErrors "fuel-dispatch-monitor/pkg/errors"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestService(t *testing.T, tasks ...dispatch.Task) *Service {
	t.Helper()
	store := memory.NewStore(memory.Fixtures{DispatchTasks: tasks})
	return NewService(store.Dispatch()).WithClock(func() time.Time { return testNow })
}

func validCreateRequest() *CreateTaskRequest {
	return &CreateTaskRequest{
		PEADispatchNo:      "PEA300",
		OilCompanyID:       "OC1",
		TransporterID:      "TR1",
		VehicleID:          "VH1",
		DispatchDateTime:   testNow.Add(-time.Hour),
		DispatchLocation:   "Addis Ababa",
		DestinationDepotID: "DP1",
		ETADateTime:        testNow.Add(8 * time.Hour),
		FuelType:           "Diesel",
		DispatchedLiters:   20000,
	}
}

func TestCreateTask(t *testing.T) {
	service := newTestService(t)

	resp, err := service.CreateTask(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, "PEA300", resp.PEADispatchNo)
	require.Equal(t, dispatch.StatusOnTransit, resp.Status)
	require.Equal(t, dispatch.StatusOnTransit, resp.DerivedStatus)
}

func TestCreateTaskValidation(t *testing.T) {
	service := newTestService(t)

	req := validCreateRequest()
	req.FuelType = "Kerosene"

	_, err := service.CreateTask(context.Background(), req)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreateTaskDuplicate(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateTask(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = service.CreateTask(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, appErrors.ErrTaskAlreadyExists)
}

func TestGetTaskNotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetTask(context.Background(), "PEA999")
	require.ErrorIs(t, err, appErrors.ErrTaskNotFound)
}

func TestListTasks(t *testing.T) {
	service := newTestService(t,
		dispatch.Task{PEADispatchNo: "PEA300", Status: dispatch.StatusOnTransit, ETADateTime: testNow.Add(time.Hour)},
		dispatch.Task{PEADispatchNo: "PEA301", Status: dispatch.StatusDelivered, ETADateTime: testNow.Add(-time.Hour)},
		dispatch.Task{PEADispatchNo: "X-42", Status: dispatch.StatusOnTransit, ETADateTime: testNow.Add(time.Hour)},
	)

	t.Run("no filter returns everything", func(t *testing.T) {
		tasks, err := service.ListTasks(context.Background(), &ListFilter{})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
	})

	t.Run("query narrows by dispatch number", func(t *testing.T) {
		tasks, err := service.ListTasks(context.Background(), &ListFilter{Query: "pea30"})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		tasks, err := service.ListTasks(context.Background(), &ListFilter{Status: "Delivered"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, "PEA301", tasks[0].PEADispatchNo)
	})

	t.Run("status All is a no-op", func(t *testing.T) {
		tasks, err := service.ListTasks(context.Background(), &ListFilter{Status: "All"})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid transition persists", func(t *testing.T) {
		service := newTestService(t, dispatch.Task{
			PEADispatchNo: "PEA300",
			Status:        dispatch.StatusOnTransit,
			ETADateTime:   testNow.Add(time.Hour),
		})

		resp, err := service.UpdateStatus(context.Background(), "PEA300", &UpdateStatusRequest{
			Status: string(dispatch.StatusExceededETA),
			Reason: "manual flag from control room",
		})
		require.NoError(t, err)
		require.Equal(t, dispatch.StatusExceededETA, resp.Status)

		got, err := service.GetTask(context.Background(), "PEA300")
		require.NoError(t, err)
		require.Equal(t, dispatch.StatusExceededETA, got.Status)
	})

	t.Run("delivered rejects further transitions", func(t *testing.T) {
		service := newTestService(t, dispatch.Task{
			PEADispatchNo: "PEA301",
			Status:        dispatch.StatusDelivered,
		})

		_, err := service.UpdateStatus(context.Background(), "PEA301", &UpdateStatusRequest{
			Status: string(dispatch.StatusOnTransit),
		})
		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, "INVALID_TRANSITION", appErr.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		service := newTestService(t)
		_, err := service.UpdateStatus(context.Background(), "PEA999", &UpdateStatusRequest{
			Status: string(dispatch.StatusDelivered),
		})
		require.ErrorIs(t, err, appErrors.ErrTaskNotFound)
	})
}
