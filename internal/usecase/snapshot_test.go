package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_dashboards/internal/domain/entities"
	"taller_dashboards/internal/usecase/interfaces"
	mock_interfaces "taller_dashboards/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

// testLoader builds a loader with a zero retry delay so tests don't sleep.
func testLoader(api interfaces.IWorkshopAPI) (*SnapshotLoader, *logrustest.Hook) {
	log, hook := logrustest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewSnapshotLoader(api, NewFetchRetryPolicy(0), nil, log), hook
}

func expectEmptyExcept(t *testing.T, api *mock_interfaces.MockIWorkshopAPI, skip Resource) {
	t.Helper()
	if skip != ResourceClients {
		api.EXPECT().ListClients(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourceWorkOrders {
		api.EXPECT().ListWorkOrders(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourceMotorcycles {
		api.EXPECT().ListMotorcycles(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourcePayments {
		api.EXPECT().ListPayments(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourceServices {
		api.EXPECT().ListServices(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourceParts {
		api.EXPECT().ListParts(gomock.Any()).Return(nil, nil).AnyTimes()
	}
	if skip != ResourceUsers {
		api.EXPECT().ListUsers(gomock.Any()).Return(nil, nil).AnyTimes()
	}
}

func TestSnapshotLoader_Load(t *testing.T) {
	t.Run("forbidden resource is retried exactly once then degraded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)
		expectEmptyExcept(t, api, ResourceClients)

		calls := 0
		api.EXPECT().ListClients(gomock.Any()).Times(2).DoAndReturn(
			func(context.Context) ([]entities.Client, error) {
				calls++
				return nil, interfaces.ErrForbidden
			},
		)

		loader, _ := testLoader(api)
		snap := loader.Load(context.Background())

		if calls != 2 {
			t.Fatalf("expected exactly 2 calls to clients, got %d", calls)
		}
		if len(snap.Clients) != 0 {
			t.Fatalf("expected empty clients collection")
		}
		if len(snap.Degraded) != 1 || snap.Degraded[0] != "clients" {
			t.Fatalf("expected clients degraded, got %v", snap.Degraded)
		}
	})

	t.Run("transient failure degrades without retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)
		expectEmptyExcept(t, api, ResourcePayments)

		api.EXPECT().ListPayments(gomock.Any()).Times(1).Return(nil, errors.New("connection refused"))

		loader, hook := testLoader(api)
		snap := loader.Load(context.Background())

		if len(snap.Degraded) != 1 || snap.Degraded[0] != "payments" {
			t.Fatalf("expected only payments degraded, got %v", snap.Degraded)
		}
		found := false
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel && e.Data["resource"] == ResourcePayments {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a degradation warning for payments")
		}
	})

	t.Run("one failing resource does not block the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)
		expectEmptyExcept(t, api, ResourceWorkOrders)

		api.EXPECT().ListWorkOrders(gomock.Any()).Return(nil, errors.New("boom"))

		loader, _ := testLoader(api)
		snap := loader.Load(context.Background(), ResourceWorkOrders, ResourceClients)

		if len(snap.Degraded) != 1 || snap.Degraded[0] != "work-orders" {
			t.Fatalf("expected work-orders degraded only, got %v", snap.Degraded)
		}
		if snap.Clients == nil || snap.Orders == nil {
			t.Fatalf("snapshot must be fully populated")
		}
	})

	t.Run("successful load is never partial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)
		expectEmptyExcept(t, api, ResourceWorkOrders)
		api.EXPECT().ListWorkOrders(gomock.Any()).Return([]entities.WorkOrder{{ID: "1"}}, nil)

		loader, _ := testLoader(api)
		snap := loader.Load(context.Background())

		if len(snap.Orders) != 1 || len(snap.Degraded) != 0 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if snap.Parts == nil || snap.Users == nil || snap.Services == nil {
			t.Fatalf("every slice must be non-nil")
		}
	})

	t.Run("nil api degrades everything", func(t *testing.T) {
		loader, _ := testLoader(nil)
		snap := loader.Load(context.Background())
		if len(snap.Degraded) != len(AllResources) {
			t.Fatalf("expected all resources degraded, got %v", snap.Degraded)
		}
	})
}
