package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
	mock_interfaces "taller_dashboards/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMechanicDashboardUseCase_Build(t *testing.T) {
	t.Run("blank mechanic id", func(t *testing.T) {
		uc := NewMechanicDashboardUseCase(NewSnapshotLoader(nil, NewFetchRetryPolicy(0), nil, nil), nil, nil)
		_, err := uc.Build(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidMechanicID) {
			t.Fatalf("expected ErrInvalidMechanicID, got %v", err)
		}
	})

	t.Run("assigned orders matched through the user's username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)

		orders := []entities.WorkOrder{
			// Referenced by id on one order and by username on another.
			{ID: "1", State: entities.OrderStateInProgress, CreatedAt: buildNow.AddDate(0, 0, -1),
				MechanicRef: correlate.NewRef("7")},
			{ID: "2", State: entities.OrderStateCompleted, CreatedAt: buildNow.AddDate(0, 0, -2),
				MechanicRef: correlate.NewRef("jperez")},
			{ID: "3", State: entities.OrderStateReceived, CreatedAt: buildNow,
				MechanicRef: correlate.NewRef("otro")},
		}
		users := []entities.User{
			{ID: "7", Username: "jperez", Role: entities.RoleMechanic, Active: true},
		}
		api.EXPECT().ListWorkOrders(gomock.Any()).Return(orders, nil)
		api.EXPECT().ListPayments(gomock.Any()).Return(nil, nil)
		api.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
		api.EXPECT().ListParts(gomock.Any()).Return(nil, nil)

		loader, _ := testLoader(api)
		uc := NewMechanicDashboardUseCase(loader, nil, nil)
		uc.now = fixedClock

		dash, err := uc.Build(context.Background(), "7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dash.AssignedStats.Total != 2 {
			t.Fatalf("expected 2 assigned orders, got %+v", dash.AssignedStats)
		}
		if dash.PersonalProductivity.Assigned30d != 2 || dash.PersonalProductivity.Completed30d != 1 {
			t.Fatalf("unexpected productivity: %+v", dash.PersonalProductivity)
		}
		if len(dash.RecentAssigned) != 2 || dash.RecentAssigned[0].ID != "1" {
			t.Fatalf("unexpected recent assigned: %+v", dash.RecentAssigned)
		}
	})

	t.Run("unknown mechanic degrades to zeroed personal view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)
		api.EXPECT().ListWorkOrders(gomock.Any()).Return(nil, nil)
		api.EXPECT().ListPayments(gomock.Any()).Return(nil, nil)
		api.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
		api.EXPECT().ListParts(gomock.Any()).Return(nil, nil)

		loader, _ := testLoader(api)
		uc := NewMechanicDashboardUseCase(loader, nil, nil)
		uc.now = fixedClock

		dash, err := uc.Build(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dash.AssignedStats.Total != 0 || dash.AssignedStats.ByState == nil {
			t.Fatalf("expected zeroed assigned stats, got %+v", dash.AssignedStats)
		}
		if dash.StockAlerts.LowStock == nil || dash.RecentAssigned == nil {
			t.Fatalf("lists must be empty, never nil")
		}
	})
}
