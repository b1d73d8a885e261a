package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
	"taller_dashboards/internal/usecase/interfaces"
	mock_interfaces "taller_dashboards/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var buildNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return buildNow }

func newReceptionistUC(api interfaces.IWorkshopAPI) *ReceptionistDashboardUseCase {
	loader, _ := testLoader(api)
	uc := NewReceptionistDashboardUseCase(loader, nil, nil)
	uc.now = fixedClock
	return uc
}

func expectReceptionistResources(api *mock_interfaces.MockIWorkshopAPI,
	orders []entities.WorkOrder, clients []entities.Client, payments []entities.Payment) {
	api.EXPECT().ListWorkOrders(gomock.Any()).Return(orders, nil).AnyTimes()
	api.EXPECT().ListClients(gomock.Any()).Return(clients, nil).AnyTimes()
	api.EXPECT().ListMotorcycles(gomock.Any()).Return(nil, nil).AnyTimes()
	api.EXPECT().ListPayments(gomock.Any()).Return(payments, nil).AnyTimes()
	api.EXPECT().ListServices(gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestReceptionistDashboardUseCase_Build(t *testing.T) {
	t.Run("billing override flows into the summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)

		orders := []entities.WorkOrder{
			{ID: "1", Number: "ORD-1", State: entities.OrderStateReceived, CreatedAt: buildNow},
			{ID: "2", Number: "ORD-2", State: entities.OrderStateCompleted, CreatedAt: buildNow},
			{ID: "3", Number: "ORD-3", State: entities.OrderStateCancelled, CreatedAt: buildNow},
		}
		payments := []entities.Payment{
			{ID: "p1", Amount: decimal.NewFromInt(100), OrderRef: correlate.NewRef("ORD-2"), PaidAt: buildNow},
		}
		expectReceptionistResources(api, orders, nil, payments)

		dash := newReceptionistUC(api).Build(context.Background())

		if dash.OrderStats.Total != 2 || dash.OrderStats.Billed != 1 || dash.OrderStats.AwaitingBilling != 0 {
			t.Fatalf("unexpected order stats: %+v", dash.OrderStats)
		}
		if dash.OrderStats.ByState["DELIVERED"] != 1 || dash.OrderStats.ByState["RECEIVED"] != 1 {
			t.Fatalf("unexpected tally: %v", dash.OrderStats.ByState)
		}
	})

	t.Run("forbidden clients degrade client aggregates to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)

		calls := 0
		api.EXPECT().ListClients(gomock.Any()).Times(2).DoAndReturn(
			func(context.Context) ([]entities.Client, error) {
				calls++
				return nil, interfaces.ErrForbidden
			},
		)
		api.EXPECT().ListWorkOrders(gomock.Any()).Return(nil, nil).AnyTimes()
		api.EXPECT().ListMotorcycles(gomock.Any()).Return(nil, nil).AnyTimes()
		api.EXPECT().ListPayments(gomock.Any()).Return(nil, nil).AnyTimes()
		api.EXPECT().ListServices(gomock.Any()).Return(nil, nil).AnyTimes()

		dash := newReceptionistUC(api).Build(context.Background())

		if calls != 2 {
			t.Fatalf("expected exactly 2 client fetches, got %d", calls)
		}
		if dash.ClientSummary.Total != 0 || len(dash.ClientSummary.FrequentClients) != 0 {
			t.Fatalf("expected zeroed client summary, got %+v", dash.ClientSummary)
		}
		if len(dash.DegradedResources) != 1 || dash.DegradedResources[0] != "clients" {
			t.Fatalf("expected clients flagged degraded, got %v", dash.DegradedResources)
		}
	})

	t.Run("identical inputs produce byte-identical output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockIWorkshopAPI(ctrl)

		orders := []entities.WorkOrder{
			{ID: "1", Number: "ORD-1", State: entities.OrderStateReceived, CreatedAt: buildNow.AddDate(0, 0, -2)},
		}
		clients := []entities.Client{{ID: "c1", Name: "Ana", CreatedAt: buildNow.AddDate(0, 0, -4)}}
		expectReceptionistResources(api, orders, clients, nil)

		uc := newReceptionistUC(api)
		a, errA := json.Marshal(uc.Build(context.Background()))
		b, errB := json.Marshal(uc.Build(context.Background()))
		if errA != nil || errB != nil {
			t.Fatalf("marshal failed: %v %v", errA, errB)
		}
		if string(a) != string(b) {
			t.Fatalf("summary not idempotent:\n%s\n%s", a, b)
		}
	})

	t.Run("catastrophic failure yields the documented degraded shape", func(t *testing.T) {
		uc := newReceptionistUC(nil) // no backend at all

		dash := uc.Build(context.Background())

		if len(dash.DegradedResources) != len(receptionistResources) {
			t.Fatalf("expected every resource degraded, got %v", dash.DegradedResources)
		}
		if dash.OrderStats.Total != 0 || dash.OrderStats.ByState == nil {
			t.Fatalf("expected zeroed order stats, got %+v", dash.OrderStats)
		}
		if dash.RecentOrders == nil || dash.RecentMotorcycles == nil {
			t.Fatalf("lists must be empty, never nil")
		}
		if dash.PaymentSummary.MostUsedMethod != "UNKNOWN" {
			t.Fatalf("expected UNKNOWN method default, got %q", dash.PaymentSummary.MostUsedMethod)
		}
		// The whole shape must serialize without nulls for object/array fields.
		raw, err := json.Marshal(dash)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		for _, key := range []string{"recent_orders", "recent_motorcycles", "popular_services"} {
			if decoded[key] == nil {
				t.Fatalf("field %q serialized as null", key)
			}
		}
		// Degradation is reported once, by the response envelope.
		if _, ok := decoded["degraded_resources"]; ok {
			t.Fatalf("degraded_resources must not appear inside the role data")
		}
	})
}
