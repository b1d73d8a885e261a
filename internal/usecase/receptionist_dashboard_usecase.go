package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"taller_dashboards/internal/usecase/aggregate"
	"taller_dashboards/internal/usecase/interfaces"
)

// recentDisplayLimit caps every "recent ..." widget list.
const recentDisplayLimit = 5

const RoleLabelReceptionist = "receptionist"

// receptionistResources is the collection subset this dashboard reads.
var receptionistResources = []Resource{
	ResourceWorkOrders, ResourceClients, ResourceMotorcycles,
	ResourcePayments, ResourceServices,
}

// ReceptionistDashboard is the front-desk summary. The shape is fixed and
// fully populated: consumers never need null checks.
type ReceptionistDashboard struct {
	OrderStats          aggregate.OrderStats         `json:"order_stats"`
	RecentOrders        []aggregate.OrderDigest      `json:"recent_orders"`
	ClientSummary       aggregate.ClientSummary      `json:"client_summary"`
	RecentMotorcycles   []aggregate.MotorcycleDigest `json:"recent_motorcycles"`
	PaymentSummary      aggregate.PaymentSummary     `json:"payment_summary"`
	PopularServices     []aggregate.ServiceRank      `json:"popular_services"`
	ProductivitySummary aggregate.ActivitySummary    `json:"productivity_summary"`
	DegradedResources   []string                     `json:"-"`
}

// IReceptionistDashboardUseCase builds the receptionist summary. Building
// never fails: missing data degrades to zero/empty fields (see Snapshot).

type IReceptionistDashboardUseCase interface {
	Build(ctx context.Context) ReceptionistDashboard
}

type ReceptionistDashboardUseCase struct {
	loader *SnapshotLoader
	obs    interfaces.IFetchObserver
	log    *logrus.Logger
	now    func() time.Time
}

var _ IReceptionistDashboardUseCase = (*ReceptionistDashboardUseCase)(nil)

func NewReceptionistDashboardUseCase(loader *SnapshotLoader, obs interfaces.IFetchObserver, log *logrus.Logger) *ReceptionistDashboardUseCase {
	if obs == nil {
		obs = interfaces.NopObserver{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReceptionistDashboardUseCase{loader: loader, obs: obs, log: log, now: time.Now}
}

func (u *ReceptionistDashboardUseCase) Build(ctx context.Context) (dash ReceptionistDashboard) {
	start := time.Now()
	now := u.now()
	defer func() {
		if r := recover(); r != nil {
			u.log.WithField("panic", r).Error("[dashboard][receptionist] aggregation panic, serving degraded summary")
			empty := Snapshot{Degraded: resourceNames(receptionistResources)}
			empty.ensureDefaults()
			dash = u.assemble(empty, now)
		}
		u.obs.DashboardBuilt(RoleLabelReceptionist, time.Since(start).Seconds())
	}()

	snap := u.loader.Load(ctx, receptionistResources...)
	return u.assemble(snap, now)
}

// assemble is a pure function of the snapshot and the clock; calling it twice
// with the same inputs yields identical output.
func (u *ReceptionistDashboardUseCase) assemble(snap Snapshot, now time.Time) ReceptionistDashboard {
	billed := aggregate.BilledOrders(snap.Orders, snap.Payments)
	return ReceptionistDashboard{
		OrderStats:          aggregate.OrderStatsOf(snap.Orders, billed, now),
		RecentOrders:        aggregate.RecentOrders(snap.Orders, billed, now, recentDisplayLimit),
		ClientSummary:       aggregate.ClientSummaryOf(snap.Clients, snap.Orders, now, recentDisplayLimit),
		RecentMotorcycles:   aggregate.RecentMotorcycles(snap.Motorcycles, snap.Clients, now, recentDisplayLimit),
		PaymentSummary:      aggregate.PaymentSummaryOf(snap.Payments, now, recentDisplayLimit),
		PopularServices:     aggregate.RankServicesOf(snap.Services, snap.Orders, aggregate.PopularServicesLimit),
		ProductivitySummary: aggregate.ActivitySummaryOf(snap.Orders, snap.Clients, snap.Payments, now),
		DegradedResources:   snap.Degraded,
	}
}
