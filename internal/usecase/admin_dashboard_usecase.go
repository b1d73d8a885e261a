package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/usecase/aggregate"
	"taller_dashboards/internal/usecase/interfaces"
)

const RoleLabelAdmin = "administrator"

// AdminDashboard is the owner's global view: money, people, inventory and
// month-over-month trend on top of the shared order tally.
type AdminDashboard struct {
	OrderStats           aggregate.OrderStats       `json:"order_stats"`
	FinancialSummary     aggregate.FinancialSummary `json:"financial_summary"`
	UserBreakdown        aggregate.UserBreakdown    `json:"user_breakdown"`
	InventorySummary     aggregate.InventorySummary `json:"inventory_summary"`
	WorkshopProductivity aggregate.Productivity     `json:"workshop_productivity"`
	MonthTrend           aggregate.MonthTrend       `json:"month_trend"`
	PopularServices      []aggregate.ServiceRank    `json:"popular_services"`
	DegradedResources    []string                   `json:"-"`
}

// adminResources is the subset the admin view actually aggregates. Clients
// and motorcycles feed no admin widget, so they are never fetched here.
var adminResources = []Resource{
	ResourceWorkOrders,
	ResourcePayments,
	ResourceServices,
	ResourceParts,
	ResourceUsers,
}

type IAdminDashboardUseCase interface {
	Build(ctx context.Context) AdminDashboard
}

type AdminDashboardUseCase struct {
	loader *SnapshotLoader
	obs    interfaces.IFetchObserver
	log    *logrus.Logger
	now    func() time.Time
}

var _ IAdminDashboardUseCase = (*AdminDashboardUseCase)(nil)

func NewAdminDashboardUseCase(loader *SnapshotLoader, obs interfaces.IFetchObserver, log *logrus.Logger) *AdminDashboardUseCase {
	if obs == nil {
		obs = interfaces.NopObserver{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AdminDashboardUseCase{loader: loader, obs: obs, log: log, now: time.Now}
}

func (u *AdminDashboardUseCase) Build(ctx context.Context) (dash AdminDashboard) {
	start := time.Now()
	now := u.now()
	defer func() {
		if r := recover(); r != nil {
			u.log.WithField("panic", r).Error("[dashboard][admin] aggregation panic, serving degraded summary")
			empty := Snapshot{Degraded: resourceNames(adminResources)}
			empty.ensureDefaults()
			dash = u.assemble(empty, now)
		}
		u.obs.DashboardBuilt(RoleLabelAdmin, time.Since(start).Seconds())
	}()

	snap := u.loader.Load(ctx, adminResources...)
	return u.assemble(snap, now)
}

func (u *AdminDashboardUseCase) assemble(snap Snapshot, now time.Time) AdminDashboard {
	billed := aggregate.BilledOrders(snap.Orders, snap.Payments)
	return AdminDashboard{
		OrderStats:           aggregate.OrderStatsOf(snap.Orders, billed, now),
		FinancialSummary:     aggregate.FinanceOf(snap.Orders, snap.Payments, billed, now),
		UserBreakdown:        aggregate.UserBreakdownOf(snap.Users),
		InventorySummary:     aggregate.InventorySummaryOf(snap.Parts, aggregate.StockAlertDisplayLimit),
		WorkshopProductivity: aggregate.ProductivityOf(snap.Orders, correlate.NewRef(), now),
		MonthTrend:           aggregate.MonthTrendOf(snap.Orders, now),
		PopularServices:      aggregate.RankServicesOf(snap.Services, snap.Orders, aggregate.PopularServicesLimit),
		DegradedResources:    snap.Degraded,
	}
}
