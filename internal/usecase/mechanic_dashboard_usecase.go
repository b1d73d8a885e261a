package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/usecase/aggregate"
	"taller_dashboards/internal/usecase/interfaces"
)

var ErrInvalidMechanicID = errors.New("invalid mechanic id")

const RoleLabelMechanic = "mechanic"

var mechanicResources = []Resource{
	ResourceWorkOrders, ResourcePayments, ResourceUsers, ResourceParts,
}

// MechanicDashboard is one mechanic's personal view: their assigned orders,
// the stock situation and their own 30-day productivity.
type MechanicDashboard struct {
	AssignedStats        aggregate.AssignedStats `json:"assigned_stats"`
	RecentAssigned       []aggregate.OrderDigest `json:"recent_assigned"`
	StockAlerts          aggregate.StockAlerts   `json:"stock_alerts"`
	PersonalProductivity aggregate.Productivity  `json:"personal_productivity"`
	DegradedResources    []string                `json:"-"`
}

// IMechanicDashboardUseCase builds the mechanic summary. The only error it
// can return is ErrInvalidMechanicID; aggregation itself never fails.

type IMechanicDashboardUseCase interface {
	Build(ctx context.Context, mechanicID string) (MechanicDashboard, error)
}

type MechanicDashboardUseCase struct {
	loader *SnapshotLoader
	obs    interfaces.IFetchObserver
	log    *logrus.Logger
	now    func() time.Time
}

var _ IMechanicDashboardUseCase = (*MechanicDashboardUseCase)(nil)

func NewMechanicDashboardUseCase(loader *SnapshotLoader, obs interfaces.IFetchObserver, log *logrus.Logger) *MechanicDashboardUseCase {
	if obs == nil {
		obs = interfaces.NopObserver{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MechanicDashboardUseCase{loader: loader, obs: obs, log: log, now: time.Now}
}

func (u *MechanicDashboardUseCase) Build(ctx context.Context, mechanicID string) (dash MechanicDashboard, err error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return MechanicDashboard{}, ErrInvalidMechanicID
	}

	start := time.Now()
	now := u.now()
	defer func() {
		if r := recover(); r != nil {
			u.log.WithFields(logrus.Fields{
				"panic":       r,
				"mechanic_id": mechanicID,
			}).Error("[dashboard][mechanic] aggregation panic, serving degraded summary")
			empty := Snapshot{Degraded: resourceNames(mechanicResources)}
			empty.ensureDefaults()
			dash, err = u.assemble(empty, mechanicID, now), nil
		}
		u.obs.DashboardBuilt(RoleLabelMechanic, time.Since(start).Seconds())
	}()

	snap := u.loader.Load(ctx, mechanicResources...)
	return u.assemble(snap, mechanicID, now), nil
}

func (u *MechanicDashboardUseCase) assemble(snap Snapshot, mechanicID string, now time.Time) MechanicDashboard {
	billed := aggregate.BilledOrders(snap.Orders, snap.Payments)

	// Orders may reference the mechanic by id or username; widen the target
	// ref with the matching user's candidates when the user list is available.
	target := correlate.NewRef(mechanicID)
	if len(snap.Users) > 0 {
		ix := correlate.NewIndex(len(snap.Users), func(i int) correlate.Ref { return snap.Users[i].Keys() })
		if matches := ix.Match(target); len(matches) > 0 {
			target = target.Merge(snap.Users[matches[0]].Keys())
		}
	}

	return MechanicDashboard{
		AssignedStats:        aggregate.AssignedStatsOf(snap.Orders, billed, target, now),
		RecentAssigned:       aggregate.RecentAssigned(snap.Orders, billed, target, now, recentDisplayLimit),
		StockAlerts:          aggregate.StockAlertsOf(snap.Parts, aggregate.StockAlertDisplayLimit),
		PersonalProductivity: aggregate.ProductivityOf(snap.Orders, target, now),
		DegradedResources:    snap.Degraded,
	}
}
