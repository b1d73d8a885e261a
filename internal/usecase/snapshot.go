package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"taller_dashboards/internal/domain/entities"
	"taller_dashboards/internal/usecase/interfaces"
	"taller_dashboards/pkg/retry"
)

// Resource names one backend collection. The names double as metric labels
// and as entries in Snapshot.Degraded.
type Resource string

const (
	ResourceWorkOrders  Resource = "work-orders"
	ResourceClients     Resource = "clients"
	ResourceMotorcycles Resource = "motorcycles"
	ResourcePayments    Resource = "payments"
	ResourceServices    Resource = "services"
	ResourceParts       Resource = "parts"
	ResourceUsers       Resource = "users"
)

// AllResources is the full set, in a stable order.
var AllResources = []Resource{
	ResourceWorkOrders, ResourceClients, ResourceMotorcycles,
	ResourcePayments, ResourceServices, ResourceParts, ResourceUsers,
}

// Snapshot is one dashboard load's immutable view of the backend. Every slice
// is non-nil; a resource that could not be fetched is empty and listed in
// Degraded. Aggregators only ever read from it.
type Snapshot struct {
	Orders      []entities.WorkOrder
	Clients     []entities.Client
	Motorcycles []entities.Motorcycle
	Payments    []entities.Payment
	Services    []entities.CatalogService
	Parts       []entities.Part
	Users       []entities.User

	Degraded []string
}

// SnapshotLoader is the fetch orchestrator: it issues one concurrent read per
// requested resource, retries authorization denials once (fixed delay) and
// degrades anything still failing to an empty collection. Load never fails.
type SnapshotLoader struct {
	api    interfaces.IWorkshopAPI
	policy retry.Policy
	obs    interfaces.IFetchObserver
	log    *logrus.Logger
}

func NewSnapshotLoader(api interfaces.IWorkshopAPI, policy retry.Policy, obs interfaces.IFetchObserver, log *logrus.Logger) *SnapshotLoader {
	if obs == nil {
		obs = interfaces.NopObserver{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SnapshotLoader{api: api, policy: policy, obs: obs, log: log}
}

// Load fetches the requested resources concurrently and returns a fully
// populated snapshot. With no resources given it loads everything.
func (l *SnapshotLoader) Load(ctx context.Context, resources ...Resource) Snapshot {
	snap := Snapshot{}
	if len(resources) == 0 {
		resources = AllResources
	}

	if l.api == nil {
		// Catastrophic: no backend at all. Everything degrades.
		for _, res := range resources {
			l.obs.FetchDegraded(string(res))
		}
		snap.Degraded = resourceNames(resources)
		snap.ensureDefaults()
		return snap
	}

	degraded := make([]bool, len(resources))
	var wg sync.WaitGroup
	for i, res := range resources {
		wg.Add(1)
		go func(i int, res Resource) {
			defer wg.Done()
			if err := l.fetch(ctx, res, &snap); err != nil {
				degraded[i] = true
				l.obs.FetchDegraded(string(res))
				l.log.WithFields(logrus.Fields{
					"resource": res,
					"error":    err,
				}).Warn("[snapshot] resource degraded to empty collection")
			}
		}(i, res)
	}
	wg.Wait()

	for i, res := range resources {
		if degraded[i] {
			snap.Degraded = append(snap.Degraded, string(res))
		}
	}
	sort.Strings(snap.Degraded)
	snap.ensureDefaults()
	return snap
}

// fetch runs one resource read under the retry policy. Each resource writes
// into its own snapshot slot, so no locking is needed across goroutines.
func (l *SnapshotLoader) fetch(ctx context.Context, res Resource, snap *Snapshot) error {
	attempt := 0
	return l.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			l.obs.FetchRetry(string(res))
			l.log.WithField("resource", res).Info("[snapshot] retrying after authorization denial")
		}
		l.obs.FetchAttempt(string(res))

		var err error
		switch res {
		case ResourceWorkOrders:
			snap.Orders, err = l.api.ListWorkOrders(ctx)
		case ResourceClients:
			snap.Clients, err = l.api.ListClients(ctx)
		case ResourceMotorcycles:
			snap.Motorcycles, err = l.api.ListMotorcycles(ctx)
		case ResourcePayments:
			snap.Payments, err = l.api.ListPayments(ctx)
		case ResourceServices:
			snap.Services, err = l.api.ListServices(ctx)
		case ResourceParts:
			snap.Parts, err = l.api.ListParts(ctx)
		case ResourceUsers:
			snap.Users, err = l.api.ListUsers(ctx)
		}
		return err
	})
}

func (s *Snapshot) ensureDefaults() {
	if s.Orders == nil {
		s.Orders = []entities.WorkOrder{}
	}
	if s.Clients == nil {
		s.Clients = []entities.Client{}
	}
	if s.Motorcycles == nil {
		s.Motorcycles = []entities.Motorcycle{}
	}
	if s.Payments == nil {
		s.Payments = []entities.Payment{}
	}
	if s.Services == nil {
		s.Services = []entities.CatalogService{}
	}
	if s.Parts == nil {
		s.Parts = []entities.Part{}
	}
	if s.Users == nil {
		s.Users = []entities.User{}
	}
	if s.Degraded == nil {
		s.Degraded = []string{}
	}
}

func resourceNames(resources []Resource) []string {
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, string(r))
	}
	sort.Strings(names)
	return names
}

// NewFetchRetryPolicy is the documented fetch policy: one retry after a
// fixed delay, and only for authorization denials. Any other failure class
// degrades immediately.
func NewFetchRetryPolicy(delay time.Duration) retry.Policy {
	return retry.Policy{MaxAttempts: 2, Delay: delay, Retryable: interfaces.IsForbidden}
}
