package dashboardhandler

import (
	"sync"
	"time"

	"hr-admin-backend/config"
	"hr-admin-backend/db"
	queuestore "hr-admin-backend/lib/audit-queue/store"
	retirementhandler "hr-admin-backend/lib/retirement"
	dashboardapimodels "hr-admin-backend/models/api/dashboard"
)

type Provider interface {
	Notifications() (view dashboardapimodels.NotificationsView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		queueStore: queuestore.NewInstance(db.DB),
		retirement: retirementhandler.Instance,
		ttl:        time.Duration(config.Conf.Dashboard.CacheTTLInSec) * time.Second,
		now:        time.Now,
	}
}

type impl struct {
	queueStore queuestore.Provider
	retirement retirementhandler.Provider
	ttl        time.Duration
	now        func() time.Time

	mu        sync.Mutex
	cached    dashboardapimodels.NotificationsView
	cachedAt  time.Time
	haveCache bool
}

// Notifications returns the header counters. The counts are recomputed at
// most once per TTL, the dashboard polls aggressively and the numbers do not
// need to be exact to the second.
func (i *impl) Notifications() (view dashboardapimodels.NotificationsView, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	now := i.now()
	if i.haveCache && now.Sub(i.cachedAt) < i.ttl {
		return i.cached, nil
	}
	pending, err := i.queueStore.PendingCount()
	if err != nil {
		return view, err
	}
	critical, err := i.retirement.CriticalCount()
	if err != nil {
		return view, err
	}
	view = dashboardapimodels.NotificationsView{
		PendingAudits:  pending,
		CriticalAlerts: critical,
	}
	i.cached = view
	i.cachedAt = now
	i.haveCache = true
	return view, nil
}
