package dashboardhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/models"
	retirementapimodels "hr-admin-backend/models/api/retirement"
	dbmodels "hr-admin-backend/models/db"
)

type fakeQueueStore struct {
	pending int64
	calls   int
}

func (f *fakeQueueStore) Upsert(rec dbmodels.AuditQueueEntry) error {
	return nil
}

func (f *fakeQueueStore) GetByID(id string) (*dbmodels.AuditQueueEntry, error) {
	return nil, nil
}

func (f *fakeQueueStore) Delete(id string) error {
	return nil
}

func (f *fakeQueueStore) List(status models.QueueStatus) ([]dbmodels.AuditQueueEntry, error) {
	return nil, nil
}

func (f *fakeQueueStore) PendingCount() (int64, error) {
	f.calls++
	return f.pending, nil
}

type fakeRetirement struct {
	critical int
}

func (f *fakeRetirement) Alerts(filter retirementapimodels.AlertFilter) ([]retirementapimodels.AlertView, error) {
	return nil, nil
}

func (f *fakeRetirement) CriticalCount() (int, error) {
	return f.critical, nil
}

func TestNotifications(t *testing.T) {
	t.Run(`counters come from the stores`, func(t *testing.T) {
		queue := &fakeQueueStore{pending: 7}
		h := &impl{
			queueStore: queue,
			retirement: &fakeRetirement{critical: 3},
			ttl:        30 * time.Second,
			now:        time.Now,
		}
		view, err := h.Notifications()
		require.Nil(t, err)
		require.Equal(t, int64(7), view.PendingAudits)
		require.Equal(t, 3, view.CriticalAlerts)
	})

	t.Run(`counters are cached for the ttl`, func(t *testing.T) {
		current := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		queue := &fakeQueueStore{pending: 7}
		h := &impl{
			queueStore: queue,
			retirement: &fakeRetirement{critical: 3},
			ttl:        30 * time.Second,
			now:        func() time.Time { return current },
		}

		_, err := h.Notifications()
		require.Nil(t, err)
		require.Equal(t, 1, queue.calls)

		queue.pending = 9
		current = current.Add(10 * time.Second)
		view, err := h.Notifications()
		require.Nil(t, err)
		require.Equal(t, 1, queue.calls)
		require.Equal(t, int64(7), view.PendingAudits)

		current = current.Add(25 * time.Second)
		view, err = h.Notifications()
		require.Nil(t, err)
		require.Equal(t, 2, queue.calls)
		require.Equal(t, int64(9), view.PendingAudits)
	})
}
