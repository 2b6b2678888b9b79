package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	activityapimodels "hr-admin-backend/models/api/activity"
	dbmodels "hr-admin-backend/models/db"
)

type fakeActivityStore struct {
	recs       []dbmodels.Activity
	lastFilter activityapimodels.ActivityFilter
}

func (f *fakeActivityStore) Create(rec dbmodels.Activity) error {
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeActivityStore) List(filter activityapimodels.ActivityFilter) ([]dbmodels.Activity, error) {
	f.lastFilter = filter
	return f.recs, nil
}

func (f *fakeActivityStore) ListCount(filter activityapimodels.ActivityFilter) (int64, error) {
	return int64(len(f.recs)), nil
}

func TestList(t *testing.T) {
	store := &fakeActivityStore{recs: []dbmodels.Activity{
		{
			BaseModel:  dbmodels.BaseModel{ID: "act-1", CreatedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)},
			ActorID:    "admin-1",
			ActorName:  "Hauwa Musa",
			Action:     models.ActionApprove,
			EntityType: "employeeEdit",
			EntityID:   "edit-1",
			EntityName: "Adamu Bello",
		},
	}}
	handler := impl{store: store}

	t.Run(`filter is handed to the store with pagination intact`, func(t *testing.T) {
		filter := activityapimodels.ActivityFilter{
			ActorID:   "admin-1",
			StartDate: "2026-02-01",
			EndDate:   "2026-02-28",
		}
		filter.Page = 3
		filter.Limit = 25

		list, count, err := handler.List(filter)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
		require.Len(t, list, 1)
		require.Equal(t, "Hauwa Musa", list[0].ActorName)
		require.Equal(t, "approve", list[0].Action)
		require.Equal(t, time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC), list[0].Timestamp)

		page, limit := store.lastFilter.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 25, limit)
		require.Equal(t, "2026-02-01", store.lastFilter.StartDate)
	})

	t.Run(`malformed range dates are rejected`, func(t *testing.T) {
		for _, filter := range []activityapimodels.ActivityFilter{
			{StartDate: "01.02.2026"},
			{EndDate: "2026-2-1 10:00"},
		} {
			_, _, err := handler.List(filter)
			require.True(t, apperrors.IsValidation(err))
		}
	})
}
