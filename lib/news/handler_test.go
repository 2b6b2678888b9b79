package newshandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	activityapimodels "hr-admin-backend/models/api/activity"
	newsapimodels "hr-admin-backend/models/api/news"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

var publishTime = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

type fakeNewsStore struct {
	recs   map[string]dbmodels.News
	nextID int
}

func (f *fakeNewsStore) Create(rec dbmodels.News) (string, error) {
	if rec.ID == "" {
		f.nextID++
		rec.ID = fmt.Sprintf("news-%d", f.nextID)
	}
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeNewsStore) GetByID(id string) (*dbmodels.News, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeNewsStore) GetBySlug(slug string) (*dbmodels.News, error) {
	for _, rec := range f.recs {
		if rec.Slug == slug {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.NewsStatus)
	}
	if v, ok := updMap["published_at"]; ok {
		at := v.(time.Time)
		rec.PublishedAt = &at
	}
	if v, ok := updMap["rejection_notes"]; ok {
		if v == nil {
			rec.RejectionNotes = nil
		} else {
			notes := v.(string)
			rec.RejectionNotes = &notes
		}
	}
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	f.recs[id] = rec
	return nil
}

func (f *fakeNewsStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeNewsStore) List(filter newsapimodels.NewsFilter) ([]dbmodels.News, error) {
	return nil, nil
}

func (f *fakeNewsStore) ListCount(filter newsapimodels.NewsFilter) (int64, error) {
	return 0, nil
}

type fakeQueueStore struct {
	recs map[string]dbmodels.AuditQueueEntry
}

func (f *fakeQueueStore) Upsert(rec dbmodels.AuditQueueEntry) error {
	f.recs[rec.ID] = rec
	return nil
}

func (f *fakeQueueStore) GetByID(id string) (*dbmodels.AuditQueueEntry, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeQueueStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeQueueStore) List(status models.QueueStatus) ([]dbmodels.AuditQueueEntry, error) {
	return nil, nil
}

func (f *fakeQueueStore) PendingCount() (int64, error) {
	return int64(len(f.recs)), nil
}

type fakeActivity struct {
	actions []models.ActionType
}

func (f *fakeActivity) Save(actor models.Actor, action models.ActionType, entityType, entityID, entityName string, details dbmodels.JSONMap) {
	f.actions = append(f.actions, action)
}

func (f *fakeActivity) List(filter activityapimodels.ActivityFilter) ([]activityapimodels.ActivityView, int64, error) {
	return nil, 0, nil
}

type fixture struct {
	store    *fakeNewsStore
	queue    *fakeQueueStore
	activity *fakeActivity
	events   []wsmodels.QueueEvent
	h        impl
}

func newFixture() *fixture {
	f := &fixture{
		store:    &fakeNewsStore{recs: map[string]dbmodels.News{}},
		queue:    &fakeQueueStore{recs: map[string]dbmodels.AuditQueueEntry{}},
		activity: &fakeActivity{},
	}
	f.h = impl{
		store:      f.store,
		queueStore: f.queue,
		activity:   f.activity,
		inTx: func(fn func(s txStores) error) error {
			return fn(txStores{news: f.store, queue: f.queue})
		},
		notify: func(ev wsmodels.QueueEvent) {
			f.events = append(f.events, ev)
		},
		now: func() time.Time { return publishTime },
	}
	return f
}

func (f *fixture) seedDraft(id, title, slug string) {
	rec := dbmodels.News{
		Title:  title,
		Slug:   slug,
		Status: models.NewsStatusDraft,
	}
	rec.ID = id
	f.store.recs[id] = rec
}

var mediaAdmin = models.Actor{ID: "media-1", Name: "Chidi Eze", Role: models.UserRoleMediaAdmin}
var admin = models.Actor{ID: "admin-1", Name: "Hauwa Musa", Role: models.UserRoleAdmin}

func TestCreate(t *testing.T) {
	t.Run(`create slugifies the title`, func(t *testing.T) {
		f := newFixture()
		id, err := f.h.Create(newsapimodels.NewsData{Title: "New Pension Circular 2026"}, mediaAdmin)
		require.Nil(t, err)
		rec := f.store.recs[id]
		require.Equal(t, "new-pension-circular-2026", rec.Slug)
		require.Equal(t, models.NewsStatusDraft, rec.Status)
		require.Equal(t, mediaAdmin.ID, rec.AuthorID)
	})

	t.Run(`slug collisions get a counter suffix`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-0", "Budget Review", "budget-review")
		id, err := f.h.Create(newsapimodels.NewsData{Title: "Budget Review"}, mediaAdmin)
		require.Nil(t, err)
		require.Equal(t, "budget-review-2", f.store.recs[id].Slug)
	})

	t.Run(`empty title fails validation`, func(t *testing.T) {
		f := newFixture()
		_, err := f.h.Create(newsapimodels.NewsData{}, mediaAdmin)
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`published post is read-only`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")
		rec := f.store.recs["news-1"]
		rec.Status = models.NewsStatusPublished
		f.store.recs["news-1"] = rec

		err := f.h.Update("news-1", newsapimodels.NewsData{Title: "Budget Review v2"}, mediaAdmin)
		require.True(t, apperrors.IsInconsistent(err))
		require.Equal(t, "Budget Review", f.store.recs["news-1"].Title)
	})

	t.Run(`missing post`, func(t *testing.T) {
		f := newFixture()
		err := f.h.Update("news-gone", newsapimodels.NewsData{Title: "x"}, mediaAdmin)
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestGetBySlug(t *testing.T) {
	t.Run(`only published posts are public`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")

		_, err := f.h.GetBySlug("budget-review")
		require.True(t, apperrors.IsNotFound(err))

		rec := f.store.recs["news-1"]
		rec.Status = models.NewsStatusPublished
		f.store.recs["news-1"] = rec

		view, err := f.h.GetBySlug("budget-review")
		require.Nil(t, err)
		require.Equal(t, "Budget Review", view.Title)
	})
}

func TestSubmit(t *testing.T) {
	t.Run(`media admin lands on the queue`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")
		stale := "old objection"
		rec := f.store.recs["news-1"]
		rec.RejectionNotes = &stale
		f.store.recs["news-1"] = rec

		result, err := f.h.Submit("news-1", mediaAdmin)
		require.Nil(t, err)
		require.Equal(t, string(models.NewsStatusPending), result.Status)
		require.Equal(t, models.NewsStatusPending, f.store.recs["news-1"].Status)
		require.Nil(t, f.store.recs["news-1"].RejectionNotes)

		entry, ok := f.queue.recs["news-1"]
		require.True(t, ok)
		require.Equal(t, models.EntityTypeNews, entry.EntityType)
		require.Equal(t, "news-1", entry.EntityID)
		require.Equal(t, "Budget Review", entry.Payload["title"])

		require.Equal(t, []models.ActionType{models.ActionSubmit}, f.activity.actions)
		require.Len(t, f.events, 1)
		require.Equal(t, wsmodels.EventQueueSubmitted, f.events[0].Code)
	})

	t.Run(`admin publishes directly`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")

		result, err := f.h.Submit("news-1", admin)
		require.Nil(t, err)
		require.Equal(t, string(models.NewsStatusPublished), result.Status)

		rec := f.store.recs["news-1"]
		require.Equal(t, models.NewsStatusPublished, rec.Status)
		require.NotNil(t, rec.PublishedAt)
		require.Equal(t, publishTime, *rec.PublishedAt)
		require.Empty(t, f.queue.recs)
		require.Equal(t, []models.ActionType{models.ActionPublish}, f.activity.actions)
	})

	t.Run(`resubmission reuses the queue slot`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")

		_, err := f.h.Submit("news-1", mediaAdmin)
		require.Nil(t, err)
		_, err = f.h.Submit("news-1", mediaAdmin)
		require.Nil(t, err)
		require.Len(t, f.queue.recs, 1)
	})

	t.Run(`already published`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")
		rec := f.store.recs["news-1"]
		rec.Status = models.NewsStatusPublished
		f.store.recs["news-1"] = rec

		_, err := f.h.Submit("news-1", admin)
		require.True(t, apperrors.IsInconsistent(err))
	})
}

func TestDelete(t *testing.T) {
	t.Run(`delete clears the queue slot too`, func(t *testing.T) {
		f := newFixture()
		f.seedDraft("news-1", "Budget Review", "budget-review")
		_, err := f.h.Submit("news-1", mediaAdmin)
		require.Nil(t, err)

		err = f.h.Delete("news-1", admin)
		require.Nil(t, err)
		require.Empty(t, f.store.recs)
		require.Empty(t, f.queue.recs)
	})
}
