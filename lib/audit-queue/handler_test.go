package queuehandler

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	activityapimodels "hr-admin-backend/models/api/activity"
	auditapimodels "hr-admin-backend/models/api/audit"
	editapimodels "hr-admin-backend/models/api/edit"
	employeeapimodels "hr-admin-backend/models/api/employee"
	newsapimodels "hr-admin-backend/models/api/news"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

var resolveTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

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

func (f *fakeQueueStore) List(status models.QueueStatus) (list []dbmodels.AuditQueueEntry, err error) {
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeQueueStore) PendingCount() (int64, error) {
	return int64(len(f.recs)), nil
}

type fakeEditStore struct {
	recs map[string]dbmodels.EmployeeEdit
}

func (f *fakeEditStore) Create(rec dbmodels.EmployeeEdit) (string, error) {
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeEditStore) GetByID(id string) (*dbmodels.EmployeeEdit, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeEditStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("edit record not found")
	}
	if v, ok := updMap["status"]; ok {
		rec.Status = v.(models.EditStatus)
	}
	if v, ok := updMap["reviewer_id"]; ok {
		reviewerID := v.(string)
		rec.ReviewerID = &reviewerID
	}
	if v, ok := updMap["notes"]; ok {
		rec.Notes = v.(string)
	}
	if v, ok := updMap["resolved_at"]; ok {
		at := v.(time.Time)
		rec.ResolvedAt = &at
	}
	f.recs[id] = rec
	return nil
}

func (f *fakeEditStore) List(filter editapimodels.EmployeeEditFilter) ([]dbmodels.EmployeeEdit, error) {
	return nil, nil
}

func (f *fakeEditStore) ListCount(filter editapimodels.EmployeeEditFilter) (int64, error) {
	return 0, nil
}

type fakeEmployeeStore struct {
	recs    map[string]dbmodels.Employee
	applied map[string]map[string]interface{}
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeEmployeeStore) ApplyChanges(id string, updMap map[string]interface{}) error {
	if _, ok := f.recs[id]; !ok {
		return errors.New("employee record not found")
	}
	f.applied[id] = updMap
	return nil
}

func (f *fakeEmployeeStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeEmployeeStore) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListAll() ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListCount(filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeStore) ListByLga(lgaID string) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) ListRetirementCandidates(ageCutoff, serviceCutoff time.Time, department string) ([]dbmodels.Employee, error) {
	return nil, nil
}

type fakeNewsStore struct {
	recs map[string]dbmodels.News
}

func (f *fakeNewsStore) Create(rec dbmodels.News) (string, error) {
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
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("news record not found")
	}
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

type fakeUsersStore struct {
	recs map[string]dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error) {
	return nil, nil
}

func (f *fakeUsersStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeUsersStore) TouchLastLogin(id string, at time.Time) error {
	return nil
}

func (f *fakeUsersStore) List() ([]dbmodels.User, error) {
	return nil, nil
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
	queue     *fakeQueueStore
	edits     *fakeEditStore
	employees *fakeEmployeeStore
	news      *fakeNewsStore
	users     *fakeUsersStore
	activity  *fakeActivity
	events    []wsmodels.QueueEvent
	emails    []string
	h         impl
}

func newFixture() *fixture {
	f := &fixture{
		queue:     &fakeQueueStore{recs: map[string]dbmodels.AuditQueueEntry{}},
		edits:     &fakeEditStore{recs: map[string]dbmodels.EmployeeEdit{}},
		employees: &fakeEmployeeStore{recs: map[string]dbmodels.Employee{}, applied: map[string]map[string]interface{}{}},
		news:      &fakeNewsStore{recs: map[string]dbmodels.News{}},
		users:     &fakeUsersStore{recs: map[string]dbmodels.User{}},
		activity:  &fakeActivity{},
	}
	f.h = impl{
		queueStore: f.queue,
		usersStore: f.users,
		activity:   f.activity,
		inTx: func(fn func(s txStores) error) error {
			return fn(txStores{
				edits:     f.edits,
				employees: f.employees,
				news:      f.news,
				queue:     f.queue,
			})
		},
		notify: func(ev wsmodels.QueueEvent) {
			f.events = append(f.events, ev)
		},
		sendEmail: func(to, subject, message string) error {
			f.emails = append(f.emails, to)
			return nil
		},
		now: func() time.Time { return resolveTime },
	}
	return f
}

func (f *fixture) seedEdit(changes dbmodels.EditChanges) (editID string) {
	editID = "edit-1"
	employee := dbmodels.Employee{
		FullName:   "Adamu Bello",
		Department: "Finance",
	}
	employee.ID = "emp-1"
	f.employees.recs[employee.ID] = employee
	edit := dbmodels.EmployeeEdit{
		EmployeeID:      employee.ID,
		SubmittedByID:   "user-1",
		SubmittedByName: "Ngozi Okafor",
		Changes:         changes,
		Reason:          "field verification",
		Status:          models.EditStatusPending,
		SubmittedAt:     resolveTime.Add(-time.Hour),
	}
	edit.ID = editID
	f.edits.recs[editID] = edit
	f.queue.recs[editID] = dbmodels.AuditQueueEntry{
		ID:              editID,
		EntityType:      models.EntityTypeEmployeeEdit,
		EntityID:        editID,
		EntityName:      employee.FullName,
		Status:          models.QueueStatusPending,
		SubmittedByID:   "user-1",
		SubmittedByName: "Ngozi Okafor",
		SubmittedAt:     resolveTime.Add(-time.Hour),
	}
	user := dbmodels.User{Name: "Ngozi Okafor", Email: "ngozi@example.org"}
	user.ID = "user-1"
	f.users.recs[user.ID] = user
	return editID
}

func (f *fixture) seedPendingNews() (newsID string) {
	newsID = "news-1"
	post := dbmodels.News{
		Title:  "New pension circular",
		Slug:   "new-pension-circular",
		Status: models.NewsStatusPending,
	}
	post.ID = newsID
	f.news.recs[newsID] = post
	f.queue.recs[newsID] = dbmodels.AuditQueueEntry{
		ID:              newsID,
		EntityType:      models.EntityTypeNews,
		EntityID:        newsID,
		EntityName:      post.Title,
		Status:          models.QueueStatusPending,
		SubmittedByID:   "user-1",
		SubmittedByName: "Ngozi Okafor",
		SubmittedAt:     resolveTime.Add(-time.Hour),
	}
	user := dbmodels.User{Name: "Ngozi Okafor", Email: "ngozi@example.org"}
	user.ID = "user-1"
	f.users.recs[user.ID] = user
	return newsID
}

var reviewer = models.Actor{ID: "admin-1", Name: "Hauwa Musa", Role: models.UserRoleAdmin}

func TestApproveEdit(t *testing.T) {
	t.Run(`approve applies changes and clears the entry`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{
			"full_name":        "Adamu A. Bello",
			"date_of_transfer": "2025-11-03",
		})

		result, err := f.h.Approve(editID, reviewer, auditapimodels.ResolveData{Notes: "verified"})
		require.Nil(t, err)
		require.Equal(t, "approved", result.Message)

		edit := f.edits.recs[editID]
		require.Equal(t, models.EditStatusApproved, edit.Status)
		require.Equal(t, "verified", edit.Notes)
		require.NotNil(t, edit.ReviewerID)
		require.Equal(t, reviewer.ID, *edit.ReviewerID)
		require.NotNil(t, edit.ResolvedAt)
		require.Equal(t, resolveTime, *edit.ResolvedAt)

		applied := f.employees.applied["emp-1"]
		require.Len(t, applied, 2)
		require.Equal(t, "Adamu A. Bello", applied["full_name"])
		require.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), applied["date_of_transfer"])

		_, exists := f.queue.recs[editID]
		require.False(t, exists)

		require.Equal(t, []models.ActionType{models.ActionApprove}, f.activity.actions)
		require.Len(t, f.events, 1)
		require.Equal(t, wsmodels.EventQueueResolved, f.events[0].Code)
		require.Equal(t, int64(0), f.events[0].PendingCount)
		require.Equal(t, []string{"ngozi@example.org"}, f.emails)
	})

	t.Run(`double resolve fails and keeps nothing half applied`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{"rank": "Senior Officer"})
		edit := f.edits.recs[editID]
		edit.Status = models.EditStatusApproved
		f.edits.recs[editID] = edit

		_, err := f.h.Approve(editID, reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsInconsistent(err))
		require.Empty(t, f.employees.applied)
		_, exists := f.queue.recs[editID]
		require.True(t, exists)
	})

	t.Run(`dangling edit keeps the entry for remediation`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{"rank": "Senior Officer"})
		delete(f.edits.recs, editID)

		_, err := f.h.Approve(editID, reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsInconsistent(err))
		_, exists := f.queue.recs[editID]
		require.True(t, exists)
	})

	t.Run(`dangling employee keeps the entry for remediation`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{"rank": "Senior Officer"})
		delete(f.employees.recs, "emp-1")

		_, err := f.h.Approve(editID, reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsInconsistent(err))
		_, exists := f.queue.recs[editID]
		require.True(t, exists)
	})
}

func TestRejectEdit(t *testing.T) {
	t.Run(`reject leaves the employee untouched`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{"department": "Health"})

		result, err := f.h.Reject(editID, reviewer, auditapimodels.ResolveData{Notes: "stale data"})
		require.Nil(t, err)
		require.Equal(t, "rejected", result.Message)

		edit := f.edits.recs[editID]
		require.Equal(t, models.EditStatusRejected, edit.Status)
		require.Equal(t, "stale data", edit.Notes)
		require.Empty(t, f.employees.applied)
		require.Equal(t, "Finance", f.employees.recs["emp-1"].Department)

		_, exists := f.queue.recs[editID]
		require.False(t, exists)
		require.Equal(t, []models.ActionType{models.ActionReject}, f.activity.actions)
	})
}

func TestResolveNews(t *testing.T) {
	t.Run(`approve publishes the post`, func(t *testing.T) {
		f := newFixture()
		newsID := f.seedPendingNews()
		stale := "old objection"
		post := f.news.recs[newsID]
		post.RejectionNotes = &stale
		f.news.recs[newsID] = post

		result, err := f.h.Approve(newsID, reviewer, auditapimodels.ResolveData{})
		require.Nil(t, err)
		require.Equal(t, "approved", result.Message)

		post = f.news.recs[newsID]
		require.Equal(t, models.NewsStatusPublished, post.Status)
		require.NotNil(t, post.PublishedAt)
		require.Equal(t, resolveTime, *post.PublishedAt)
		require.Nil(t, post.RejectionNotes)
		_, exists := f.queue.recs[newsID]
		require.False(t, exists)
	})

	t.Run(`reject drops the post back to draft with notes`, func(t *testing.T) {
		f := newFixture()
		newsID := f.seedPendingNews()

		result, err := f.h.Reject(newsID, reviewer, auditapimodels.ResolveData{Notes: "needs a source"})
		require.Nil(t, err)
		require.Equal(t, "rejected", result.Message)

		post := f.news.recs[newsID]
		require.Equal(t, models.NewsStatusDraft, post.Status)
		require.NotNil(t, post.RejectionNotes)
		require.Equal(t, "needs a source", *post.RejectionNotes)
		_, exists := f.queue.recs[newsID]
		require.False(t, exists)
	})

	t.Run(`post no longer pending fails`, func(t *testing.T) {
		f := newFixture()
		newsID := f.seedPendingNews()
		post := f.news.recs[newsID]
		post.Status = models.NewsStatusPublished
		f.news.recs[newsID] = post

		_, err := f.h.Approve(newsID, reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsInconsistent(err))
		_, exists := f.queue.recs[newsID]
		require.True(t, exists)
	})
}

func TestResolveGuards(t *testing.T) {
	t.Run(`missing entry`, func(t *testing.T) {
		f := newFixture()
		_, err := f.h.Approve("no-such-entry", reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsNotFound(err))
		_, err = f.h.Reject("no-such-entry", reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`oversize notes`, func(t *testing.T) {
		f := newFixture()
		editID := f.seedEdit(dbmodels.EditChanges{"rank": "Senior Officer"})
		_, err := f.h.Approve(editID, reviewer, auditapimodels.ResolveData{Notes: strings.Repeat("x", 2001)})
		require.True(t, apperrors.IsValidation(err))
		require.Equal(t, models.EditStatusPending, f.edits.recs[editID].Status)
	})

	t.Run(`unknown entity type`, func(t *testing.T) {
		f := newFixture()
		f.queue.recs["odd-1"] = dbmodels.AuditQueueEntry{
			ID:         "odd-1",
			EntityType: models.EntityType("vacancy"),
			EntityID:   "odd-1",
		}
		_, err := f.h.Approve("odd-1", reviewer, auditapimodels.ResolveData{})
		require.True(t, apperrors.IsInconsistent(err))
	})

	t.Run(`system submissions get no email`, func(t *testing.T) {
		f := newFixture()
		newsID := f.seedPendingNews()
		entry := f.queue.recs[newsID]
		entry.SubmittedByID = models.SystemUser
		f.queue.recs[newsID] = entry

		_, err := f.h.Approve(newsID, reviewer, auditapimodels.ResolveData{})
		require.Nil(t, err)
		require.Empty(t, f.emails)
	})
}
