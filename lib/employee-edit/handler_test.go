package edithandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	activityapimodels "hr-admin-backend/models/api/activity"
	editapimodels "hr-admin-backend/models/api/edit"
	employeeapimodels "hr-admin-backend/models/api/employee"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

var submitTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type fakeEmployeeStore struct {
	recs map[string]dbmodels.Employee
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
	return nil
}

func (f *fakeEmployeeStore) Delete(id string) error {
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
	return nil
}

func (f *fakeEditStore) List(filter editapimodels.EmployeeEditFilter) ([]dbmodels.EmployeeEdit, error) {
	return nil, nil
}

func (f *fakeEditStore) ListCount(filter editapimodels.EmployeeEditFilter) (int64, error) {
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
	employees *fakeEmployeeStore
	edits     *fakeEditStore
	queue     *fakeQueueStore
	activity  *fakeActivity
	events    []wsmodels.QueueEvent
	h         impl
}

func newFixture() *fixture {
	f := &fixture{
		employees: &fakeEmployeeStore{recs: map[string]dbmodels.Employee{}},
		edits:     &fakeEditStore{recs: map[string]dbmodels.EmployeeEdit{}},
		queue:     &fakeQueueStore{recs: map[string]dbmodels.AuditQueueEntry{}},
		activity:  &fakeActivity{},
	}
	employee := dbmodels.Employee{FullName: "Adamu Bello", Department: "Finance"}
	employee.ID = "emp-1"
	f.employees.recs[employee.ID] = employee
	f.h = impl{
		employeeStore: f.employees,
		editStore:     f.edits,
		queueStore:    f.queue,
		activity:      f.activity,
		inTx: func(fn func(s txStores) error) error {
			return fn(txStores{edits: f.edits, queue: f.queue})
		},
		notify: func(ev wsmodels.QueueEvent) {
			f.events = append(f.events, ev)
		},
		now: func() time.Time { return submitTime },
	}
	return f
}

var submitter = models.Actor{ID: "user-1", Name: "Ngozi Okafor", Role: models.UserRoleAudit}

func TestSubmit(t *testing.T) {
	t.Run(`submit parks an edit on the queue under the same id`, func(t *testing.T) {
		f := newFixture()
		id, err := f.h.Submit(editapimodels.EmployeeEditData{
			EmployeeID: "emp-1",
			Changes:    dbmodels.EditChanges{"rank": "Senior Officer"},
			Reason:     "promotion letter received",
		}, submitter)
		require.Nil(t, err)
		require.NotEmpty(t, id)

		edit, ok := f.edits.recs[id]
		require.True(t, ok)
		require.Equal(t, models.EditStatusPending, edit.Status)
		require.Equal(t, "emp-1", edit.EmployeeID)
		require.Equal(t, submitter.ID, edit.SubmittedByID)
		require.Equal(t, submitTime, edit.SubmittedAt)

		entry, ok := f.queue.recs[id]
		require.True(t, ok)
		require.Equal(t, id, entry.EntityID)
		require.Equal(t, models.EntityTypeEmployeeEdit, entry.EntityType)
		require.Equal(t, "Adamu Bello", entry.EntityName)
		require.Equal(t, "promotion letter received", entry.Payload["reason"])
		require.Equal(t, "Senior Officer", entry.Payload["rank"])

		require.Equal(t, []models.ActionType{models.ActionSubmit}, f.activity.actions)
		require.Len(t, f.events, 1)
		require.Equal(t, wsmodels.EventQueueSubmitted, f.events[0].Code)
		require.Equal(t, int64(1), f.events[0].PendingCount)
	})

	t.Run(`missing employee`, func(t *testing.T) {
		f := newFixture()
		_, err := f.h.Submit(editapimodels.EmployeeEditData{
			EmployeeID: "emp-gone",
			Changes:    dbmodels.EditChanges{"rank": "Senior Officer"},
			Reason:     "promotion",
		}, submitter)
		require.True(t, apperrors.IsNotFound(err))
		require.Empty(t, f.queue.recs)
	})

	t.Run(`validation failures`, func(t *testing.T) {
		f := newFixture()
		cases := []editapimodels.EmployeeEditData{
			{EmployeeID: "", Changes: dbmodels.EditChanges{"rank": "x"}, Reason: "r"},
			{EmployeeID: "emp-1", Changes: dbmodels.EditChanges{}, Reason: "r"},
			{EmployeeID: "emp-1", Changes: dbmodels.EditChanges{"rank": "x"}, Reason: ""},
			{EmployeeID: "emp-1", Changes: dbmodels.EditChanges{"salary": "1000000"}, Reason: "r"},
			{EmployeeID: "emp-1", Changes: dbmodels.EditChanges{"date_of_birth": "03/11/1970"}, Reason: "r"},
		}
		for _, data := range cases {
			_, err := f.h.Submit(data, submitter)
			require.True(t, apperrors.IsValidation(err))
		}
		require.Empty(t, f.edits.recs)
		require.Empty(t, f.queue.recs)
		require.Empty(t, f.events)
	})
}

func TestGetByID(t *testing.T) {
	f := newFixture()

	t.Run(`view carries the loaded employee name`, func(t *testing.T) {
		employee := f.employees.recs["emp-1"]
		rec := dbmodels.EmployeeEdit{
			EmployeeID: "emp-1",
			Employee:   &employee,
			Changes:    dbmodels.EditChanges{"rank": "Senior Officer"},
			Status:     models.EditStatusPending,
		}
		rec.ID = "edit-1"
		f.edits.recs[rec.ID] = rec

		view, err := f.h.GetByID("edit-1")
		require.NoError(t, err)
		require.Equal(t, "Adamu Bello", view.EmployeeName)
		require.Equal(t, "Senior Officer", view.Changes["rank"])
	})

	t.Run(`unknown id`, func(t *testing.T) {
		_, err := f.h.GetByID("edit-404")
		require.True(t, apperrors.IsNotFound(err))
	})
}
