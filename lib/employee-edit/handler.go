package edithandler

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	queuestore "hr-admin-backend/lib/audit-queue/store"
	editstore "hr-admin-backend/lib/employee-edit/store"
	employeestore "hr-admin-backend/lib/employee/store"
	"hr-admin-backend/lib/utils/apperrors"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/models"
	editapimodels "hr-admin-backend/models/api/edit"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

type Provider interface {
	Submit(data editapimodels.EmployeeEditData, actor models.Actor) (id string, err error)
	GetByID(id string) (view *editapimodels.EmployeeEditView, err error)
	List(filter editapimodels.EmployeeEditFilter) (list []editapimodels.EmployeeEditView, count int64, err error)
}

var Instance Provider

type txStores struct {
	edits editstore.Provider
	queue queuestore.Provider
}

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
		editStore:     editstore.NewInstance(db.DB),
		queueStore:    queuestore.NewInstance(db.DB),
		activity:      activityhandler.Instance,
		inTx: func(fn func(s txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(txStores{
					edits: editstore.NewInstance(tx),
					queue: queuestore.NewInstance(tx),
				})
			})
		},
		notify: func(ev wsmodels.QueueEvent) {
			if connectionhub.Instance != nil {
				connectionhub.Instance.Broadcast(ev)
			}
		},
		now: time.Now,
	}
}

type impl struct {
	employeeStore employeestore.Provider
	editStore     editstore.Provider
	queueStore    queuestore.Provider
	activity      activityhandler.Provider
	inTx          func(fn func(s txStores) error) error
	notify        func(ev wsmodels.QueueEvent)
	now           func() time.Time
}

// Submit records a change proposal against an employee and parks it on the
// approval queue. The employee row itself stays untouched until the proposal
// is approved. The edit id doubles as the queue entry id, so a later
// submission for the same edit would overwrite its own queue row instead of
// growing the queue.
func (i impl) Submit(data editapimodels.EmployeeEditData, actor models.Actor) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", apperrors.NewNotFound("employee not found")
	}

	id = uuid.NewString()
	submittedAt := i.now()
	rec := dbmodels.EmployeeEdit{
		BaseModel:       dbmodels.BaseModel{ID: id},
		EmployeeID:      data.EmployeeID,
		SubmittedByID:   actor.ID,
		SubmittedByName: actor.Name,
		Changes:         data.Changes,
		Reason:          data.Reason,
		Status:          models.EditStatusPending,
		SubmittedAt:     submittedAt,
	}
	payload := dbmodels.JSONMap{}
	for field, value := range data.Changes {
		payload[field] = value
	}
	payload["employee_id"] = employee.ID
	payload["reason"] = data.Reason
	queueRec := dbmodels.AuditQueueEntry{
		ID:              id,
		EntityType:      models.EntityTypeEmployeeEdit,
		EntityID:        id,
		EntityName:      employee.FullName,
		Status:          models.QueueStatusPending,
		SubmittedByID:   actor.ID,
		SubmittedByName: actor.Name,
		SubmittedAt:     submittedAt,
		Payload:         payload,
	}
	err = i.inTx(func(s txStores) error {
		if _, txErr := s.edits.Create(rec); txErr != nil {
			return txErr
		}
		return s.queue.Upsert(queueRec)
	})
	if err != nil {
		return "", err
	}

	i.activity.Save(actor, models.ActionSubmit, "employee_edit", id, employee.FullName, dbmodels.JSONMap{"reason": data.Reason})
	i.broadcast(wsmodels.EventQueueSubmitted, id)
	return id, nil
}

func (i impl) GetByID(id string) (*editapimodels.EmployeeEditView, error) {
	rec, err := i.editStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("edit not found")
	}
	view := editapimodels.EmployeeEditConvert(*rec)
	return &view, nil
}

func (i impl) List(filter editapimodels.EmployeeEditFilter) (list []editapimodels.EmployeeEditView, count int64, err error) {
	count, err = i.editStore.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.editStore.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]editapimodels.EmployeeEditView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, editapimodels.EmployeeEditConvert(rec))
	}
	return list, count, nil
}

func (i impl) broadcast(code string, entityID string) {
	pending, err := i.queueStore.PendingCount()
	if err != nil {
		log.WithError(err).Error("failed to count pending queue entries")
		return
	}
	i.notify(wsmodels.QueueEvent{
		Time:         i.now().Format("02.01.2006 15:04:05"),
		Code:         code,
		PendingCount: pending,
		EntityType:   string(models.EntityTypeEmployeeEdit),
		EntityID:     entityID,
	})
}
