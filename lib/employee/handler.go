package employeehandler

import (
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	employeestore "hr-admin-backend/lib/employee/store"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	employeeapimodels "hr-admin-backend/models/api/employee"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData, actor models.Actor) (id string, err error)
	Update(id string, data employeeapimodels.EmployeeData, actor models.Actor) error
	GetByID(id string) (view *employeeapimodels.EmployeeView, err error)
	Delete(id string, actor models.Actor) error
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, count int64, err error)
	ListAll() (list []dbmodels.Employee, err error)
	ListByLga(lgaID string) (list []employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    employeestore.NewInstance(db.DB),
		activity: activityhandler.Instance,
	}
}

type impl struct {
	store    employeestore.Provider
	activity activityhandler.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData, actor models.Actor) (id string, err error) {
	rec, err := data.ToRecord()
	if err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.activity.Save(actor, models.ActionCreate, "employee", id, rec.FullName, nil)
	return id, nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData, actor models.Actor) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("employee not found")
	}
	updRec, err := data.ToRecord()
	if err != nil {
		return apperrors.NewValidation(err.Error())
	}
	updRec.ID = id
	_, err = i.store.Create(updRec)
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionUpdate, "employee", id, updRec.FullName, nil)
	return nil
}

func (i impl) GetByID(id string) (*employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("employee not found")
	}
	view := employeeapimodels.EmployeeConvert(*rec)
	return &view, nil
}

func (i impl) Delete(id string, actor models.Actor) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("employee not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionDelete, "employee", id, rec.FullName, nil)
	return nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, count int64, err error) {
	count, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, count, nil
}

// ListAll feeds the register export, it returns raw records without paging.
func (i impl) ListAll() (list []dbmodels.Employee, err error) {
	return i.store.ListAll()
}

func (i impl) ListByLga(lgaID string) (list []employeeapimodels.EmployeeView, err error) {
	recs, err := i.store.ListByLga(lgaID)
	if err != nil {
		return nil, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, nil
}
