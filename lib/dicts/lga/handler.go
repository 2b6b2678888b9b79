package lgahandler

import (
	"hr-admin-backend/db"
	lgastore "hr-admin-backend/lib/dicts/lga/store"
	"hr-admin-backend/lib/utils/apperrors"
	dictapimodels "hr-admin-backend/models/api/dict"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.LgaData) (id string, err error)
	Update(id string, data dictapimodels.LgaData) error
	GetByID(id string) (view *dictapimodels.LgaView, err error)
	Delete(id string) error
	List() (list []dictapimodels.LgaView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: lgastore.NewInstance(db.DB),
	}
}

type impl struct {
	store lgastore.Provider
}

func (i impl) Create(data dictapimodels.LgaData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	rec := dbmodels.Lga{
		Name: data.Name,
		Code: data.Code,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data dictapimodels.LgaData) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("LGA not found")
	}
	return i.store.Update(id, map[string]interface{}{
		"name": data.Name,
		"code": data.Code,
	})
}

func (i impl) GetByID(id string) (*dictapimodels.LgaView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("LGA not found")
	}
	view := dictapimodels.LgaConvert(*rec)
	return &view, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("LGA not found")
	}
	return i.store.Delete(id)
}

func (i impl) List() (list []dictapimodels.LgaView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.LgaView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, dictapimodels.LgaConvert(rec))
	}
	return list, nil
}
