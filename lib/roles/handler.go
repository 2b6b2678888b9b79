package roleshandler

import (
	"hr-admin-backend/db"
	rolesstore "hr-admin-backend/lib/roles/store"
	"hr-admin-backend/lib/utils/apperrors"
	dictapimodels "hr-admin-backend/models/api/dict"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(data dictapimodels.RoleData) (id string, err error)
	Update(id string, data dictapimodels.RoleData) error
	Delete(id string) error
	List(includeUsage bool) (list []dictapimodels.RoleView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: rolesstore.NewInstance(db.DB),
	}
}

type impl struct {
	store rolesstore.Provider
}

func (i impl) Create(data dictapimodels.RoleData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	existing, err := i.store.GetByName(data.Name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperrors.NewValidation("role already exists")
	}
	rec := dbmodels.Role{
		Name:        data.Name,
		Permissions: toPermissions(data.Permissions),
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data dictapimodels.RoleData) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("role not found")
	}
	rec.Name = data.Name
	rec.Permissions = toPermissions(data.Permissions)
	return i.store.Update(*rec)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("role not found")
	}
	used, err := i.store.UsageCount(rec.Name)
	if err != nil {
		return err
	}
	if used > 0 {
		return apperrors.NewInconsistent("role is assigned to users")
	}
	return i.store.Delete(id)
}

func (i impl) List(includeUsage bool) (list []dictapimodels.RoleView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.RoleView, 0, len(recs))
	for _, rec := range recs {
		view := dictapimodels.RoleConvert(rec)
		if includeUsage {
			count, err := i.store.UsageCount(rec.Name)
			if err != nil {
				return nil, err
			}
			view.UsageCount = &count
		}
		list = append(list, view)
	}
	return list, nil
}

func toPermissions(names []string) []dbmodels.Permission {
	permissions := make([]dbmodels.Permission, 0, len(names))
	for _, name := range names {
		permissions = append(permissions, dbmodels.Permission{Name: name})
	}
	return permissions
}
