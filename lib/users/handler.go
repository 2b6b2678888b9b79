package usershandler

import (
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	usersstore "hr-admin-backend/lib/users/store"
	"hr-admin-backend/lib/utils/apperrors"
	authhelpers "hr-admin-backend/lib/utils/auth-helpers"
	"hr-admin-backend/models"
	usersapimodels "hr-admin-backend/models/api/users"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(data usersapimodels.UserData, actor models.Actor) (id string, err error)
	Update(id string, data usersapimodels.UserUpdateData, actor models.Actor) error
	GetByID(id string) (view *usersapimodels.UserView, err error)
	List() (list []usersapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    usersstore.NewInstance(db.DB),
		activity: activityhandler.Instance,
	}
}

type impl struct {
	store    usersstore.Provider
	activity activityhandler.Provider
}

func (i impl) Create(data usersapimodels.UserData, actor models.Actor) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	existing, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperrors.NewValidation("email is already in use")
	}
	rec := dbmodels.User{
		Name:     data.Name,
		Email:    data.Email,
		Password: authhelpers.GetMD5Hash(data.Password),
		Role:     models.UserRole(data.Role),
		IsActive: true,
	}
	if data.LgaID != "" {
		rec.LgaID = &data.LgaID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.activity.Save(actor, models.ActionCreate, "user", id, data.Name, nil)
	return id, nil
}

func (i impl) Update(id string, data usersapimodels.UserUpdateData, actor models.Actor) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("user not found")
	}
	updMap := map[string]interface{}{}
	if data.Name != "" {
		updMap["name"] = data.Name
	}
	if data.Role != "" {
		if models.UserRole(data.Role) == models.UserRoleLga && data.LgaID == "" && rec.LgaID == nil {
			return apperrors.NewValidation("LGA users must be bound to an LGA")
		}
		updMap["role"] = data.Role
	}
	if data.LgaID != "" {
		updMap["lga_id"] = data.LgaID
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionUpdate, "user", id, rec.Name, nil)
	return nil
}

func (i impl) GetByID(id string) (*usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("user not found")
	}
	view := usersapimodels.UserConvert(*rec)
	return &view, nil
}

func (i impl) List() (list []usersapimodels.UserView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]usersapimodels.UserView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, nil
}
