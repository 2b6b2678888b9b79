package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-admin-backend/db"
	usersstore "hr-admin-backend/lib/users/store"
	"hr-admin-backend/lib/utils/apperrors"
	authhelpers "hr-admin-backend/lib/utils/auth-helpers"
	authutils "hr-admin-backend/lib/utils/auth-utils"
	authapimodels "hr-admin-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
		now:        time.Now,
	}
}

type impl struct {
	usersStore usersstore.Provider
	now        func() time.Time
}

func (i impl) Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error) {
	if err = data.Validate(); err != nil {
		return resp, apperrors.NewValidation(err.Error())
	}
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		return resp, err
	}
	if user == nil || !user.IsActive || user.Password != authhelpers.GetMD5Hash(data.Password) {
		return resp, apperrors.NewValidation("invalid email or password")
	}
	lgaID := ""
	if user.LgaID != nil {
		lgaID = *user.LgaID
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role, lgaID)
	if err != nil {
		return resp, err
	}
	if err := i.usersStore.TouchLastLogin(user.ID, i.now()); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("failed to update last login")
	}
	return authapimodels.JWTResponse{Token: token}, nil
}
