package db

import (
	"hr-admin-backend/config"
	rolesstore "hr-admin-backend/lib/roles/store"
	usersstore "hr-admin-backend/lib/users/store"
	authhelpers "hr-admin-backend/lib/utils/auth-helpers"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillRoles()
	addSuperAdmin()
}

func fillRoles() {
	store := rolesstore.NewInstance(DB)
	for _, role := range models.DefaultRoles {
		existed, err := store.GetByName(string(role))
		if err != nil {
			log.WithError(err).Error("failed to seed default roles")
			return
		}
		if existed != nil {
			continue
		}
		if _, err = store.Create(dbmodels.Role{Name: string(role)}); err != nil {
			log.WithError(err).WithField("role", role).Error("failed to seed role")
		}
	}
}

func addSuperAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("super admin not seeded, ADMIN_EMAIL is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to seed super admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Name:     config.Conf.Admin.Name,
		Email:    config.Conf.Admin.Email,
		Password: authhelpers.GetMD5Hash(config.Conf.Admin.Password),
		Role:     models.UserRoleSuperAdmin,
		IsActive: true,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("failed to seed super admin")
	}
}
