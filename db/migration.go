package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-admin-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Lga{}); err != nil {
		return errors.Wrap(err, "migration failed for Lga")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration failed for Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeEdit{}); err != nil {
		return errors.Wrap(err, "migration failed for EmployeeEdit")
	}
	if err := DB.AutoMigrate(&dbmodels.News{}); err != nil {
		return errors.Wrap(err, "migration failed for News")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditQueueEntry{}); err != nil {
		return errors.Wrap(err, "migration failed for AuditQueueEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.Activity{}); err != nil {
		return errors.Wrap(err, "migration failed for Activity")
	}
	if err := DB.AutoMigrate(&dbmodels.Announcement{}); err != nil {
		return errors.Wrap(err, "migration failed for Announcement")
	}
	if err := DB.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "migration failed for Role")
	}
	if err := DB.AutoMigrate(&dbmodels.Permission{}); err != nil {
		return errors.Wrap(err, "migration failed for Permission")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration failed for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
