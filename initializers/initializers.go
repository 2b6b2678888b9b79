package initializers

import (
	"context"

	"hr-admin-backend/config"
	"hr-admin-backend/fiberlog"
	activityhandler "hr-admin-backend/lib/activity"
	announcementhandler "hr-admin-backend/lib/announcement"
	queuehandler "hr-admin-backend/lib/audit-queue"
	authhandler "hr-admin-backend/lib/auth"
	dashboardhandler "hr-admin-backend/lib/dashboard"
	lgahandler "hr-admin-backend/lib/dicts/lga"
	employeehandler "hr-admin-backend/lib/employee"
	edithandler "hr-admin-backend/lib/employee-edit"
	xlsexport "hr-admin-backend/lib/export/xls"
	filestorage "hr-admin-backend/lib/file-storage"
	newshandler "hr-admin-backend/lib/news"
	retirementhandler "hr-admin-backend/lib/retirement"
	roleshandler "hr-admin-backend/lib/roles"
	usershandler "hr-admin-backend/lib/users"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires the package singletons in dependency order: storage
// first, then handlers that consume other handlers.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()

	activityhandler.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	roleshandler.NewHandler()
	lgahandler.NewHandler()
	employeehandler.NewHandler()
	edithandler.NewHandler()
	newshandler.NewHandler()
	queuehandler.NewHandler()
	retirementhandler.NewHandler()
	dashboardhandler.NewHandler()
	announcementhandler.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
}
