package initializers

import (
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/config"
	"hr-admin-backend/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(conf.Host, conf.Port, conf.Name, conf.User, conf.Password, *conf.DebugMode, *conf.MigrateOnStart)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	db.InitPreload()
}
