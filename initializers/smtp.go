package initializers

import (
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/config"
	smtphandler "hr-admin-backend/lib/smtp"
)

func InitSmtp() {
	conf := config.Conf.Smtp
	err := smtphandler.Connect(conf.User, conf.Password, conf.Host, conf.Port, conf.From, *conf.TLSEnabled)
	if err != nil {
		log.WithError(err).Error("failed to init smtp client")
	}
}
