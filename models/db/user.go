package dbmodels

import (
	"time"

	"hr-admin-backend/models"
)

type User struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(64)"` // md5 hex
	Role      models.UserRole
	IsActive  bool
	LgaID     *string `gorm:"type:varchar(36)"`
	Lga       *Lga
	LastLogin *time.Time
}
