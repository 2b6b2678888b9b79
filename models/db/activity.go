package dbmodels

import (
	"hr-admin-backend/models"
)

// Activity is one row of the append-only audit trail. Rows are never updated
// or deleted.
type Activity struct {
	BaseModel
	ActorID    string            `gorm:"type:varchar(36);index"`
	ActorName  string            `gorm:"type:varchar(255)"`
	Action     models.ActionType `gorm:"type:varchar(50);index"`
	EntityType string            `gorm:"type:varchar(50);index"`
	EntityID   string            `gorm:"type:varchar(36)"`
	EntityName string            `gorm:"type:varchar(255)"`
	Details    JSONMap           `gorm:"type:jsonb"`
}
